package stockservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
)

const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

type Repo interface {
	SaveItem(ctx context.Context, item *domain.StockItem) error
	FindItemByID(ctx context.Context, id string) (*domain.StockItem, error)
	FindItemByIDForUpdate(ctx context.Context, id string) (*domain.StockItem, error)
	FindItems(ctx context.Context) ([]domain.StockItem, error)
	FindLowStockItems(ctx context.Context) ([]domain.StockItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	UpdateItem(ctx context.Context, item *domain.StockItem) error
	SaveMovement(ctx context.Context, movement *domain.StockMovement) error
	FindMovementsByItemID(ctx context.Context, itemID string) ([]domain.StockMovement, error)
}

type Service struct {
	txManager pg.TXManager
	repo      Repo
}

func New(txManager pg.TXManager, repo Repo) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
	}
}

// StockIn adds quantity to an item. No upper bound is enforced; maxQuantity
// is an advisory threshold for the UI.
func (s *Service) StockIn(ctx context.Context, itemID string, quantity int, reason string) (*domain.StockItem, *domain.StockMovement, error) {
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("quantity must be positive: %w", apperrors.ErrInvalidInput)
	}
	return s.apply(ctx, itemID, func(previous int) (int, *domain.StockMovement, error) {
		return previous + quantity, newMovement(itemID, MovementIn, quantity, previous, previous+quantity, reason), nil
	})
}

// StockOut removes quantity from an item, rejecting the movement when it
// would drive the quantity negative.
func (s *Service) StockOut(ctx context.Context, itemID string, quantity int, reason string) (*domain.StockItem, *domain.StockMovement, error) {
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("quantity must be positive: %w", apperrors.ErrInvalidInput)
	}
	return s.apply(ctx, itemID, func(previous int) (int, *domain.StockMovement, error) {
		if previous < quantity {
			return 0, nil, fmt.Errorf("stock item %q has %d, requested %d: %w", itemID, previous, quantity, apperrors.ErrInsufficientStock)
		}
		return previous - quantity, newMovement(itemID, MovementOut, quantity, previous, previous-quantity, reason), nil
	})
}

// Adjust sets the item quantity to an absolute value; the recorded movement
// quantity is the magnitude of the change.
func (s *Service) Adjust(ctx context.Context, itemID string, newQuantity int, reason string) (*domain.StockItem, *domain.StockMovement, error) {
	if newQuantity < 0 {
		return nil, nil, fmt.Errorf("quantity must not be negative: %w", apperrors.ErrInvalidInput)
	}
	return s.apply(ctx, itemID, func(previous int) (int, *domain.StockMovement, error) {
		magnitude := newQuantity - previous
		if magnitude < 0 {
			magnitude = -magnitude
		}
		return newQuantity, newMovement(itemID, MovementAdjustment, magnitude, previous, newQuantity, reason), nil
	})
}

// apply locks the item row, computes the new quantity and writes the item
// together with exactly one audit movement. The pairing is never split: both
// writes share the transaction.
func (s *Service) apply(ctx context.Context, itemID string, change func(previous int) (int, *domain.StockMovement, error)) (*domain.StockItem, *domain.StockMovement, error) {
	var (
		item     *domain.StockItem
		movement *domain.StockMovement
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.repo.FindItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("stock item %q: %w", itemID, apperrors.ErrNotFound)
		}

		newQuantity, m, err := change(item.Quantity)
		if err != nil {
			return err
		}
		movement = m

		if err := s.repo.UpdateQuantity(ctx, itemID, newQuantity); err != nil {
			return err
		}
		item.Quantity = newQuantity

		return s.repo.SaveMovement(ctx, movement)
	})
	if err != nil {
		zap.L().Error("can't apply stock movement", zap.String("stock_item_id", itemID), zap.Error(err))
		return nil, nil, err
	}
	return item, movement, nil
}

// CreateItem registers a new inventory item. A non-zero opening quantity is
// recorded as an initial "in" movement so the audit trail starts at zero.
func (s *Service) CreateItem(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error) {
	if item.Quantity < 0 || item.Name == "" {
		return nil, fmt.Errorf("stock item: %w", apperrors.ErrInvalidInput)
	}

	item.ID = uuid.NewString()
	openingQuantity := item.Quantity
	item.Quantity = 0

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveItem(ctx, item); err != nil {
			return err
		}
		if openingQuantity == 0 {
			return nil
		}
		if err := s.repo.UpdateQuantity(ctx, item.ID, openingQuantity); err != nil {
			return err
		}
		item.Quantity = openingQuantity
		return s.repo.SaveMovement(ctx, newMovement(item.ID, MovementIn, openingQuantity, 0, openingQuantity, "initial stock"))
	})
	if err != nil {
		zap.L().Error("can't create stock item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *Service) GetItem(ctx context.Context, itemID string) (*domain.StockItem, []domain.StockMovement, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, fmt.Errorf("stock item %q: %w", itemID, apperrors.ErrNotFound)
	}
	movements, err := s.repo.FindMovementsByItemID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	return item, movements, nil
}

func (s *Service) GetItems(ctx context.Context, lowStockOnly bool) ([]domain.StockItem, error) {
	if lowStockOnly {
		return s.repo.FindLowStockItems(ctx)
	}
	return s.repo.FindItems(ctx)
}

func (s *Service) UpdateItem(ctx context.Context, item *domain.StockItem) error {
	existing, err := s.repo.FindItemByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("stock item %q: %w", item.ID, apperrors.ErrNotFound)
	}
	return s.repo.UpdateItem(ctx, item)
}

func newMovement(itemID, mtype string, quantity, previous, next int, reason string) *domain.StockMovement {
	return &domain.StockMovement{
		ID:               uuid.NewString(),
		StockItemID:      itemID,
		Type:             mtype,
		Quantity:         quantity,
		PreviousQuantity: previous,
		NewQuantity:      next,
		Reason:           reason,
		CreatedAt:        time.Now(),
	}
}
