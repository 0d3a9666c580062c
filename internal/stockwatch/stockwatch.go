package stockwatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roboss/washpoint/internal/config"
	"github.com/roboss/washpoint/internal/domain"
)

// Background monitor that periodically scans inventory for items at or
// below their minimum quantity and raises an alert for each. An item is
// alerted once per quantity value, so a refill followed by another drain
// produces a fresh alert.

type StockRepo interface {
	FindLowStockItems(ctx context.Context) ([]domain.StockItem, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, message, ntype string) error
}

type Service struct {
	stockRepo    StockRepo
	notifier     Notifier
	adminUserID  string
	workerPool   WorkerPoolI
	scanInterval time.Duration

	alerted sync.Map
}

func New(cfg *config.Config, stockRepo StockRepo, notifier Notifier) *Service {
	return &Service{
		stockRepo:    stockRepo,
		notifier:     notifier,
		adminUserID:  cfg.AdminUserID,
		workerPool:   NewWorkerPool(4),
		scanInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Stock watch started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping stock watch")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *Service) scan(ctx context.Context) {
	items, err := s.stockRepo.FindLowStockItems(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch low stock items", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, item := range items {
		item := item

		if prev, loaded := s.alerted.LoadOrStore(item.ID, item.Quantity); loaded {
			if prev.(int) == item.Quantity {
				continue
			}
			s.alerted.Store(item.ID, item.Quantity)
		}

		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.alert(ctx, item)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching stock alerts", zap.Error(err))
	}
}

func (s *Service) alert(ctx context.Context, item domain.StockItem) error {
	zap.L().Warn("Stock item below minimum",
		zap.String("itemID", item.ID),
		zap.String("name", item.Name),
		zap.Int("quantity", item.Quantity),
		zap.Int("minQuantity", item.MinQuantity),
	)

	if s.adminUserID == "" {
		return nil
	}
	message := fmt.Sprintf("%s is low: %d %s left (minimum %d)", item.Name, item.Quantity, item.Unit, item.MinQuantity)
	return s.notifier.Notify(ctx, s.adminUserID, "Low stock", message, "warning")
}
