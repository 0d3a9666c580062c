package stockrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const itemColumns = `id, name, category, unit, quantity, min_quantity, max_quantity, unit_price, created_at, updated_at`

func (r *Repository) SaveItem(ctx context.Context, item *domain.StockItem) error {
	query := `
        INSERT INTO stock_items (id, name, category, unit, quantity, min_quantity, max_quantity, unit_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Unit,
		item.Quantity, item.MinQuantity, item.MaxQuantity, item.UnitPrice)
	if err != nil {
		zap.L().Error("can't save stock item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindItemByID(ctx context.Context, id string) (*domain.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1`
	return r.findItem(ctx, query, id)
}

// FindItemByIDForUpdate locks the item row so concurrent movements on the
// same item cannot interleave between the quantity check and the write.
func (r *Repository) FindItemByIDForUpdate(ctx context.Context, id string) (*domain.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.findItem(ctx, query, id)
}

func (r *Repository) FindItems(ctx context.Context) ([]domain.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items ORDER BY name ASC`
	return r.findItems(ctx, query)
}

func (r *Repository) FindLowStockItems(ctx context.Context) ([]domain.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE quantity <= min_quantity ORDER BY name ASC`
	return r.findItems(ctx, query)
}

func (r *Repository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	query := `UPDATE stock_items SET quantity = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, quantity, id)
	if err != nil {
		zap.L().Error("can't update stock quantity", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateItem(ctx context.Context, item *domain.StockItem) error {
	query := `
        UPDATE stock_items
        SET name = $1, category = $2, unit = $3, min_quantity = $4, max_quantity = $5, unit_price = $6, updated_at = now()
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		item.Name, item.Category, item.Unit,
		item.MinQuantity, item.MaxQuantity, item.UnitPrice, item.ID)
	if err != nil {
		zap.L().Error("can't update stock item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveMovement(ctx context.Context, movement *domain.StockMovement) error {
	query := `
        INSERT INTO stock_movements (id, stock_item_id, type, quantity, previous_quantity, new_quantity, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		movement.ID, movement.StockItemID, movement.Type, movement.Quantity,
		movement.PreviousQuantity, movement.NewQuantity, movement.Reason, movement.CreatedAt)
	if err != nil {
		zap.L().Error("can't save stock movement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindMovementsByItemID(ctx context.Context, itemID string) ([]domain.StockMovement, error) {
	query := `
        SELECT id, stock_item_id, type, quantity, previous_quantity, new_quantity, reason, created_at
        FROM stock_movements
        WHERE stock_item_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		zap.L().Error("can't get stock movements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		err := rows.Scan(&m.ID, &m.StockItemID, &m.Type, &m.Quantity,
			&m.PreviousQuantity, &m.NewQuantity, &m.Reason, &m.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan stock movement row", zap.Error(err))
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func (r *Repository) findItem(ctx context.Context, query string, arg any) (*domain.StockItem, error) {
	row := r.db.QueryRow(ctx, query, arg)
	var item domain.StockItem
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Unit,
		&item.Quantity, &item.MinQuantity, &item.MaxQuantity, &item.UnitPrice,
		&item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find stock item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) findItems(ctx context.Context, query string) ([]domain.StockItem, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get stock items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.StockItem
	for rows.Next() {
		var item domain.StockItem
		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Unit,
			&item.Quantity, &item.MinQuantity, &item.MaxQuantity, &item.UnitPrice,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan stock item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
