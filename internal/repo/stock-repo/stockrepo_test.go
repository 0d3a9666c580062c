package stockrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/roboss/washpoint/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func itemRows(items ...domain.StockItem) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "name", "category", "unit", "quantity",
		"min_quantity", "max_quantity", "unit_price", "created_at", "updated_at",
	})
	for _, item := range items {
		rows.AddRow(item.ID, item.Name, item.Category, item.Unit, item.Quantity,
			item.MinQuantity, item.MaxQuantity, item.UnitPrice, item.CreatedAt, item.UpdatedAt)
	}
	return rows
}

func TestRepository_FindItemByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	stored := domain.StockItem{
		ID:          "s1",
		Name:        "Car Shampoo",
		Category:    "chemicals",
		Unit:        "liter",
		Quantity:    35,
		MinQuantity: 10,
		MaxQuantity: 100,
		UnitPrice:   120,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.StockItem
	}{
		{
			name: "Item found",
			id:   "s1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1`)).
					WithArgs("s1").
					WillReturnRows(itemRows(stored))
			},
			result: &stored,
		},
		{
			name: "Item not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "s1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1`)).
					WithArgs("s1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindItemByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindLowStockItems(t *testing.T) {
	repo, mock := NewMock(t)
	stored := []domain.StockItem{
		{ID: "s1", Name: "Car Shampoo", Quantity: 8, MinQuantity: 10},
		{ID: "s2", Name: "Microfiber Towel", Quantity: 5, MinQuantity: 20},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + itemColumns + ` FROM stock_items WHERE quantity <= min_quantity ORDER BY name ASC`)).
		WillReturnRows(itemRows(stored...))

	result, err := repo.FindLowStockItems(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestRepository_UpdateQuantity(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE stock_items SET quantity = $1, updated_at = now() WHERE id = $2`)).
					WithArgs(40, "s1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE stock_items SET quantity = $1, updated_at = now() WHERE id = $2`)).
					WithArgs(40, "s1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateQuantity(context.Background(), "s1", 40)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SaveMovement(t *testing.T) {
	repo, mock := NewMock(t)
	movement := &domain.StockMovement{
		ID:               "m1",
		StockItemID:      "s1",
		Type:             "in",
		Quantity:         5,
		PreviousQuantity: 35,
		NewQuantity:      40,
		Reason:           "weekly delivery",
		CreatedAt:        time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO stock_movements (id, stock_item_id, type, quantity, previous_quantity, new_quantity, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `)).
		WithArgs(movement.ID, movement.StockItemID, movement.Type, movement.Quantity,
			movement.PreviousQuantity, movement.NewQuantity, movement.Reason, movement.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.SaveMovement(context.Background(), movement)
	assert.NoError(t, err)
}

func TestRepository_FindMovementsByItemID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	stored := []domain.StockMovement{
		{ID: "m2", StockItemID: "s1", Type: "out", Quantity: 3, PreviousQuantity: 40, NewQuantity: 37, Reason: "daily usage", CreatedAt: now},
		{ID: "m1", StockItemID: "s1", Type: "in", Quantity: 5, PreviousQuantity: 35, NewQuantity: 40, Reason: "weekly delivery", CreatedAt: now.Add(-time.Hour)},
	}

	rows := pgxmock.NewRows([]string{"id", "stock_item_id", "type", "quantity", "previous_quantity", "new_quantity", "reason", "created_at"})
	for _, m := range stored {
		rows.AddRow(m.ID, m.StockItemID, m.Type, m.Quantity, m.PreviousQuantity, m.NewQuantity, m.Reason, m.CreatedAt)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, stock_item_id, type, quantity, previous_quantity, new_quantity, reason, created_at
        FROM stock_movements
        WHERE stock_item_id = $1
        ORDER BY created_at DESC
    `)).
		WithArgs("s1").
		WillReturnRows(rows)

	result, err := repo.FindMovementsByItemID(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, stored, result)
}
