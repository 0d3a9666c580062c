package stockservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
)

func NewMock(t *testing.T) (*Service, *pg.MockTXManager, *MockRepo) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	repo := NewMockRepo(ctrl)
	service := New(txManager, repo)
	defer ctrl.Finish()
	return service, txManager, repo
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestStockIn(t *testing.T) {
	service, txManager, repo := NewMock(t)

	tests := []struct {
		name          string
		quantity      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Adds quantity and records movement",
			quantity: 5,
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().FindItemByIDForUpdate(gomock.Any(), "item-1").Return(&domain.StockItem{
					ID: "item-1", Name: "Car Shampoo", Quantity: 35,
				}, nil)
				repo.EXPECT().UpdateQuantity(gomock.Any(), "item-1", 40).Return(nil)
				repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, movement *domain.StockMovement) error {
						assert.Equal(t, MovementIn, movement.Type)
						assert.Equal(t, 5, movement.Quantity)
						assert.Equal(t, 35, movement.PreviousQuantity)
						assert.Equal(t, 40, movement.NewQuantity)
						return nil
					})
			},
		},
		{
			name:          "Rejects non-positive quantity",
			quantity:      0,
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:     "Unknown item",
			quantity: 5,
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().FindItemByIDForUpdate(gomock.Any(), "item-1").Return(nil, nil)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			item, movement, err := service.StockIn(context.Background(), "item-1", tt.quantity, "weekly delivery")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
				assert.Nil(t, movement)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 40, item.Quantity)
			assert.Equal(t, "weekly delivery", movement.Reason)
		})
	}
}

func TestStockOut(t *testing.T) {
	service, txManager, repo := NewMock(t)

	tests := []struct {
		name          string
		quantity      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Removes quantity",
			quantity: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().FindItemByIDForUpdate(gomock.Any(), "item-1").Return(&domain.StockItem{
					ID: "item-1", Quantity: 35,
				}, nil)
				repo.EXPECT().UpdateQuantity(gomock.Any(), "item-1", 25).Return(nil)
				repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Rejects movement that would go negative",
			quantity: 40,
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().FindItemByIDForUpdate(gomock.Any(), "item-1").Return(&domain.StockItem{
					ID: "item-1", Quantity: 35,
				}, nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			item, _, err := service.StockOut(context.Background(), "item-1", tt.quantity, "daily use")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 25, item.Quantity)
		})
	}
}

func TestAdjust(t *testing.T) {
	service, txManager, repo := NewMock(t)

	passthroughTx(txManager)
	repo.EXPECT().FindItemByIDForUpdate(gomock.Any(), "item-1").Return(&domain.StockItem{
		ID: "item-1", Quantity: 35,
	}, nil)
	repo.EXPECT().UpdateQuantity(gomock.Any(), "item-1", 30).Return(nil)
	repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, movement *domain.StockMovement) error {
			assert.Equal(t, MovementAdjustment, movement.Type)
			assert.Equal(t, 5, movement.Quantity)
			assert.Equal(t, 30, movement.NewQuantity)
			return nil
		})

	item, _, err := service.Adjust(context.Background(), "item-1", 30, "stocktake correction")
	assert.NoError(t, err)
	assert.Equal(t, 30, item.Quantity)
}

func TestCreateItem(t *testing.T) {
	service, txManager, repo := NewMock(t)

	tests := []struct {
		name          string
		item          *domain.StockItem
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Opening quantity recorded as initial movement",
			item: &domain.StockItem{Name: "Car Shampoo", Quantity: 40},
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().SaveItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.StockItem) error {
						assert.Equal(t, 0, item.Quantity)
						return nil
					})
				repo.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), 40).Return(nil)
				repo.EXPECT().SaveMovement(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, movement *domain.StockMovement) error {
						assert.Equal(t, MovementIn, movement.Type)
						assert.Equal(t, 0, movement.PreviousQuantity)
						assert.Equal(t, 40, movement.NewQuantity)
						assert.Equal(t, "initial stock", movement.Reason)
						return nil
					})
			},
		},
		{
			name: "Zero opening quantity skips movement",
			item: &domain.StockItem{Name: "Wax", Quantity: 0},
			prepareMock: func() {
				passthroughTx(txManager)
				repo.EXPECT().SaveItem(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Rejects empty name",
			item:          &domain.StockItem{Quantity: 10},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.CreateItem(context.Background(), tt.item)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, created.ID)
		})
	}
}

func TestGetItems(t *testing.T) {
	service, _, repo := NewMock(t)

	low := []domain.StockItem{{ID: "item-1", Quantity: 2, MinQuantity: 10}}
	repo.EXPECT().FindLowStockItems(gomock.Any()).Return(low, nil)

	items, err := service.GetItems(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, low, items)

	repo.EXPECT().FindItems(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.GetItems(context.Background(), false)
	assert.Error(t, err)
}

func TestUpdateItem(t *testing.T) {
	service, _, repo := NewMock(t)

	repo.EXPECT().FindItemByID(gomock.Any(), "item-1").Return(nil, nil)

	err := service.UpdateItem(context.Background(), &domain.StockItem{ID: "item-1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
