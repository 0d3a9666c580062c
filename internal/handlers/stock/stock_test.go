package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	"github.com/roboss/washpoint/pkg/utils"
)

func NewMock(t *testing.T) (*StockHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestWithID(method, target, body, id string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates item",
			body: `{"name":"Car Shampoo","category":"chemicals","unit":"liter","quantity":40,"min_quantity":10,"max_quantity":100,"unit_price":120.5}`,
			prepareMock: func() {
				service.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, item *domain.StockItem) (*domain.StockItem, error) {
						assert.Equal(t, "Car Shampoo", item.Name)
						assert.Equal(t, 40, item.Quantity)
						item.ID = "s1"
						return item, nil
					},
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Missing required fields",
			body:         `{"quantity":40}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/stock/items", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreateItem(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.StockItemResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "s1", resp.ID)
				assert.False(t, resp.LowStock)
			}
		})
	}
}

func TestGetItemsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "All items",
			target: "/api/stock/items",
			prepareMock: func() {
				service.EXPECT().GetItems(gomock.Any(), false).Return([]domain.StockItem{
					{ID: "s1", Name: "Car Shampoo", Quantity: 40, MinQuantity: 10},
					{ID: "s2", Name: "Microfiber Towel", Quantity: 5, MinQuantity: 20},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Low stock only",
			target: "/api/stock/items?low_stock=true",
			prepareMock: func() {
				service.EXPECT().GetItems(gomock.Any(), true).Return([]domain.StockItem{
					{ID: "s2", Name: "Microfiber Towel", Quantity: 5, MinQuantity: 20},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Service failure",
			target: "/api/stock/items",
			prepareMock: func() {
				service.EXPECT().GetItems(gomock.Any(), false).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.target, nil)
			rr := httptest.NewRecorder()

			handler.GetItems(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []dto.StockItemResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGetItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns item with movements", func(t *testing.T) {
		service.EXPECT().GetItem(gomock.Any(), "s2").Return(
			&domain.StockItem{ID: "s2", Name: "Microfiber Towel", Quantity: 5, MinQuantity: 20},
			[]domain.StockMovement{
				{ID: "m1", StockItemID: "s2", Type: "out", Quantity: 3, PreviousQuantity: 8, NewQuantity: 5},
			}, nil)

		rr := httptest.NewRecorder()
		handler.GetItem(rr, requestWithID("GET", "/api/stock/items/s2", "", "s2"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.StockItemDetailResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.True(t, resp.Item.LowStock)
		assert.Len(t, resp.Movements, 1)
	})

	t.Run("Item not found", func(t *testing.T) {
		service.EXPECT().GetItem(gomock.Any(), "missing").Return(nil, nil, apperrors.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.GetItem(rr, requestWithID("GET", "/api/stock/items/missing", "", "missing"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestStockInHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Receives stock",
			body: `{"quantity":5,"reason":"weekly delivery"}`,
			prepareMock: func() {
				service.EXPECT().StockIn(gomock.Any(), "s1", 5, "weekly delivery").Return(
					&domain.StockItem{ID: "s1", Quantity: 40},
					&domain.StockMovement{ID: "m1", StockItemID: "s1", Type: "in", Quantity: 5, PreviousQuantity: 35, NewQuantity: 40, Reason: "weekly delivery"},
					nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Item not found",
			body: `{"quantity":5,"reason":"weekly delivery"}`,
			prepareMock: func() {
				service.EXPECT().StockIn(gomock.Any(), "s1", 5, "weekly delivery").
					Return(nil, nil, apperrors.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Item not found",
		},
		{
			name:         "Missing reason",
			body:         `{"quantity":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.StockIn(rr, requestWithID("POST", "/api/stock/items/s1/in", tt.body, "s1"))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.StockMovementResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "in", resp.Type)
				assert.Equal(t, 40, resp.NewQuantity)
			}
		})
	}
}

func TestStockOutHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Insufficient stock", func(t *testing.T) {
		service.EXPECT().StockOut(gomock.Any(), "s1", 50, "daily usage").
			Return(nil, nil, apperrors.ErrInsufficientStock)

		rr := httptest.NewRecorder()
		handler.StockOut(rr, requestWithID("POST", "/api/stock/items/s1/out", `{"quantity":50,"reason":"daily usage"}`, "s1"))

		assert.Equal(t, http.StatusConflict, rr.Code)
		var resp utils.Response
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "Insufficient stock", resp.Message)
	})

	t.Run("Issues stock", func(t *testing.T) {
		service.EXPECT().StockOut(gomock.Any(), "s1", 3, "daily usage").Return(
			&domain.StockItem{ID: "s1", Quantity: 37},
			&domain.StockMovement{ID: "m1", Type: "out", Quantity: 3, PreviousQuantity: 40, NewQuantity: 37},
			nil)

		rr := httptest.NewRecorder()
		handler.StockOut(rr, requestWithID("POST", "/api/stock/items/s1/out", `{"quantity":3,"reason":"daily usage"}`, "s1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAdjustHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Adjusts to counted value", func(t *testing.T) {
		service.EXPECT().Adjust(gomock.Any(), "s1", 30, "stocktake correction").Return(
			&domain.StockItem{ID: "s1", Quantity: 30},
			&domain.StockMovement{ID: "m1", Type: "adjustment", Quantity: 5, PreviousQuantity: 35, NewQuantity: 30},
			nil)

		rr := httptest.NewRecorder()
		handler.Adjust(rr, requestWithID("POST", "/api/stock/items/s1/adjust", `{"new_quantity":30,"reason":"stocktake correction"}`, "s1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.StockMovementResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "adjustment", resp.Type)
		assert.Equal(t, 30, resp.NewQuantity)
	})

	t.Run("Missing reason", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.Adjust(rr, requestWithID("POST", "/api/stock/items/s1/adjust", `{"new_quantity":30}`, "s1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateItemHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Updates item", func(t *testing.T) {
		service.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item *domain.StockItem) error {
				assert.Equal(t, "s1", item.ID)
				assert.Equal(t, "Car Shampoo", item.Name)
				return nil
			},
		)

		rr := httptest.NewRecorder()
		handler.UpdateItem(rr, requestWithID("PUT", "/api/stock/items/s1",
			`{"name":"Car Shampoo","category":"chemicals","unit":"liter","min_quantity":15,"max_quantity":100,"unit_price":125}`, "s1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Item not found", func(t *testing.T) {
		service.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(apperrors.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.UpdateItem(rr, requestWithID("PUT", "/api/stock/items/missing",
			`{"name":"Car Shampoo","category":"chemicals","unit":"liter","min_quantity":15,"max_quantity":100,"unit_price":125}`, "missing"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
