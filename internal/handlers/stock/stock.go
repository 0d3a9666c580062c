package stock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	"github.com/roboss/washpoint/pkg/utils"
)

type Service interface {
	CreateItem(ctx context.Context, item *domain.StockItem) (*domain.StockItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.StockItem, []domain.StockMovement, error)
	GetItems(ctx context.Context, lowStockOnly bool) ([]domain.StockItem, error)
	UpdateItem(ctx context.Context, item *domain.StockItem) error
	StockIn(ctx context.Context, itemID string, quantity int, reason string) (*domain.StockItem, *domain.StockMovement, error)
	StockOut(ctx context.Context, itemID string, quantity int, reason string) (*domain.StockItem, *domain.StockMovement, error)
	Adjust(ctx context.Context, itemID string, newQuantity int, reason string) (*domain.StockItem, *domain.StockMovement, error)
}

type StockHandler struct {
	stockService Service
}

func New(stockService Service) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// CreateItem godoc
//
//	@Summary		Create stock item
//	@Description	Add a stock item; an opening quantity is recorded as an initial movement
//	@Tags			Stock
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateStockItemRequestDTO	true	"Stock item body"
//	@Success		200		{object}	dto.StockItemResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items [post]
func (h *StockHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStockItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.stockService.CreateItem(r.Context(), &domain.StockItem{
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, itemDTO(item))
}

// GetItems godoc
//
//	@Summary		List stock items
//	@Description	List stock items, optionally only those at or below their minimum
//	@Tags			Stock
//	@Produce		json
//	@Param			low_stock	query		bool	false	"Only low-stock items"
//	@Success		200			{array}		dto.StockItemResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items [get]
func (h *StockHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	lowStockOnly := r.URL.Query().Get("low_stock") == "true"
	items, err := h.stockService.GetItems(r.Context(), lowStockOnly)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.StockItemResponseDTO, 0, len(items))
	for i := range items {
		resp = append(resp, itemDTO(&items[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetItem godoc
//
//	@Summary		Stock item detail
//	@Description	Return one stock item with its movement history
//	@Tags			Stock
//	@Produce		json
//	@Param			id	path		string	true	"Stock item ID"
//	@Success		200	{object}	dto.StockItemDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items/{id} [get]
func (h *StockHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	item, movements, err := h.stockService.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	detail := dto.StockItemDetailResponseDTO{
		Item:      itemDTO(item),
		Movements: make([]dto.StockMovementResponseDTO, 0, len(movements)),
	}
	for i := range movements {
		detail.Movements = append(detail.Movements, movementDTO(&movements[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// UpdateItem godoc
//
//	@Summary		Update stock item
//	@Description	Update a stock item's descriptive fields and thresholds; quantity changes go through movements
//	@Tags			Stock
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Stock item ID"
//	@Param			request	body		dto.UpdateStockItemRequestDTO	true	"Stock item body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items/{id} [put]
func (h *StockHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStockItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	err := h.stockService.UpdateItem(r.Context(), &domain.StockItem{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Item updated"})
}

// StockIn godoc
//
//	@Summary		Receive stock
//	@Description	Increase an item's quantity and record the movement
//	@Tags			Stock
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Stock item ID"
//	@Param			request	body		dto.StockMovementRequestDTO	true	"Movement body"
//	@Success		200		{object}	dto.StockMovementResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items/{id}/in [post]
func (h *StockHandler) StockIn(w http.ResponseWriter, r *http.Request) {
	h.applyMovement(w, r, h.stockService.StockIn)
}

// StockOut godoc
//
//	@Summary		Issue stock
//	@Description	Decrease an item's quantity and record the movement; fails when the item would go negative
//	@Tags			Stock
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Stock item ID"
//	@Param			request	body		dto.StockMovementRequestDTO	true	"Movement body"
//	@Success		200		{object}	dto.StockMovementResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Insufficient stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items/{id}/out [post]
func (h *StockHandler) StockOut(w http.ResponseWriter, r *http.Request) {
	h.applyMovement(w, r, h.stockService.StockOut)
}

// Adjust godoc
//
//	@Summary		Adjust stock
//	@Description	Set an item's quantity to a counted value and record the delta as an adjustment
//	@Tags			Stock
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Stock item ID"
//	@Param			request	body		dto.StockAdjustRequestDTO	true	"Adjustment body"
//	@Success		200		{object}	dto.StockMovementResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stock/items/{id}/adjust [post]
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.StockAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	_, movement, err := h.stockService.Adjust(r.Context(), chi.URLParam(r, "id"), req.NewQuantity, req.Reason)
	if err != nil {
		h.respondMovementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, movementDTO(movement))
}

type movementFn func(ctx context.Context, itemID string, quantity int, reason string) (*domain.StockItem, *domain.StockMovement, error)

func (h *StockHandler) applyMovement(w http.ResponseWriter, r *http.Request, apply movementFn) {
	var req dto.StockMovementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	_, movement, err := apply(r.Context(), chi.URLParam(r, "id"), req.Quantity, req.Reason)
	if err != nil {
		h.respondMovementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, movementDTO(movement))
}

func (h *StockHandler) respondMovementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, apperrors.ErrInsufficientStock):
		utils.RespondWithError(w, http.StatusConflict, "Insufficient stock")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func itemDTO(item *domain.StockItem) dto.StockItemResponseDTO {
	return dto.StockItemResponseDTO{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		MaxQuantity: item.MaxQuantity,
		UnitPrice:   item.UnitPrice,
		LowStock:    item.Quantity <= item.MinQuantity,
		UpdatedAt:   item.UpdatedAt,
	}
}

func movementDTO(movement *domain.StockMovement) dto.StockMovementResponseDTO {
	return dto.StockMovementResponseDTO{
		ID:               movement.ID,
		StockItemID:      movement.StockItemID,
		Type:             movement.Type,
		Quantity:         movement.Quantity,
		PreviousQuantity: movement.PreviousQuantity,
		NewQuantity:      movement.NewQuantity,
		Reason:           movement.Reason,
		CreatedAt:        movement.CreatedAt,
	}
}
