package dto

import "time"

type CreateStockItemRequestDTO struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"Car Shampoo"`
	Category    string  `json:"category" validate:"required" example:"chemicals"`
	Unit        string  `json:"unit" validate:"required" example:"liter"`
	Quantity    int     `json:"quantity" validate:"min=0" example:"40"`
	MinQuantity int     `json:"min_quantity" validate:"min=0" example:"10"`
	MaxQuantity int     `json:"max_quantity" validate:"min=0" example:"100"`
	UnitPrice   float64 `json:"unit_price" validate:"min=0" example:"120.5"`
}

type UpdateStockItemRequestDTO struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    string  `json:"category" validate:"required"`
	Unit        string  `json:"unit" validate:"required"`
	MinQuantity int     `json:"min_quantity" validate:"min=0"`
	MaxQuantity int     `json:"max_quantity" validate:"min=0"`
	UnitPrice   float64 `json:"unit_price" validate:"min=0"`
}

type StockMovementRequestDTO struct {
	Quantity int    `json:"quantity" validate:"required" example:"5"`
	Reason   string `json:"reason" validate:"required,min=1,max=255" example:"weekly delivery"`
}

type StockAdjustRequestDTO struct {
	NewQuantity int    `json:"new_quantity" validate:"min=0" example:"37"`
	Reason      string `json:"reason" validate:"required,min=1,max=255" example:"stocktake correction"`
}

type StockItemResponseDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" example:"Car Shampoo"`
	Category    string    `json:"category" example:"chemicals"`
	Unit        string    `json:"unit" example:"liter"`
	Quantity    int       `json:"quantity" example:"40"`
	MinQuantity int       `json:"min_quantity" example:"10"`
	MaxQuantity int       `json:"max_quantity" example:"100"`
	UnitPrice   float64   `json:"unit_price" example:"120.5"`
	LowStock    bool      `json:"low_stock" example:"false"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StockMovementResponseDTO struct {
	ID               string    `json:"id"`
	StockItemID      string    `json:"stock_item_id"`
	Type             string    `json:"type" example:"in"`
	Quantity         int       `json:"quantity" example:"5"`
	PreviousQuantity int       `json:"previous_quantity" example:"35"`
	NewQuantity      int       `json:"new_quantity" example:"40"`
	Reason           string    `json:"reason" example:"weekly delivery"`
	CreatedAt        time.Time `json:"created_at"`
}

type StockItemDetailResponseDTO struct {
	Item      StockItemResponseDTO       `json:"item"`
	Movements []StockMovementResponseDTO `json:"movements"`
}
