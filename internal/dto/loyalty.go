package dto

import "time"

type CompleteWashRequestDTO struct {
	BranchID  string `json:"branch_id" validate:"required,uuid4" example:"7f1c2d3e-4b5a-6c7d-8e9f-0a1b2c3d4e5f"`
	PackageID string `json:"package_id" validate:"required,uuid4" example:"1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d"`
}

type TransactionResponseDTO struct {
	ID           string    `json:"id"`
	BranchID     string    `json:"branch_id"`
	PackageName  string    `json:"package_name" example:"Premium Wash"`
	Amount       float64   `json:"amount" example:"350"`
	PointsEarned int       `json:"points_earned" example:"35"`
	StampsEarned int       `json:"stamps_earned" example:"1"`
	Status       string    `json:"status" example:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

type RedeemRequestDTO struct {
	RewardID string `json:"reward_id" validate:"required,uuid4" example:"9d8c7b6a-5f4e-3d2c-1b0a-9f8e7d6c5b4a"`
}

type RedemptionResponseDTO struct {
	ID         string    `json:"id"`
	RewardID   string    `json:"reward_id"`
	PointsUsed int       `json:"points_used" example:"500"`
	Status     string    `json:"status" example:"pending"`
	CreatedAt  time.Time `json:"created_at"`
}

type RewardResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name" example:"Free Premium Wash"`
	Description string `json:"description,omitempty"`
	Points      int    `json:"points" example:"500"`
	Category    string `json:"category,omitempty" example:"services"`
	Stock       int    `json:"stock" example:"12"`
}
