package dto

type BranchRequestDTO struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Sukhumvit 24"`
	Address     string `json:"address" validate:"required" example:"99 Sukhumvit Rd, Bangkok"`
	Status      string `json:"status" validate:"omitempty,oneof=Available Busy Closed" example:"Available"`
	WaitingCars int    `json:"waiting_cars" validate:"min=0" example:"3"`
}

type BranchResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name" example:"Sukhumvit 24"`
	Address     string `json:"address" example:"99 Sukhumvit Rd, Bangkok"`
	Status      string `json:"status" example:"Available"`
	WaitingCars int    `json:"waiting_cars" example:"3"`
}

type PackageRequestDTO struct {
	Name         string  `json:"name" validate:"required,min=1,max=100" example:"Premium Wash"`
	Description  string  `json:"description" validate:"max=500"`
	Price        float64 `json:"price" validate:"min=0" example:"350"`
	PointsReward int     `json:"points_reward" validate:"min=0" example:"35"`
	StampsReward int     `json:"stamps_reward" validate:"min=0" example:"1"`
	IsActive     bool    `json:"is_active" example:"true"`
}

type PackageResponseDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" example:"Premium Wash"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price" example:"350"`
	PointsReward int     `json:"points_reward" example:"35"`
	StampsReward int     `json:"stamps_reward" example:"1"`
	IsActive     bool    `json:"is_active" example:"true"`
}

type RewardRequestDTO struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Free Premium Wash"`
	Description string `json:"description" validate:"max=500"`
	Points      int    `json:"points" validate:"min=0" example:"500"`
	Category    string `json:"category" validate:"max=50" example:"services"`
	Stock       int    `json:"stock" validate:"min=0" example:"20"`
	IsActive    bool   `json:"is_active" example:"true"`
}
