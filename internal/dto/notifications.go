package dto

import "time"

type NotificationResponseDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" example:"Wash completed"`
	Message   string    `json:"message" example:"You earned 35 points and 1 stamp"`
	Type      string    `json:"type" example:"success"`
	IsRead    bool      `json:"is_read" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}
