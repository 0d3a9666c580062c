package dto

import "time"

type CheckinCodeResponseDTO struct {
	Code      string    `json:"code" example:"1234567890123452"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CheckinScanRequestDTO struct {
	Code string `json:"code" validate:"required,len=16,numeric" example:"1234567890123452"`
}

type CheckinScanResponseDTO struct {
	User UserProfileDTO `json:"user"`
}
