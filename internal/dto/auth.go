package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"somchai@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cr3tpass"`
	Name     string `json:"name" validate:"required,min=1,max=100" example:"Somchai"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"somchai@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cr3tpass"`
}

type LineLoginRequestDTO struct {
	AccessToken string `json:"access_token" validate:"required" example:"eyJhbGciOi..."`
}

type AuthResponseDTO struct {
	Token string         `json:"token"`
	User  UserProfileDTO `json:"user"`
}

type UserProfileDTO struct {
	ID            string `json:"id" example:"8b2a6f6e-8f53-4f0a-9d3e-2f1c9a7b4d10"`
	Email         string `json:"email" example:"somchai@example.com"`
	Name          string `json:"name" example:"Somchai"`
	Phone         string `json:"phone,omitempty" example:"0812345678"`
	Points        int    `json:"points" example:"1250"`
	CurrentStamps int    `json:"current_stamps" example:"4"`
	TotalStamps   int    `json:"total_stamps" example:"10"`
	MemberTier    string `json:"member_tier" example:"Gold"`
}
