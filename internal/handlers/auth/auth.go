package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	pkgauth "github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateLine(ctx context.Context, lineAccessToken string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a member account with email, password and display name
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Email already taken")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithToken(w, user)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithToken(w, user)
}

// LineLogin godoc
//
//	@Summary		Authenticate via LINE
//	@Description	Exchange a LINE access token for a session, creating the account on first login
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LineLoginRequestDTO	true	"LINE login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"LINE token rejected"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/line [post]
func (h *AuthHandler) LineLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LineLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.authService.AuthenticateLine(r.Context(), req.AccessToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "LINE token rejected")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithToken(w, user)
}

// Me godoc
//
//	@Summary		Current user profile
//	@Description	Return the authenticated member's profile and loyalty state
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.UserProfileDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ProfileDTO(user))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *domain.User) {
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  ProfileDTO(user),
	})
}

// ProfileDTO maps a user onto its public profile representation.
func ProfileDTO(user *domain.User) dto.UserProfileDTO {
	return dto.UserProfileDTO{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Phone:         user.Phone,
		Points:        user.Points,
		CurrentStamps: user.CurrentStamps,
		TotalStamps:   user.TotalStamps,
		MemberTier:    string(user.MemberTier),
	}
}
