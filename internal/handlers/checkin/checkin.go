package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	authhandlers "github.com/roboss/washpoint/internal/handlers/auth"
	pkgauth "github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/utils"
)

type Service interface {
	Generate(ctx context.Context, userID string) (*domain.CheckinCode, error)
	Scan(ctx context.Context, value string) (*domain.User, error)
}

type CheckinHandler struct {
	checkinService Service
}

func New(checkinService Service) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

// Generate godoc
//
//	@Summary		Generate check-in code
//	@Description	Issue a short-lived single-use code the mobile app renders as a QR
//	@Tags			Checkin
//	@Produce		json
//	@Success		200	{object}	dto.CheckinCodeResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/checkin/code [post]
func (h *CheckinHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	code, err := h.checkinService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckinCodeResponseDTO{
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	})
}

// Scan godoc
//
//	@Summary		Scan check-in code
//	@Description	Resolve a scanned code to the member it belongs to and consume it
//	@Tags			Checkin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckinScanRequestDTO	true	"Scan request body"
//	@Success		200		{object}	dto.CheckinScanResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed code"
//	@Failure		404		{object}	utils.Response	"Unknown code"
//	@Failure		409		{object}	utils.Response	"Code already used"
//	@Failure		410		{object}	utils.Response	"Code expired"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/checkin/scan [post]
func (h *CheckinHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckinScanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.checkinService.Scan(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed code")
		case errors.Is(err, apperrors.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Unknown code")
		case errors.Is(err, apperrors.ErrCodeUsed):
			utils.RespondWithError(w, http.StatusConflict, "Code already used")
		case errors.Is(err, apperrors.ErrCodeExpired):
			utils.RespondWithError(w, http.StatusGone, "Code expired")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckinScanResponseDTO{
		User: authhandlers.ProfileDTO(user),
	})
}
