package loyalty

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	pkgauth "github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/utils"
)

const defaultPageSize = 20

type Service interface {
	CompleteWash(ctx context.Context, userID, branchID, packageID string) (*domain.Transaction, error)
	RedeemReward(ctx context.Context, userID, rewardID string) (*domain.RewardRedemption, error)
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
	GetRedemptions(ctx context.Context, userID string) ([]domain.RewardRedemption, error)
	GetRewards(ctx context.Context) ([]domain.Reward, error)
}

type LoyaltyHandler struct {
	loyaltyService Service
}

func New(loyaltyService Service) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyService: loyaltyService,
	}
}

// CompleteWash godoc
//
//	@Summary		Complete a wash
//	@Description	Record a finished wash and credit points and stamps to the member
//	@Tags			Loyalty
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteWashRequestDTO	true	"Complete wash request body"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Branch or user not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/loyalty/washes [post]
func (h *LoyaltyHandler) CompleteWash(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CompleteWashRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	txn, err := h.loyaltyService.CompleteWash(r.Context(), userID, req.BranchID, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionDTO(txn))
}

// Redeem godoc
//
//	@Summary		Redeem a reward
//	@Description	Exchange points for a reward, decrementing its stock
//	@Tags			Loyalty
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redeem request body"
//	@Success		200		{object}	dto.RedemptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient points"
//	@Failure		404		{object}	utils.Response	"Reward or user not found"
//	@Failure		409		{object}	utils.Response	"Reward out of stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/loyalty/redemptions [post]
func (h *LoyaltyHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	redemption, err := h.loyaltyService.RedeemReward(r.Context(), userID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, apperrors.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, "Reward out of stock")
		case errors.Is(err, apperrors.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient points")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, redemptionDTO(redemption))
}

// GetTransactions godoc
//
//	@Summary		Wash history
//	@Description	List the member's wash transactions, newest first
//	@Tags			Loyalty
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/loyalty/transactions [get]
func (h *LoyaltyHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit := queryInt(r, "limit", defaultPageSize)
	offset := queryInt(r, "offset", 0)
	txns, err := h.loyaltyService.GetTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.TransactionResponseDTO, 0, len(txns))
	for i := range txns {
		resp = append(resp, transactionDTO(&txns[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRedemptions godoc
//
//	@Summary		Redemption history
//	@Description	List the member's reward redemptions, newest first
//	@Tags			Loyalty
//	@Produce		json
//	@Success		200	{array}		dto.RedemptionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/loyalty/redemptions [get]
func (h *LoyaltyHandler) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	redemptions, err := h.loyaltyService.GetRedemptions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.RedemptionResponseDTO, 0, len(redemptions))
	for i := range redemptions {
		resp = append(resp, redemptionDTO(&redemptions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRewards godoc
//
//	@Summary		Reward catalog
//	@Description	List active rewards ordered by point cost
//	@Tags			Loyalty
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/loyalty/rewards [get]
func (h *LoyaltyHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.loyaltyService.GetRewards(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.RewardResponseDTO, 0, len(rewards))
	for _, reward := range rewards {
		resp = append(resp, dto.RewardResponseDTO{
			ID:          reward.ID,
			Name:        reward.Name,
			Description: reward.Description,
			Points:      reward.Points,
			Category:    reward.Category,
			Stock:       reward.Stock,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func transactionDTO(txn *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:           txn.ID,
		BranchID:     txn.BranchID,
		PackageName:  txn.PackageName,
		Amount:       txn.Amount,
		PointsEarned: txn.PointsEarned,
		StampsEarned: txn.StampsEarned,
		Status:       txn.Status,
		CreatedAt:    txn.CreatedAt,
	}
}

func redemptionDTO(redemption *domain.RewardRedemption) dto.RedemptionResponseDTO {
	return dto.RedemptionResponseDTO{
		ID:         redemption.ID,
		RewardID:   redemption.RewardID,
		PointsUsed: redemption.PointsUsed,
		Status:     redemption.Status,
		CreatedAt:  redemption.CreatedAt,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
