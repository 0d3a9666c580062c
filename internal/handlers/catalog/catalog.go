package catalog

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
	CreateBranch(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	UpdateBranch(ctx context.Context, branch *domain.Branch) error
	GetBranches(ctx context.Context) ([]domain.Branch, error)
	CreatePackage(ctx context.Context, pack *domain.WashPackage) (*domain.WashPackage, error)
	UpdatePackage(ctx context.Context, pack *domain.WashPackage) error
	GetPackages(ctx context.Context) ([]domain.WashPackage, error)
	CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetBranches godoc
//
//	@Summary		List branches
//	@Description	List all branches with their live status and queue length
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		dto.BranchResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/branches [get]
func (h *CatalogHandler) GetBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.catalogService.GetBranches(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BranchResponseDTO, 0, len(branches))
	for _, branch := range branches {
		resp = append(resp, branchDTO(&branch))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateBranch godoc
//
//	@Summary		Create branch
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BranchRequestDTO	true	"Branch body"
//	@Success		200		{object}	dto.BranchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/branches [post]
func (h *CatalogHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req dto.BranchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	branch, err := h.catalogService.CreateBranch(r.Context(), &domain.Branch{
		Name:        req.Name,
		Address:     req.Address,
		Status:      req.Status,
		WaitingCars: req.WaitingCars,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, branchDTO(branch))
}

// UpdateBranch godoc
//
//	@Summary		Update branch
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Branch ID"
//	@Param			request	body		dto.BranchRequestDTO	true	"Branch body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Branch not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/branches/{id} [put]
func (h *CatalogHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	var req dto.BranchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	err := h.catalogService.UpdateBranch(r.Context(), &domain.Branch{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Address:     req.Address,
		Status:      req.Status,
		WaitingCars: req.WaitingCars,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Branch not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Branch updated"})
}

// GetPackages godoc
//
//	@Summary		List wash packages
//	@Description	List active wash packages with their point and stamp rewards
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		dto.PackageResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/packages [get]
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packs, err := h.catalogService.GetPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PackageResponseDTO, 0, len(packs))
	for _, pack := range packs {
		resp = append(resp, packageDTO(&pack))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreatePackage godoc
//
//	@Summary		Create wash package
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PackageRequestDTO	true	"Package body"
//	@Success		200		{object}	dto.PackageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/packages [post]
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	pack, err := h.catalogService.CreatePackage(r.Context(), &domain.WashPackage{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PointsReward: req.PointsReward,
		StampsReward: req.StampsReward,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, packageDTO(pack))
}

// UpdatePackage godoc
//
//	@Summary		Update wash package
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Package ID"
//	@Param			request	body		dto.PackageRequestDTO	true	"Package body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Package not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/packages/{id} [put]
func (h *CatalogHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	err := h.catalogService.UpdatePackage(r.Context(), &domain.WashPackage{
		ID:           chi.URLParam(r, "id"),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PointsReward: req.PointsReward,
		StampsReward: req.StampsReward,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Package not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Package updated"})
}

// CreateReward godoc
//
//	@Summary		Create reward
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RewardRequestDTO	true	"Reward body"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/rewards [post]
func (h *CatalogHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	reward, err := h.catalogService.CreateReward(r.Context(), &domain.Reward{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RewardResponseDTO{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
		Points:      reward.Points,
		Category:    reward.Category,
		Stock:       reward.Stock,
	})
}

func branchDTO(branch *domain.Branch) dto.BranchResponseDTO {
	return dto.BranchResponseDTO{
		ID:          branch.ID,
		Name:        branch.Name,
		Address:     branch.Address,
		Status:      branch.Status,
		WaitingCars: branch.WaitingCars,
	}
}

func packageDTO(pack *domain.WashPackage) dto.PackageResponseDTO {
	return dto.PackageResponseDTO{
		ID:           pack.ID,
		Name:         pack.Name,
		Description:  pack.Description,
		Price:        pack.Price,
		PointsReward: pack.PointsReward,
		StampsReward: pack.StampsReward,
		IsActive:     pack.IsActive,
	}
}
