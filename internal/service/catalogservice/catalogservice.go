package catalogservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
)

// Branch and package management for the admin back office, and read views
// for the mobile app.

type BranchRepo interface {
	Save(ctx context.Context, branch *domain.Branch) error
	FindByID(ctx context.Context, id string) (*domain.Branch, error)
	FindAll(ctx context.Context) ([]domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
}

type PackageRepo interface {
	Save(ctx context.Context, pack *domain.WashPackage) error
	FindByID(ctx context.Context, id string) (*domain.WashPackage, error)
	FindActive(ctx context.Context) ([]domain.WashPackage, error)
	Update(ctx context.Context, pack *domain.WashPackage) error
}

type RewardRepo interface {
	Save(ctx context.Context, reward *domain.Reward) error
}

type Service struct {
	branchRepo  BranchRepo
	packageRepo PackageRepo
	rewardRepo  RewardRepo
}

func New(branchRepo BranchRepo, packageRepo PackageRepo, rewardRepo RewardRepo) *Service {
	return &Service{
		branchRepo:  branchRepo,
		packageRepo: packageRepo,
		rewardRepo:  rewardRepo,
	}
}

func (s *Service) CreateBranch(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	if branch.Name == "" {
		return nil, fmt.Errorf("branch name: %w", apperrors.ErrInvalidInput)
	}
	branch.ID = uuid.NewString()
	if branch.Status == "" {
		branch.Status = "Available"
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		zap.L().Error("can't create branch", zap.Error(err))
		return nil, err
	}
	return branch, nil
}

func (s *Service) UpdateBranch(ctx context.Context, branch *domain.Branch) error {
	existing, err := s.branchRepo.FindByID(ctx, branch.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("branch %q: %w", branch.ID, apperrors.ErrNotFound)
	}
	return s.branchRepo.Update(ctx, branch)
}

func (s *Service) GetBranches(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.branchRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get branches", zap.Error(err))
		return nil, err
	}
	return branches, nil
}

func (s *Service) CreatePackage(ctx context.Context, pack *domain.WashPackage) (*domain.WashPackage, error) {
	if pack.Name == "" || pack.Price < 0 || pack.PointsReward < 0 || pack.StampsReward < 0 {
		return nil, fmt.Errorf("wash package: %w", apperrors.ErrInvalidInput)
	}
	pack.ID = uuid.NewString()
	if err := s.packageRepo.Save(ctx, pack); err != nil {
		zap.L().Error("can't create package", zap.Error(err))
		return nil, err
	}
	return pack, nil
}

func (s *Service) UpdatePackage(ctx context.Context, pack *domain.WashPackage) error {
	existing, err := s.packageRepo.FindByID(ctx, pack.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("package %q: %w", pack.ID, apperrors.ErrNotFound)
	}
	return s.packageRepo.Update(ctx, pack)
}

func (s *Service) GetPackages(ctx context.Context) ([]domain.WashPackage, error) {
	packs, err := s.packageRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get packages", zap.Error(err))
		return nil, err
	}
	return packs, nil
}

func (s *Service) CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if reward.Name == "" || reward.Points < 0 || reward.Stock < 0 {
		return nil, fmt.Errorf("reward: %w", apperrors.ErrInvalidInput)
	}
	reward.ID = uuid.NewString()
	if err := s.rewardRepo.Save(ctx, reward); err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}
