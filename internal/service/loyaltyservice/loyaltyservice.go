package loyaltyservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
	"github.com/roboss/washpoint/internal/service/tier"
)

// StampBonusPoints is awarded when the stamp card rolls over.
const StampBonusPoints = 100

const (
	TransactionCompleted = "completed"
	TransactionPending   = "pending"
	TransactionCancelled = "cancelled"

	RedemptionPending = "pending"
)

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error)
	UpdateLoyalty(ctx context.Context, user *domain.User) error
}

type TransactionRepo interface {
	Save(ctx context.Context, tx *domain.Transaction) error
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

type RewardRepo interface {
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Reward, error)
	FindActive(ctx context.Context) ([]domain.Reward, error)
	DecrementStock(ctx context.Context, id string) error
}

type RedemptionRepo interface {
	Save(ctx context.Context, redemption *domain.RewardRedemption) error
	FindByUserID(ctx context.Context, userID string) ([]domain.RewardRedemption, error)
}

type PackageRepo interface {
	FindByID(ctx context.Context, id string) (*domain.WashPackage, error)
}

type BranchRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Branch, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, message, ntype string) error
}

type Service struct {
	txManager       pg.TXManager
	userRepo        UserRepo
	transactionRepo TransactionRepo
	rewardRepo      RewardRepo
	redemptionRepo  RedemptionRepo
	packageRepo     PackageRepo
	branchRepo      BranchRepo
	notifier        Notifier
}

func New(
	txManager pg.TXManager,
	userRepo UserRepo,
	transactionRepo TransactionRepo,
	rewardRepo RewardRepo,
	redemptionRepo RedemptionRepo,
	packageRepo PackageRepo,
	branchRepo BranchRepo,
	notifier Notifier,
) *Service {
	return &Service{
		txManager:       txManager,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		rewardRepo:      rewardRepo,
		redemptionRepo:  redemptionRepo,
		packageRepo:     packageRepo,
		branchRepo:      branchRepo,
		notifier:        notifier,
	}
}

// CompleteWash records a finished wash and applies its rewards to the user:
// points, stamps with a single rollover per call, the rollover bonus, and a
// tier recompute. The user row is locked for the duration, so concurrent
// completions for the same user serialize and either everything is written
// or nothing is.
func (s *Service) CompleteWash(ctx context.Context, userID, branchID, packageID string) (*domain.Transaction, error) {
	pack, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pack == nil || !pack.IsActive {
		return nil, fmt.Errorf("package %q: %w", packageID, apperrors.ErrInvalidInput)
	}

	branch, err := s.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, fmt.Errorf("branch %q: %w", branchID, apperrors.ErrNotFound)
	}

	var (
		transaction *domain.Transaction
		rolledOver  bool
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
		}

		newPoints := user.Points + pack.PointsReward
		newStamps := user.CurrentStamps + pack.StampsReward

		// The card wraps at most once per wash: one completed card, one
		// free-wash bonus.
		bonusPoints := 0
		if newStamps >= user.TotalStamps {
			newStamps -= user.TotalStamps
			bonusPoints = StampBonusPoints
			rolledOver = true
		}

		user.Points = newPoints + bonusPoints
		user.CurrentStamps = newStamps
		user.MemberTier = tier.Calculate(user.Points)

		transaction = &domain.Transaction{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			BranchID:     branch.ID,
			PackageID:    pack.ID,
			PackageName:  pack.Name,
			Amount:       pack.Price,
			PointsEarned: pack.PointsReward,
			StampsEarned: pack.StampsReward,
			Status:       TransactionCompleted,
			CreatedAt:    time.Now(),
		}

		if err := s.transactionRepo.Save(ctx, transaction); err != nil {
			return err
		}
		return s.userRepo.UpdateLoyalty(ctx, user)
	})
	if err != nil {
		zap.L().Error("can't complete wash", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.notify(ctx, userID, "Points earned",
		fmt.Sprintf("You earned %d points from %s", pack.PointsReward, pack.Name))
	if rolledOver {
		s.notify(ctx, userID, "Stamp card completed",
			fmt.Sprintf("Bonus %d points for completing your stamp card", StampBonusPoints))
	}

	return transaction, nil
}

// RedeemReward exchanges points for a reward. Preconditions are checked in a
// fixed order and the redemption record, points debit and stock decrement
// land in one transaction; any failure leaves all three untouched.
func (s *Service) RedeemReward(ctx context.Context, userID, rewardID string) (*domain.RewardRedemption, error) {
	var (
		redemption *domain.RewardRedemption
		reward     *domain.Reward
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		reward, err = s.rewardRepo.FindByIDForUpdate(ctx, rewardID)
		if err != nil {
			return err
		}
		if reward == nil || !reward.IsActive {
			return fmt.Errorf("reward %q: %w", rewardID, apperrors.ErrNotFound)
		}
		if reward.Stock <= 0 {
			return fmt.Errorf("reward %q: %w", rewardID, apperrors.ErrOutOfStock)
		}

		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
		}
		if user.Points < reward.Points {
			return fmt.Errorf("user %q: %w", userID, apperrors.ErrInsufficientPoints)
		}

		redemption = &domain.RewardRedemption{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			RewardID:   reward.ID,
			PointsUsed: reward.Points,
			Status:     RedemptionPending,
			CreatedAt:  time.Now(),
		}
		if err := s.redemptionRepo.Save(ctx, redemption); err != nil {
			return err
		}

		// Tier stays as-is on debit: it reflects the total at the last
		// wash-completion recompute.
		user.Points -= reward.Points
		if err := s.userRepo.UpdateLoyalty(ctx, user); err != nil {
			return err
		}

		return s.rewardRepo.DecrementStock(ctx, reward.ID)
	})
	if err != nil {
		zap.L().Error("can't redeem reward", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.notify(ctx, userID, "Reward redeemed",
		fmt.Sprintf("You redeemed %s for %d points", reward.Name, reward.Points))

	return redemption, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetRedemptions(ctx context.Context, userID string) ([]domain.RewardRedemption, error) {
	redemptions, err := s.redemptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

func (s *Service) GetRewards(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// Notifications are a side channel: a failure here never unwinds the ledger
// mutation it reports on.
func (s *Service) notify(ctx context.Context, userID, title, message string) {
	if err := s.notifier.Notify(ctx, userID, title, message, "success"); err != nil {
		zap.L().Error("can't send notification", zap.String("user_id", userID), zap.Error(err))
	}
}
