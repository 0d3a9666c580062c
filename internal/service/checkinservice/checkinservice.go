package checkinservice

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/pkg/validate"
)

// Codes expire quickly; the mobile client regenerates on demand.
const codeTTL = 5 * time.Minute

type Repo interface {
	Save(ctx context.Context, code *domain.CheckinCode) error
	FindByCode(ctx context.Context, code string) (*domain.CheckinCode, error)
	MarkUsed(ctx context.Context, id string) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Generate issues a fresh single-use check-in code for the user.
func (s *Service) Generate(ctx context.Context, userID string) (*domain.CheckinCode, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}

	value, err := generateCode()
	if err != nil {
		zap.L().Error("can't generate check-in code", zap.Error(err))
		return nil, err
	}

	code := &domain.CheckinCode{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Code:      value,
		ExpiresAt: time.Now().Add(codeTTL),
		IsUsed:    false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

// Scan consumes a code presented at the branch and resolves its owner.
func (s *Service) Scan(ctx context.Context, value string) (*domain.User, error) {
	if !validate.IsCheckinCode(value) {
		return nil, fmt.Errorf("check-in code: %w", apperrors.ErrInvalidInput)
	}

	code, err := s.repo.FindByCode(ctx, value)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, fmt.Errorf("check-in code: %w", apperrors.ErrNotFound)
	}
	if code.IsUsed {
		return nil, apperrors.ErrCodeUsed
	}
	if time.Now().After(code.ExpiresAt) {
		return nil, apperrors.ErrCodeExpired
	}

	consumed, err := s.repo.MarkUsed(ctx, code.ID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, apperrors.ErrCodeUsed
	}

	user, err := s.userRepo.FindByID(ctx, code.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", code.UserID, apperrors.ErrNotFound)
	}
	return user, nil
}

// generateCode produces a 16-digit numeric code whose last digit is a Luhn
// check digit.
func generateCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	base := fmt.Sprintf("%015d", binary.BigEndian.Uint64(buf)%1_000_000_000_000_000)

	for d := 0; d <= 9; d++ {
		code := base + strconv.Itoa(d)
		if validate.IsCheckinCode(code) {
			return code, nil
		}
	}
	return "", errors.New("can't derive check digit")
}
