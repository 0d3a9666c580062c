package notificationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
)

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
)

type Repo interface {
	Save(ctx context.Context, notification *domain.Notification) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Notify appends an unread notification for the user. Callers treat this as
// best-effort; it is invoked after the ledger mutation it reports on.
func (s *Service) Notify(ctx context.Context, userID, title, message, ntype string) error {
	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, notification); err != nil {
		zap.L().Error("can't save notification", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	updated, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("notification %q: %w", notificationID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
