package redemptionrepo

import (
	"context"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, redemption *domain.RewardRedemption) error {
	query := `
        INSERT INTO reward_redemptions (id, user_id, reward_id, points_used, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		redemption.ID, redemption.UserID, redemption.RewardID,
		redemption.PointsUsed, redemption.Status, redemption.CreatedAt)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.RewardRedemption, error) {
	query := `
        SELECT id, user_id, reward_id, points_used, status, created_at
        FROM reward_redemptions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.RewardRedemption
	for rows.Next() {
		var redemption domain.RewardRedemption
		err := rows.Scan(&redemption.ID, &redemption.UserID, &redemption.RewardID,
			&redemption.PointsUsed, &redemption.Status, &redemption.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, redemption)
	}
	return redemptions, nil
}
