package rewardrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

const rewardColumns = `id, name, description, points, category, stock, is_active, created_at`

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the reward row so that concurrent redemptions of the
// same reward cannot both pass the stock check.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE is_active = TRUE ORDER BY points ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(&reward.ID, &reward.Name, &reward.Description, &reward.Points,
			&reward.Category, &reward.Stock, &reward.IsActive, &reward.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

func (r *Repository) Save(ctx context.Context, reward *domain.Reward) error {
	query := `
        INSERT INTO rewards (id, name, description, points, category, stock, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		reward.ID, reward.Name, reward.Description, reward.Points,
		reward.Category, reward.Stock, reward.IsActive)
	if err != nil {
		zap.L().Error("can't save reward", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DecrementStock(ctx context.Context, id string) error {
	query := `UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't decrement reward stock", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("reward stock not decremented")
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Reward, error) {
	row := r.db.QueryRow(ctx, query, arg)
	var reward domain.Reward
	err := row.Scan(&reward.ID, &reward.Name, &reward.Description, &reward.Points,
		&reward.Category, &reward.Stock, &reward.IsActive, &reward.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}
