package checkinrepo

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

func (r *Repository) Save(ctx context.Context, code *domain.CheckinCode) error {
	query := `
        INSERT INTO checkin_codes (id, user_id, code, expires_at, is_used, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		code.ID, code.UserID, code.Code, code.ExpiresAt, code.IsUsed, code.CreatedAt)
	if err != nil {
		zap.L().Error("can't save check-in code", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.CheckinCode, error) {
	query := `
        SELECT id, user_id, code, expires_at, is_used, created_at
        FROM checkin_codes
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var cc domain.CheckinCode
	err := row.Scan(&cc.ID, &cc.UserID, &cc.Code, &cc.ExpiresAt, &cc.IsUsed, &cc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find check-in code", zap.Error(err))
		return nil, err
	}
	return &cc, nil
}

// MarkUsed consumes a code. Returns false when the code was already consumed
// by a concurrent scan.
func (r *Repository) MarkUsed(ctx context.Context, id string) (bool, error) {
	query := `UPDATE checkin_codes SET is_used = TRUE WHERE id = $1 AND is_used = FALSE`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark check-in code used", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
