package userrepo

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

const userColumns = `id, email, password_hash, name, phone, points, current_stamps, total_stamps, member_tier, line_user_id, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, password_hash, name, phone, points, current_stamps, total_stamps, member_tier, line_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + userColumns
	row := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
		user.Points, user.CurrentStamps, user.TotalStamps, user.MemberTier, user.LineUserID)

	created, err := scanUser(row)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByLineUserID(ctx context.Context, lineUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE line_user_id = $1`
	return r.findOne(ctx, query, lineUserID)
}

// FindByIDForUpdate locks the user row for the duration of the surrounding
// transaction. Loyalty mutations go through this to serialize writers per user.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *Repository) UpdateLoyalty(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET points = $1, current_stamps = $2, member_tier = $3, updated_at = now()
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, user.Points, user.CurrentStamps, user.MemberTier, user.ID)
	if err != nil {
		zap.L().Error("can't update user loyalty state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Phone,
		&user.Points, &user.CurrentStamps, &user.TotalStamps, &user.MemberTier,
		&user.LineUserID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
