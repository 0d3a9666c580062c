package transactionrepo

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

func (r *Repository) Save(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, user_id, branch_id, package_id, package_name, amount, points_earned, stamps_earned, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query,
		tx.ID, tx.UserID, tx.BranchID, tx.PackageID, tx.PackageName,
		tx.Amount, tx.PointsEarned, tx.StampsEarned, tx.Status, tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, branch_id, package_id, package_name, amount, points_earned, stamps_earned, status, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.BranchID, &tx.PackageID, &tx.PackageName,
		&tx.Amount, &tx.PointsEarned, &tx.StampsEarned, &tx.Status, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, branch_id, package_id, package_name, amount, points_earned, stamps_earned, status, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.BranchID, &tx.PackageID, &tx.PackageName,
			&tx.Amount, &tx.PointsEarned, &tx.StampsEarned, &tx.Status, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
