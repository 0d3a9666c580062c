package branchrepo

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

func (r *Repository) Save(ctx context.Context, branch *domain.Branch) error {
	query := `
        INSERT INTO branches (id, name, address, status, waiting_cars)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, branch.ID, branch.Name, branch.Address, branch.Status, branch.WaitingCars)
	if err != nil {
		zap.L().Error("can't save branch", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Branch, error) {
	query := `
        SELECT id, name, address, status, waiting_cars, created_at
        FROM branches
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var branch domain.Branch
	err := row.Scan(&branch.ID, &branch.Name, &branch.Address, &branch.Status, &branch.WaitingCars, &branch.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find branch", zap.Error(err))
		return nil, err
	}
	return &branch, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Branch, error) {
	query := `
        SELECT id, name, address, status, waiting_cars, created_at
        FROM branches
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get branches", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var branch domain.Branch
		err := rows.Scan(&branch.ID, &branch.Name, &branch.Address, &branch.Status, &branch.WaitingCars, &branch.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan branch row", zap.Error(err))
			return nil, err
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

func (r *Repository) Update(ctx context.Context, branch *domain.Branch) error {
	query := `
        UPDATE branches
        SET name = $1, address = $2, status = $3, waiting_cars = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, branch.Name, branch.Address, branch.Status, branch.WaitingCars, branch.ID)
	if err != nil {
		zap.L().Error("can't update branch", zap.Error(err))
		return err
	}
	return nil
}
