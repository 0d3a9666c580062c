package packagerepo

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

const packageColumns = `id, name, description, price, points_reward, stamps_reward, is_active, created_at`

func (r *Repository) Save(ctx context.Context, pack *domain.WashPackage) error {
	query := `
        INSERT INTO wash_packages (id, name, description, price, points_reward, stamps_reward, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query,
		pack.ID, pack.Name, pack.Description, pack.Price,
		pack.PointsReward, pack.StampsReward, pack.IsActive)
	if err != nil {
		zap.L().Error("can't save package", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.WashPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM wash_packages WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	var pack domain.WashPackage
	err := row.Scan(&pack.ID, &pack.Name, &pack.Description, &pack.Price,
		&pack.PointsReward, &pack.StampsReward, &pack.IsActive, &pack.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find package", zap.Error(err))
		return nil, err
	}
	return &pack, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.WashPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM wash_packages WHERE is_active = TRUE ORDER BY price ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packs []domain.WashPackage
	for rows.Next() {
		var pack domain.WashPackage
		err := rows.Scan(&pack.ID, &pack.Name, &pack.Description, &pack.Price,
			&pack.PointsReward, &pack.StampsReward, &pack.IsActive, &pack.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan package row", zap.Error(err))
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

func (r *Repository) Update(ctx context.Context, pack *domain.WashPackage) error {
	query := `
        UPDATE wash_packages
        SET name = $1, description = $2, price = $3, points_reward = $4, stamps_reward = $5, is_active = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		pack.Name, pack.Description, pack.Price,
		pack.PointsReward, pack.StampsReward, pack.IsActive, pack.ID)
	if err != nil {
		zap.L().Error("can't update package", zap.Error(err))
		return err
	}
	return nil
}
