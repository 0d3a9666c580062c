package reportrepo

import (
	"context"
	"time"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/pg"
	"go.uber.org/zap"
)

// Read-only aggregates over completed transactions and redemptions for the
// admin dashboard and the financial report.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) RevenueBetween(ctx context.Context, from, to time.Time) (*domain.RevenueTotals, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM transactions
        WHERE status = 'completed' AND created_at >= $1 AND created_at <= $2
    `
	row := r.db.QueryRow(ctx, query, from, to)
	var totals domain.RevenueTotals
	if err := row.Scan(&totals.Revenue, &totals.Transactions); err != nil {
		zap.L().Error("can't get revenue totals", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) RedemptionsBetween(ctx context.Context, from, to time.Time) (*domain.RedemptionTotals, error) {
	query := `
        SELECT COALESCE(SUM(points_used), 0), COUNT(*)
        FROM reward_redemptions
        WHERE created_at >= $1 AND created_at <= $2
    `
	row := r.db.QueryRow(ctx, query, from, to)
	var totals domain.RedemptionTotals
	if err := row.Scan(&totals.PointsUsed, &totals.Redemptions); err != nil {
		zap.L().Error("can't get redemption totals", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("can't count new users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountBranches(ctx context.Context) (total int, active int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status <> 'Closed') FROM branches`
	row := r.db.QueryRow(ctx, query)
	if err := row.Scan(&total, &active); err != nil {
		zap.L().Error("can't count branches", zap.Error(err))
		return 0, 0, err
	}
	return total, active, nil
}

func (r *Repository) RevenueByDay(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error) {
	query := `
        SELECT to_char(created_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(amount), 0), COUNT(*)
        FROM transactions
        WHERE status = 'completed' AND created_at >= $1 AND created_at <= $2
        GROUP BY day
        ORDER BY day ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get revenue by day", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.DailyRevenue
	for rows.Next() {
		var d domain.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue, &d.Transactions); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		results = append(results, d)
	}
	return results, nil
}

func (r *Repository) RevenueByPackage(ctx context.Context, from, to time.Time) ([]domain.PackageRevenue, error) {
	query := `
        SELECT package_name, COALESCE(SUM(amount), 0), COUNT(*)
        FROM transactions
        WHERE status = 'completed' AND created_at >= $1 AND created_at <= $2
        GROUP BY package_name
        ORDER BY 2 DESC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get revenue by package", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.PackageRevenue
	for rows.Next() {
		var p domain.PackageRevenue
		if err := rows.Scan(&p.PackageName, &p.Revenue, &p.Transactions); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		results = append(results, p)
	}
	return results, nil
}

func (r *Repository) RevenueByBranch(ctx context.Context, from, to time.Time) ([]domain.BranchRevenue, error) {
	query := `
        SELECT t.branch_id, COALESCE(b.name, 'Unknown'), COALESCE(SUM(t.amount), 0), COUNT(*)
        FROM transactions t
        LEFT JOIN branches b ON b.id = t.branch_id
        WHERE t.status = 'completed' AND t.created_at >= $1 AND t.created_at <= $2
        GROUP BY t.branch_id, b.name
        ORDER BY 3 DESC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get revenue by branch", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.BranchRevenue
	for rows.Next() {
		var b domain.BranchRevenue
		if err := rows.Scan(&b.BranchID, &b.BranchName, &b.Revenue, &b.Transactions); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		results = append(results, b)
	}
	return results, nil
}
