package reportservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/domain"
)

const defaultReportWindow = 7 * 24 * time.Hour

type Repo interface {
	RevenueBetween(ctx context.Context, from, to time.Time) (*domain.RevenueTotals, error)
	RedemptionsBetween(ctx context.Context, from, to time.Time) (*domain.RedemptionTotals, error)
	CountUsers(ctx context.Context) (int, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountBranches(ctx context.Context) (total int, active int, err error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error)
	RevenueByPackage(ctx context.Context, from, to time.Time) ([]domain.PackageRevenue, error)
	RevenueByBranch(ctx context.Context, from, to time.Time) ([]domain.BranchRevenue, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

type DashboardStats struct {
	TodayRevenue      float64
	TodayTransactions int
	NewUsersToday     int
	TotalUsers        int
	ActiveBranches    int
	TotalBranches     int
}

type Dashboard struct {
	Stats         DashboardStats
	BranchRevenue []domain.BranchRevenue
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	revenue, err := s.repo.RevenueBetween(ctx, midnight, now)
	if err != nil {
		zap.L().Error("can't build dashboard", zap.Error(err))
		return nil, err
	}
	newUsers, err := s.repo.CountUsersCreatedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalBranches, activeBranches, err := s.repo.CountBranches(ctx)
	if err != nil {
		return nil, err
	}
	branchRevenue, err := s.repo.RevenueByBranch(ctx, midnight, now)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats: DashboardStats{
			TodayRevenue:      revenue.Revenue,
			TodayTransactions: revenue.Transactions,
			NewUsersToday:     newUsers,
			TotalUsers:        totalUsers,
			ActiveBranches:    activeBranches,
			TotalBranches:     totalBranches,
		},
		BranchRevenue: branchRevenue,
	}, nil
}

type FinancialReport struct {
	From              time.Time
	To                time.Time
	TotalRevenue      float64
	TotalTransactions int
	PointsRedeemed    int
	Redemptions       int
	ByDay             []domain.DailyRevenue
	ByPackage         []domain.PackageRevenue
	ByBranch          []domain.BranchRevenue
}

// Financial builds the revenue and expense report for a date range. Zero
// bounds default to the last seven days. Redeemed points are the expense
// side of the ledger.
func (s *Service) Financial(ctx context.Context, from, to time.Time) (*FinancialReport, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultReportWindow)
	}

	revenue, err := s.repo.RevenueBetween(ctx, from, to)
	if err != nil {
		zap.L().Error("can't build financial report", zap.Error(err))
		return nil, err
	}
	redemptions, err := s.repo.RedemptionsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDay, err := s.repo.RevenueByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byPackage, err := s.repo.RevenueByPackage(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byBranch, err := s.repo.RevenueByBranch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &FinancialReport{
		From:              from,
		To:                to,
		TotalRevenue:      revenue.Revenue,
		TotalTransactions: revenue.Transactions,
		PointsRedeemed:    redemptions.PointsUsed,
		Redemptions:       redemptions.Redemptions,
		ByDay:             byDay,
		ByPackage:         byPackage,
		ByBranch:          byBranch,
	}, nil
}
