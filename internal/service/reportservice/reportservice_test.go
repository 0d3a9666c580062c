package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestDashboard(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, from, to time.Time) (*domain.RevenueTotals, error) {
			// from is today's midnight in local time
			assert.Equal(t, 0, from.Hour())
			assert.Equal(t, 0, from.Minute())
			assert.True(t, to.After(from))
			return &domain.RevenueTotals{Revenue: 4250.5, Transactions: 17}, nil
		})
	repo.EXPECT().CountUsersCreatedSince(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().CountUsers(gomock.Any()).Return(1208, nil)
	repo.EXPECT().CountBranches(gomock.Any()).Return(5, 4, nil)
	repo.EXPECT().RevenueByBranch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.BranchRevenue{
		{BranchID: "branch-1", BranchName: "Sukhumvit 24", Revenue: 2500, Transactions: 10},
	}, nil)

	dashboard, err := service.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4250.5, dashboard.Stats.TodayRevenue)
	assert.Equal(t, 17, dashboard.Stats.TodayTransactions)
	assert.Equal(t, 3, dashboard.Stats.NewUsersToday)
	assert.Equal(t, 1208, dashboard.Stats.TotalUsers)
	assert.Equal(t, 4, dashboard.Stats.ActiveBranches)
	assert.Equal(t, 5, dashboard.Stats.TotalBranches)
	assert.Len(t, dashboard.BranchRevenue, 1)
}

func TestDashboardRepoError(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	dashboard, err := service.Dashboard(context.Background())
	assert.Error(t, err)
	assert.Nil(t, dashboard)
}

func TestFinancial(t *testing.T) {
	service, repo := NewMock(t)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().RevenueBetween(gomock.Any(), from, to).Return(&domain.RevenueTotals{Revenue: 31250, Transactions: 125}, nil)
	repo.EXPECT().RedemptionsBetween(gomock.Any(), from, to).Return(&domain.RedemptionTotals{PointsUsed: 4500, Redemptions: 9}, nil)
	repo.EXPECT().RevenueByDay(gomock.Any(), from, to).Return([]domain.DailyRevenue{{Date: "2024-06-01", Revenue: 4250.5}}, nil)
	repo.EXPECT().RevenueByPackage(gomock.Any(), from, to).Return(nil, nil)
	repo.EXPECT().RevenueByBranch(gomock.Any(), from, to).Return(nil, nil)

	report, err := service.Financial(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Equal(t, 31250.0, report.TotalRevenue)
	assert.Equal(t, 125, report.TotalTransactions)
	assert.Equal(t, 4500, report.PointsRedeemed)
	assert.Equal(t, 9, report.Redemptions)
	assert.Len(t, report.ByDay, 1)
}

func TestFinancialDefaultsWindow(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, from, to time.Time) (*domain.RevenueTotals, error) {
			assert.WithinDuration(t, to.Add(-defaultReportWindow), from, time.Second)
			return &domain.RevenueTotals{}, nil
		})
	repo.EXPECT().RedemptionsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.RedemptionTotals{}, nil)
	repo.EXPECT().RevenueByDay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().RevenueByPackage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().RevenueByBranch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := service.Financial(context.Background(), time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.False(t, report.From.IsZero())
	assert.False(t, report.To.IsZero())
}
