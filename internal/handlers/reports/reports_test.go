package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	"github.com/roboss/washpoint/internal/service/reportservice"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestDashboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns dashboard", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(&reportservice.Dashboard{
			Stats: reportservice.DashboardStats{
				TodayRevenue:      12450,
				TodayTransactions: 42,
				NewUsersToday:     5,
				TotalUsers:        1830,
				ActiveBranches:    4,
				TotalBranches:     5,
			},
			BranchRevenue: []domain.BranchRevenue{
				{BranchID: "b1", BranchName: "Sukhumvit 24", Revenue: 7200, Transactions: 25},
			},
		}, nil)

		req := httptest.NewRequest("GET", "/api/reports/dashboard", nil)
		rr := httptest.NewRecorder()
		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.DashboardResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, 12450.0, resp.TodayRevenue)
		assert.Equal(t, 1830, resp.TotalUsers)
		assert.Len(t, resp.BranchRevenue, 1)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/reports/dashboard", nil)
		rr := httptest.NewRecorder()
		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestFinancialHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Parses date range", func(t *testing.T) {
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

		service.EXPECT().Financial(gomock.Any(), from, to).Return(&reportservice.FinancialReport{
			From:              from,
			To:                to,
			TotalRevenue:      31250,
			TotalTransactions: 125,
			PointsRedeemed:    4500,
			Redemptions:       9,
			ByDay: []domain.DailyRevenue{
				{Date: from.Format(time.DateOnly), Revenue: 1050, Transactions: 4},
			},
			ByPackage: []domain.PackageRevenue{
				{PackageName: "Premium Wash", Revenue: 17500, Transactions: 50},
			},
		}, nil)

		req := httptest.NewRequest("GET", "/api/reports/financial?from=2024-06-01&to=2024-06-30", nil)
		rr := httptest.NewRecorder()
		handler.Financial(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.FinancialReportResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, 31250.0, resp.TotalRevenue)
		assert.Equal(t, 4500, resp.PointsRedeemed)
		assert.Len(t, resp.ByDay, 1)
		assert.Len(t, resp.ByPackage, 1)
	})

	t.Run("Empty range defaults at the service", func(t *testing.T) {
		service.EXPECT().Financial(gomock.Any(), time.Time{}, time.Time{}).
			Return(&reportservice.FinancialReport{}, nil)

		req := httptest.NewRequest("GET", "/api/reports/financial", nil)
		rr := httptest.NewRecorder()
		handler.Financial(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Malformed from date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reports/financial?from=yesterday", nil)
		rr := httptest.NewRecorder()
		handler.Financial(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
