package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/roboss/washpoint/docs"
	authhandlers "github.com/roboss/washpoint/internal/handlers/auth"
	cataloghandlers "github.com/roboss/washpoint/internal/handlers/catalog"
	checkinhandlers "github.com/roboss/washpoint/internal/handlers/checkin"
	loyaltyhandlers "github.com/roboss/washpoint/internal/handlers/loyalty"
	notificationhandlers "github.com/roboss/washpoint/internal/handlers/notifications"
	reporthandlers "github.com/roboss/washpoint/internal/handlers/reports"
	stockhandlers "github.com/roboss/washpoint/internal/handlers/stock"
	"github.com/roboss/washpoint/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         authhandlers.NewMockService(ctrl),
		LoyaltyService:      loyaltyhandlers.NewMockService(ctrl),
		StockService:        stockhandlers.NewMockService(ctrl),
		CatalogService:      cataloghandlers.NewMockService(ctrl),
		NotificationService: notificationhandlers.NewMockService(ctrl),
		CheckinService:      checkinhandlers.NewMockService(ctrl),
		ReportService:       reporthandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLoyaltyHandler := NewMockLoyaltyHandler(ctrl)
	mockStockHandler := NewMockStockHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)
	mockCheckinHandler := NewMockCheckinHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().LineLogin(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetBranches(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetPackages(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		LoyaltyHandler:      mockLoyaltyHandler,
		StockHandler:        mockStockHandler,
		CatalogHandler:      mockCatalogHandler,
		NotificationHandler: mockNotificationHandler,
		CheckinHandler:      mockCheckinHandler,
		ReportHandler:       mockReportHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/line", http.StatusOK},
		{"GET", "/api/branches", http.StatusOK},
		{"GET", "/api/packages", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusUnauthorized},
		{"POST", "/api/loyalty/washes", http.StatusUnauthorized},
		{"GET", "/api/loyalty/transactions", http.StatusUnauthorized},
		{"GET", "/api/loyalty/rewards", http.StatusUnauthorized},
		{"POST", "/api/loyalty/redemptions", http.StatusUnauthorized},
		{"POST", "/api/checkin/code", http.StatusUnauthorized},
		{"POST", "/api/checkin/scan", http.StatusUnauthorized},
		{"GET", "/api/notifications/", http.StatusUnauthorized},
		{"POST", "/api/stock/items/", http.StatusUnauthorized},
		{"GET", "/api/stock/items/", http.StatusUnauthorized},
		{"POST", "/api/branches", http.StatusUnauthorized},
		{"POST", "/api/rewards", http.StatusUnauthorized},
		{"GET", "/api/reports/dashboard", http.StatusUnauthorized},
		{"GET", "/api/reports/financial", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
