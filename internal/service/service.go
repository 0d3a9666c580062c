package service

import (
	"github.com/roboss/washpoint/internal/handlers/auth"
	"github.com/roboss/washpoint/internal/handlers/catalog"
	"github.com/roboss/washpoint/internal/handlers/checkin"
	"github.com/roboss/washpoint/internal/handlers/loyalty"
	"github.com/roboss/washpoint/internal/handlers/notifications"
	"github.com/roboss/washpoint/internal/handlers/reports"
	"github.com/roboss/washpoint/internal/handlers/stock"

	pkgauth "github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/clients"

	"github.com/roboss/washpoint/internal/pg"
	"github.com/roboss/washpoint/internal/repo"
	"github.com/roboss/washpoint/internal/service/authservice"
	"github.com/roboss/washpoint/internal/service/catalogservice"
	"github.com/roboss/washpoint/internal/service/checkinservice"
	"github.com/roboss/washpoint/internal/service/loyaltyservice"
	"github.com/roboss/washpoint/internal/service/notificationservice"
	"github.com/roboss/washpoint/internal/service/reportservice"
	"github.com/roboss/washpoint/internal/service/stockservice"
)

type Services struct {
	AuthService         auth.Service
	LoyaltyService      loyalty.Service
	StockService        stock.Service
	CatalogService      catalog.Service
	NotificationService notifications.Service
	CheckinService      checkin.Service
	ReportService       reports.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, lineAPIURL string) *Services {
	notificationService := notificationservice.New(repo.NotificationRepo)
	loyaltyService := loyaltyservice.New(
		txManager,
		repo.UserRepo,
		repo.TransactionRepo,
		repo.RewardRepo,
		repo.RedemptionRepo,
		repo.PackageRepo,
		repo.BranchRepo,
		notificationService,
	)
	stockService := stockservice.New(txManager, repo.StockRepo)
	catalogService := catalogservice.New(repo.BranchRepo, repo.PackageRepo, repo.RewardRepo)
	authService := authservice.New(
		repo.UserRepo,
		&pkgauth.HashService{},
		&pkgauth.JWTService{},
		clients.NewHTTPClient(),
		lineAPIURL,
	)
	checkinService := checkinservice.New(repo.CheckinRepo, repo.UserRepo)
	reportService := reportservice.New(repo.ReportRepo)

	return &Services{
		AuthService:         authService,
		LoyaltyService:      loyaltyService,
		StockService:        stockService,
		CatalogService:      catalogService,
		NotificationService: notificationService,
		CheckinService:      checkinService,
		ReportService:       reportService,
	}
}
