package handlers

import (
	"net/http"

	_ "github.com/roboss/washpoint/docs"
	authhandlers "github.com/roboss/washpoint/internal/handlers/auth"
	cataloghandlers "github.com/roboss/washpoint/internal/handlers/catalog"
	checkinhandlers "github.com/roboss/washpoint/internal/handlers/checkin"
	loyaltyhandlers "github.com/roboss/washpoint/internal/handlers/loyalty"
	notificationhandlers "github.com/roboss/washpoint/internal/handlers/notifications"
	reporthandlers "github.com/roboss/washpoint/internal/handlers/reports"
	stockhandlers "github.com/roboss/washpoint/internal/handlers/stock"
	"github.com/roboss/washpoint/internal/service"
	"github.com/roboss/washpoint/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LineLogin(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type LoyaltyHandler interface {
	CompleteWash(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetRedemptions(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type StockHandler interface {
	CreateItem(w http.ResponseWriter, r *http.Request)
	GetItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	StockIn(w http.ResponseWriter, r *http.Request)
	StockOut(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetBranches(w http.ResponseWriter, r *http.Request)
	CreateBranch(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	GetPackages(w http.ResponseWriter, r *http.Request)
	CreatePackage(w http.ResponseWriter, r *http.Request)
	UpdatePackage(w http.ResponseWriter, r *http.Request)
	CreateReward(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type CheckinHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Financial(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	LoyaltyHandler      LoyaltyHandler
	StockHandler        StockHandler
	CatalogHandler      CatalogHandler
	NotificationHandler NotificationHandler
	CheckinHandler      CheckinHandler
	ReportHandler       ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		LoyaltyHandler:      loyaltyhandlers.New(s.LoyaltyService),
		StockHandler:        stockhandlers.New(s.StockService),
		CatalogHandler:      cataloghandlers.New(s.CatalogService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		CheckinHandler:      checkinhandlers.New(s.CheckinService),
		ReportHandler:       reporthandlers.New(s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/line", h.AuthHandler.LineLogin)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Get("/branches", h.CatalogHandler.GetBranches)
		r.Get("/packages", h.CatalogHandler.GetPackages)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/loyalty", func(r chi.Router) {
				r.Post("/washes", h.LoyaltyHandler.CompleteWash)
				r.Get("/transactions", h.LoyaltyHandler.GetTransactions)
				r.Get("/rewards", h.LoyaltyHandler.GetRewards)
				r.Post("/redemptions", h.LoyaltyHandler.Redeem)
				r.Get("/redemptions", h.LoyaltyHandler.GetRedemptions)
			})

			r.Route("/checkin", func(r chi.Router) {
				r.Post("/code", h.CheckinHandler.Generate)
				r.Post("/scan", h.CheckinHandler.Scan)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetNotifications)
				r.Post("/read-all", h.NotificationHandler.MarkAllRead)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Route("/items", func(r chi.Router) {
					r.Post("/", h.StockHandler.CreateItem)
					r.Get("/", h.StockHandler.GetItems)
					r.Get("/{id}", h.StockHandler.GetItem)
					r.Put("/{id}", h.StockHandler.UpdateItem)
					r.Post("/{id}/in", h.StockHandler.StockIn)
					r.Post("/{id}/out", h.StockHandler.StockOut)
					r.Post("/{id}/adjust", h.StockHandler.Adjust)
				})
			})

			r.Post("/branches", h.CatalogHandler.CreateBranch)
			r.Put("/branches/{id}", h.CatalogHandler.UpdateBranch)
			r.Post("/packages", h.CatalogHandler.CreatePackage)
			r.Put("/packages/{id}", h.CatalogHandler.UpdatePackage)
			r.Post("/rewards", h.CatalogHandler.CreateReward)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", h.ReportHandler.Dashboard)
				r.Get("/financial", h.ReportHandler.Financial)
			})
		})
	})

	return r
}
