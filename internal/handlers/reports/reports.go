package reports

import (
	"context"
	"net/http"
	"time"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	"github.com/roboss/washpoint/internal/service/reportservice"
	"github.com/roboss/washpoint/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context) (*reportservice.Dashboard, error)
	Financial(ctx context.Context, from, to time.Time) (*reportservice.FinancialReport, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Dashboard godoc
//
//	@Summary		Admin dashboard
//	@Description	Today's revenue and activity counters plus per-branch revenue
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TodayRevenue:      dashboard.Stats.TodayRevenue,
		TodayTransactions: dashboard.Stats.TodayTransactions,
		NewUsersToday:     dashboard.Stats.NewUsersToday,
		TotalUsers:        dashboard.Stats.TotalUsers,
		ActiveBranches:    dashboard.Stats.ActiveBranches,
		TotalBranches:     dashboard.Stats.TotalBranches,
		BranchRevenue:     branchRows(dashboard.BranchRevenue),
	})
}

// Financial godoc
//
//	@Summary		Financial report
//	@Description	Revenue and redemption totals for a date range with daily, package and branch breakdowns
//	@Tags			Reports
//	@Produce		json
//	@Param			from	query		string	false	"Range start (RFC 3339 date)"
//	@Param			to		query		string	false	"Range end (RFC 3339 date)"
//	@Success		200		{object}	dto.FinancialReportResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/reports/financial [get]
func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	from, ok := queryDate(r, "from")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed from date")
		return
	}
	to, ok := queryDate(r, "to")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed to date")
		return
	}
	report, err := h.reportService.Financial(r.Context(), from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	byDay := make([]dto.DailyRevenueRowDTO, 0, len(report.ByDay))
	for _, row := range report.ByDay {
		byDay = append(byDay, dto.DailyRevenueRowDTO{
			Date:         row.Date,
			Revenue:      row.Revenue,
			Transactions: row.Transactions,
		})
	}
	byPackage := make([]dto.PackageRevenueRowDTO, 0, len(report.ByPackage))
	for _, row := range report.ByPackage {
		byPackage = append(byPackage, dto.PackageRevenueRowDTO{
			PackageName:  row.PackageName,
			Revenue:      row.Revenue,
			Transactions: row.Transactions,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FinancialReportResponseDTO{
		From:              report.From,
		To:                report.To,
		TotalRevenue:      report.TotalRevenue,
		TotalTransactions: report.TotalTransactions,
		PointsRedeemed:    report.PointsRedeemed,
		Redemptions:       report.Redemptions,
		ByDay:             byDay,
		ByPackage:         byPackage,
		ByBranch:          branchRows(report.ByBranch),
	})
}

func branchRows(rows []domain.BranchRevenue) []dto.BranchRevenueRowDTO {
	out := make([]dto.BranchRevenueRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.BranchRevenueRowDTO{
			BranchID:     row.BranchID,
			BranchName:   row.BranchName,
			Revenue:      row.Revenue,
			Transactions: row.Transactions,
		})
	}
	return out
}

// queryDate accepts either a bare date or a full RFC 3339 timestamp.
func queryDate(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
