package dto

import "time"

type DashboardResponseDTO struct {
	TodayRevenue      float64                 `json:"today_revenue" example:"4250.5"`
	TodayTransactions int                     `json:"today_transactions" example:"17"`
	NewUsersToday     int                     `json:"new_users_today" example:"3"`
	TotalUsers        int                     `json:"total_users" example:"1208"`
	ActiveBranches    int                     `json:"active_branches" example:"4"`
	TotalBranches     int                     `json:"total_branches" example:"5"`
	BranchRevenue     []BranchRevenueRowDTO   `json:"branch_revenue"`
}

type FinancialReportResponseDTO struct {
	From              time.Time              `json:"from"`
	To                time.Time              `json:"to"`
	TotalRevenue      float64                `json:"total_revenue" example:"31250"`
	TotalTransactions int                    `json:"total_transactions" example:"125"`
	PointsRedeemed    int                    `json:"points_redeemed" example:"4500"`
	Redemptions       int                    `json:"redemptions" example:"9"`
	ByDay             []DailyRevenueRowDTO   `json:"by_day"`
	ByPackage         []PackageRevenueRowDTO `json:"by_package"`
	ByBranch          []BranchRevenueRowDTO  `json:"by_branch"`
}

type DailyRevenueRowDTO struct {
	Date         string  `json:"date" example:"2024-06-01"`
	Revenue      float64 `json:"revenue" example:"4250.5"`
	Transactions int     `json:"transactions" example:"17"`
}

type PackageRevenueRowDTO struct {
	PackageName  string  `json:"package_name" example:"Premium Wash"`
	Revenue      float64 `json:"revenue" example:"12250"`
	Transactions int     `json:"transactions" example:"35"`
}

type BranchRevenueRowDTO struct {
	BranchID     string  `json:"branch_id"`
	BranchName   string  `json:"branch_name" example:"Sukhumvit 24"`
	Revenue      float64 `json:"revenue" example:"8400"`
	Transactions int     `json:"transactions" example:"24"`
}
