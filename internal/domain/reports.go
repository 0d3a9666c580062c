package domain

// Aggregate rows produced by the admin reporting queries.

type DailyRevenue struct {
	Date         string  `db:"date"`
	Revenue      float64 `db:"revenue"`
	Transactions int     `db:"transactions"`
}

type PackageRevenue struct {
	PackageName  string  `db:"package_name"`
	Revenue      float64 `db:"revenue"`
	Transactions int     `db:"transactions"`
}

type BranchRevenue struct {
	BranchID     string  `db:"branch_id"`
	BranchName   string  `db:"branch_name"`
	Revenue      float64 `db:"revenue"`
	Transactions int     `db:"transactions"`
}

type RevenueTotals struct {
	Revenue      float64 `db:"revenue"`
	Transactions int     `db:"transactions"`
}

type RedemptionTotals struct {
	PointsUsed  int `db:"points_used"`
	Redemptions int `db:"redemptions"`
}
