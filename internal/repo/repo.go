package repo

import (
	"github.com/roboss/washpoint/internal/pg"
	branchrepo "github.com/roboss/washpoint/internal/repo/branch-repo"
	checkinrepo "github.com/roboss/washpoint/internal/repo/checkin-repo"
	notificationrepo "github.com/roboss/washpoint/internal/repo/notification-repo"
	packagerepo "github.com/roboss/washpoint/internal/repo/package-repo"
	redemptionrepo "github.com/roboss/washpoint/internal/repo/redemption-repo"
	reportrepo "github.com/roboss/washpoint/internal/repo/report-repo"
	rewardrepo "github.com/roboss/washpoint/internal/repo/reward-repo"
	stockrepo "github.com/roboss/washpoint/internal/repo/stock-repo"
	transactionrepo "github.com/roboss/washpoint/internal/repo/transaction-repo"
	userrepo "github.com/roboss/washpoint/internal/repo/user-repo"
)

// Repositories holds the concrete repositories. Several services share the
// same repository through their own narrowed interfaces, so the fields keep
// the concrete types here and the narrowing happens at the service
// constructors.
type Repositories struct {
	UserRepo         *userrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	RewardRepo       *rewardrepo.Repository
	RedemptionRepo   *redemptionrepo.Repository
	BranchRepo       *branchrepo.Repository
	PackageRepo      *packagerepo.Repository
	NotificationRepo *notificationrepo.Repository
	StockRepo        *stockrepo.Repository
	ReportRepo       *reportrepo.Repository
	CheckinRepo      *checkinrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		RewardRepo:       rewardrepo.New(conn),
		RedemptionRepo:   redemptionrepo.New(conn),
		BranchRepo:       branchrepo.New(conn),
		PackageRepo:      packagerepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		StockRepo:        stockrepo.New(conn),
		ReportRepo:       reportrepo.New(conn),
		CheckinRepo:      checkinrepo.New(conn),
	}
}
