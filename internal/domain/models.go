package domain

import "time"

type Tier string

const (
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

type User struct {
	ID            string    `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	Name          string    `db:"name"`
	Phone         string    `db:"phone"`
	Points        int       `db:"points"`
	CurrentStamps int       `db:"current_stamps"`
	TotalStamps   int       `db:"total_stamps"`
	MemberTier    Tier      `db:"member_tier"`
	LineUserID    string    `db:"line_user_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Transaction struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	BranchID     string    `db:"branch_id"`
	PackageID    string    `db:"package_id"`
	PackageName  string    `db:"package_name"`
	Amount       float64   `db:"amount"`
	PointsEarned int       `db:"points_earned"`
	StampsEarned int       `db:"stamps_earned"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type Reward struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Points      int       `db:"points"`
	Category    string    `db:"category"`
	Stock       int       `db:"stock"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type RewardRedemption struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	RewardID   string    `db:"reward_id"`
	PointsUsed int       `db:"points_used"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

type Branch struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Address     string    `db:"address"`
	Status      string    `db:"status"`
	WaitingCars int       `db:"waiting_cars"`
	CreatedAt   time.Time `db:"created_at"`
}

type WashPackage struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        float64   `db:"price"`
	PointsReward int       `db:"points_reward"`
	StampsReward int       `db:"stamps_reward"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type StockItem struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Unit        string    `db:"unit"`
	Quantity    int       `db:"quantity"`
	MinQuantity int       `db:"min_quantity"`
	MaxQuantity int       `db:"max_quantity"`
	UnitPrice   float64   `db:"unit_price"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type StockMovement struct {
	ID               string    `db:"id"`
	StockItemID      string    `db:"stock_item_id"`
	Type             string    `db:"type"`
	Quantity         int       `db:"quantity"`
	PreviousQuantity int       `db:"previous_quantity"`
	NewQuantity      int       `db:"new_quantity"`
	Reason           string    `db:"reason"`
	CreatedAt        time.Time `db:"created_at"`
}

// CheckinCode is a short-lived single-use code rendered as a QR payload
// by the mobile client and scanned at the branch.
type CheckinCode struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
	CreatedAt time.Time `db:"created_at"`
}
