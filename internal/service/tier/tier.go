package tier

import "github.com/roboss/washpoint/internal/domain"

// Membership thresholds on the lifetime points total.
const (
	GoldThreshold     = 2000
	PlatinumThreshold = 5000
)

// Calculate maps a points total to the membership tier. Total over all
// inputs; anything below the Gold threshold, including negative values,
// is Silver.
func Calculate(points int) domain.Tier {
	switch {
	case points >= PlatinumThreshold:
		return domain.TierPlatinum
	case points >= GoldThreshold:
		return domain.TierGold
	default:
		return domain.TierSilver
	}
}
