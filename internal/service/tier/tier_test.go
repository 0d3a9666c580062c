package tier

import (
	"testing"

	"github.com/roboss/washpoint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   domain.Tier
	}{
		{name: "Zero points", points: 0, want: domain.TierSilver},
		{name: "Below gold threshold", points: 1999, want: domain.TierSilver},
		{name: "Exactly gold threshold", points: 2000, want: domain.TierGold},
		{name: "Between gold and platinum", points: 4999, want: domain.TierGold},
		{name: "Exactly platinum threshold", points: 5000, want: domain.TierPlatinum},
		{name: "Far above platinum", points: 120000, want: domain.TierPlatinum},
		{name: "Negative points", points: -10, want: domain.TierSilver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.points))
		})
	}
}
