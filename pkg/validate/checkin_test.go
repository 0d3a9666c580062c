package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCheckinCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "Valid Luhn number", code: "79927398713", want: true},
		{name: "Invalid check digit", code: "79927398710", want: false},
		{name: "Non-numeric", code: "not-a-code", want: false},
		{name: "Empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCheckinCode(tt.code))
		})
	}
}
