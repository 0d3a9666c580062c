package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "Valid password",
			password: "washpoint-secret",
		},
		{
			name:        "Empty password",
			password:    "",
			expectedErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashed)
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(hashed, "$2a$"))
			assert.NotEqual(t, tt.password, hashed)
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	hashed, err := hashService.HashPassword("washpoint-secret")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		expectMatch bool
	}{
		{
			name:        "Matching password",
			password:    "washpoint-secret",
			expectMatch: true,
		},
		{
			name:        "Wrong password",
			password:    "not-the-secret",
			expectMatch: false,
		},
		{
			name:        "Empty password",
			password:    "",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(hashed, tt.password))
		})
	}
}
