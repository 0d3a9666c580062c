package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/roboss/washpoint/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows(user *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "email", "password_hash", "name", "phone",
		"points", "current_stamps", "total_stamps", "member_tier",
		"line_user_id", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
		user.Points, user.CurrentStamps, user.TotalStamps, user.MemberTier,
		user.LineUserID, user.CreatedAt, user.UpdatedAt,
	)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	stored := &domain.User{
		ID:            "u1",
		Email:         "somchai@example.com",
		PasswordHash:  "hashed_password",
		Name:          "Somchai",
		Points:        120,
		CurrentStamps: 4,
		TotalStamps:   10,
		MemberTier:    domain.TierSilver,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "somchai@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)).
					WithArgs("somchai@example.com").
					WillReturnRows(userRows(stored))
			},
			expectErr: false,
			result:    stored,
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "somchai@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)).
					WithArgs("somchai@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByLineUserID(t *testing.T) {
	repo, mock := NewMock(t)
	stored := &domain.User{ID: "u1", Email: "line-U1234@line.local", LineUserID: "U1234", MemberTier: domain.TierSilver}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE line_user_id = $1`)).
		WithArgs("U1234").
		WillReturnRows(userRows(stored))

	result, err := repo.FindByLineUserID(context.Background(), "U1234")
	assert.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{
		ID:           "u1",
		Email:        "somchai@example.com",
		PasswordHash: "hashed_password",
		Name:         "Somchai",
		TotalStamps:  10,
		MemberTier:   domain.TierSilver,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (id, email, password_hash, name, phone, points, current_stamps, total_stamps, member_tier, line_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+userColumns)).
					WithArgs(user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
						user.Points, user.CurrentStamps, user.TotalStamps, user.MemberTier, user.LineUserID).
					WillReturnRows(userRows(user))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (id, email, password_hash, name, phone, points, current_stamps, total_stamps, member_tier, line_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+userColumns)).
					WithArgs(user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
						user.Points, user.CurrentStamps, user.TotalStamps, user.MemberTier, user.LineUserID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, user.Email, result.Email)
			}
		})
	}
}

func TestRepository_UpdateLoyalty(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{ID: "u1", Points: 250, CurrentStamps: 3, MemberTier: domain.TierGold}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE users
        SET points = $1, current_stamps = $2, member_tier = $3, updated_at = now()
        WHERE id = $4
    `)).
					WithArgs(user.Points, user.CurrentStamps, user.MemberTier, user.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE users
        SET points = $1, current_stamps = $2, member_tier = $3, updated_at = now()
        WHERE id = $4
    `)).
					WithArgs(user.Points, user.CurrentStamps, user.MemberTier, user.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateLoyalty(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
