package rewardrepo

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

func rewardRows(rewards ...domain.Reward) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "description", "points", "category", "stock", "is_active", "created_at"})
	for _, rw := range rewards {
		rows.AddRow(rw.ID, rw.Name, rw.Description, rw.Points, rw.Category, rw.Stock, rw.IsActive, rw.CreatedAt)
	}
	return rows
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	stored := domain.Reward{
		ID:        "r1",
		Name:      "Free Premium Wash",
		Points:    500,
		Category:  "wash",
		Stock:     10,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Reward
	}{
		{
			name: "Reward found",
			id:   "r1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`)).
					WithArgs("r1").
					WillReturnRows(rewardRows(stored))
			},
			result: &stored,
		},
		{
			name: "Reward not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "r1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`)).
					WithArgs("r1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	stored := []domain.Reward{
		{ID: "r1", Name: "Air Freshener", Points: 150, Stock: 30, IsActive: true},
		{ID: "r2", Name: "Free Premium Wash", Points: 500, Stock: 10, IsActive: true},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rewardColumns + ` FROM rewards WHERE is_active = TRUE ORDER BY points ASC`)).
		WillReturnRows(rewardRows(stored...))

	result, err := repo.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	reward := &domain.Reward{ID: "r1", Name: "Free Premium Wash", Points: 500, Category: "wash", Stock: 10, IsActive: true}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO rewards (id, name, description, points, category, stock, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `)).
					WithArgs(reward.ID, reward.Name, reward.Description, reward.Points,
						reward.Category, reward.Stock, reward.IsActive).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO rewards (id, name, description, points, category, stock, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `)).
					WithArgs(reward.ID, reward.Name, reward.Description, reward.Points,
						reward.Category, reward.Stock, reward.IsActive).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), reward)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Decrements stock",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0`)).
					WithArgs("r1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "No stock left",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0`)).
					WithArgs("r1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.DecrementStock(context.Background(), "r1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
