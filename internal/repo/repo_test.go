package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.RewardRepo)
	assert.NotNil(t, repo.RedemptionRepo)
	assert.NotNil(t, repo.BranchRepo)
	assert.NotNil(t, repo.PackageRepo)
	assert.NotNil(t, repo.NotificationRepo)
	assert.NotNil(t, repo.StockRepo)
	assert.NotNil(t, repo.ReportRepo)
	assert.NotNil(t, repo.CheckinRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
