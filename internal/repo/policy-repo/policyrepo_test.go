package policyrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rekberhub/settlement/internal/fees"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repo := New(mockDB)
	return repo, mockDB
}

func expectPolicyValue(mock pgxmock.PgxPoolIface, key string, raw []byte) {
	rows := pgxmock.NewRows([]string{"value"})
	if raw != nil {
		rows.AddRow(raw)
	}
	mock.ExpectQuery(`SELECT value\s+FROM policies\s+WHERE key = \$1`).
		WithArgs(key).
		WillReturnRows(rows)
}

func TestRepository_MarketplacePolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("configured row is normalized", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "marketplace_fee", []byte(`{"flatFee":3000}`))

		policy, err := repo.MarketplacePolicy(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3000), policy.FlatFee)
		// Unset fields pick up the defaults.
		assert.Equal(t, int64(50000), policy.Tier2Min)
		assert.Equal(t, int64(20000), policy.PercentFeeCap)
	})

	t.Run("missing row falls back to defaults", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "marketplace_fee", nil)

		policy, err := repo.MarketplacePolicy(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fees.DefaultMarketplacePolicy(), policy)
	})

	t.Run("malformed document", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "marketplace_fee", []byte(`not-json`))

		_, err := repo.MarketplacePolicy(ctx)
		assert.Error(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(`SELECT value\s+FROM policies\s+WHERE key = \$1`).
			WithArgs("marketplace_fee").
			WillReturnError(errors.New("database error"))

		_, err := repo.MarketplacePolicy(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_TripPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("configured row", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "trip_fee", []byte(`{"threshold":20000,"lowFee":1000,"highFee":3000}`))

		policy, err := repo.TripPolicy(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fees.TripPolicy{Threshold: 20000, LowFee: 1000, HighFee: 3000}, policy)
	})

	t.Run("missing row falls back to defaults", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "trip_fee", nil)

		policy, err := repo.TripPolicy(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fees.DefaultTripPolicy(), policy)
	})
}

func TestRepository_RewardWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("active window", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "reward_window",
			[]byte(`{"isActive":true,"startDate":"2026-08-01T00:00:00Z","endDate":"2026-08-31T00:00:00Z"}`))

		window, err := repo.RewardWindow(ctx)

		assert.NoError(t, err)
		assert.True(t, window.IsActive)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), window.StartDate)
		assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), window.EndDate)
	})

	t.Run("missing row means inactive", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "reward_window", nil)

		window, err := repo.RewardWindow(ctx)

		assert.NoError(t, err)
		assert.False(t, window.IsActive)
	})

	t.Run("document without dates", func(t *testing.T) {
		repo, mock := NewMock(t)
		expectPolicyValue(mock, "reward_window", []byte(`{"isActive":true}`))

		window, err := repo.RewardWindow(ctx)

		assert.NoError(t, err)
		assert.True(t, window.IsActive)
		assert.True(t, window.StartDate.IsZero())
	})
}
