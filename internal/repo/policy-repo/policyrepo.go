package policyrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

const (
	keyMarketplaceFee = "marketplace_fee"
	keyTripFee        = "trip_fee"
	keyRewardWindow   = "reward_window"
)

// Repository reads admin-configured policy documents. Policies are
// re-read on every evaluation; missing rows fall back to defaults.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) value(ctx context.Context, key string) ([]byte, error) {
	query := `
        SELECT value
        FROM policies
        WHERE key = $1
    `
	var raw []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't read policy", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return raw, nil
}

func (r *Repository) MarketplacePolicy(ctx context.Context) (fees.MarketplacePolicy, error) {
	raw, err := r.value(ctx, keyMarketplaceFee)
	if err != nil {
		return fees.MarketplacePolicy{}, err
	}
	if raw == nil {
		return fees.DefaultMarketplacePolicy(), nil
	}
	var policy fees.MarketplacePolicy
	if err := json.Unmarshal(raw, &policy); err != nil {
		zap.L().Error("can't decode marketplace fee policy", zap.Error(err))
		return fees.MarketplacePolicy{}, err
	}
	return policy.Normalize(), nil
}

func (r *Repository) TripPolicy(ctx context.Context) (fees.TripPolicy, error) {
	raw, err := r.value(ctx, keyTripFee)
	if err != nil {
		return fees.TripPolicy{}, err
	}
	if raw == nil {
		return fees.DefaultTripPolicy(), nil
	}
	var policy fees.TripPolicy
	if err := json.Unmarshal(raw, &policy); err != nil {
		zap.L().Error("can't decode trip fee policy", zap.Error(err))
		return fees.TripPolicy{}, err
	}
	return policy, nil
}

type rewardWindowDoc struct {
	IsActive  bool       `json:"isActive"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (r *Repository) RewardWindow(ctx context.Context) (*domain.RewardWindow, error) {
	raw, err := r.value(ctx, keyRewardWindow)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &domain.RewardWindow{}, nil
	}
	var doc rewardWindowDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.L().Error("can't decode reward window", zap.Error(err))
		return nil, err
	}
	window := &domain.RewardWindow{IsActive: doc.IsActive}
	if doc.StartDate != nil {
		window.StartDate = *doc.StartDate
	}
	if doc.EndDate != nil {
		window.EndDate = *doc.EndDate
	}
	return window, nil
}
