package scoringservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rekberhub/settlement/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scoringservice.go -destination=scoringservice_mock.go -package=scoringservice

type OrderRepo interface {
	FindInWindow(ctx context.Context, start, end time.Time) ([]domain.Order, error)
}

type SellerRepo interface {
	ListAll(ctx context.Context) ([]domain.SellerAccount, error)
	UpdateCompetitionStats(ctx context.Context, sellerID string, revenue, qty, pointsEvent int64) error
}

type PolicyRepo interface {
	RewardWindow(ctx context.Context) (*domain.RewardWindow, error)
}

var ErrWindowInactive = errors.New("reward window is not active")

const (
	rewardMinSales   = 10
	rewardMinRevenue = 500000
	leaderboardSize  = 3
)

// SellerScore is one seller's standing in the competition window.
type SellerScore struct {
	SellerID     string
	StoreName    string
	Revenue      int64
	Qty          int64
	Sales        int64
	Score        int64
	IsCompetitor bool
	Eligible     bool
}

// Service aggregates settled-revenue scores over the admin-configured
// reward window. The window and seller flags are re-read on every
// evaluation.
type Service struct {
	orderRepo  OrderRepo
	sellerRepo SellerRepo
	policyRepo PolicyRepo

	mu          sync.RWMutex
	cached      []SellerScore
	refreshedAt time.Time
}

func New(orderRepo OrderRepo, sellerRepo SellerRepo, policyRepo PolicyRepo) *Service {
	return &Service{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		policyRepo: policyRepo,
	}
}

// Scores computes the per-seller competition standing for the active
// reward window. Revenue and quantity accumulate per line item; the
// sales counter increments once per distinct order touching the seller.
func (s *Service) Scores(ctx context.Context) ([]SellerScore, error) {
	window, err := s.policyRepo.RewardWindow(ctx)
	if err != nil {
		return nil, err
	}
	if !window.IsActive {
		return nil, ErrWindowInactive
	}

	orders, err := s.orderRepo.FindInWindow(ctx, window.StartDate, window.EndDate)
	if err != nil {
		zap.L().Error("failed to fetch orders for scoring", zap.Error(err))
		return nil, err
	}
	accounts, err := s.sellerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch seller accounts", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]*SellerScore, len(accounts))
	ordered := make([]*SellerScore, 0, len(accounts))
	for _, acc := range accounts {
		score := &SellerScore{
			SellerID:     acc.SellerID,
			StoreName:    acc.StoreName,
			IsCompetitor: acc.IsCompetitor,
		}
		byID[acc.SellerID] = score
		ordered = append(ordered, score)
	}

	for i := range orders {
		order := &orders[i]
		touched := make(map[string]struct{})
		for _, item := range order.Items {
			score, ok := byID[item.SellerID]
			if !ok {
				continue
			}
			score.Revenue += item.Price * item.Quantity
			score.Qty += item.Quantity
			if _, seen := touched[item.SellerID]; !seen {
				touched[item.SellerID] = struct{}{}
				score.Sales++
			}
		}
	}

	result := make([]SellerScore, 0, len(ordered))
	for _, score := range ordered {
		score.Score = score.Revenue/10000 + score.Qty*5
		score.Eligible = score.IsCompetitor &&
			score.Sales >= rewardMinSales &&
			score.Revenue > rewardMinRevenue
		result = append(result, *score)
	}
	return result, nil
}

// Leaderboard returns the top eligible sellers by score, descending.
// Ties keep account order, which is stable across calls.
func (s *Service) Leaderboard(ctx context.Context) ([]SellerScore, error) {
	scores, err := s.Scores(ctx)
	if err != nil {
		return nil, err
	}
	var eligible []SellerScore
	for _, score := range scores {
		if score.Eligible {
			eligible = append(eligible, score)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score > eligible[j].Score
	})
	if len(eligible) > leaderboardSize {
		eligible = eligible[:leaderboardSize]
	}
	return eligible, nil
}

// RewardCandidates returns every seller meeting the reward bar, in
// account order.
func (s *Service) RewardCandidates(ctx context.Context) ([]SellerScore, error) {
	scores, err := s.Scores(ctx)
	if err != nil {
		return nil, err
	}
	var candidates []SellerScore
	for _, score := range scores {
		if score.Eligible {
			candidates = append(candidates, score)
		}
	}
	return candidates, nil
}

// Cached returns the last refreshed scores without recomputing. Staleness
// up to the refresh interval is expected.
func (s *Service) Cached() ([]SellerScore, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, s.refreshedAt
}
