package ledgerservice

import (
	"context"
	"errors"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type OrderRepo interface {
	FindActiveBySeller(ctx context.Context, sellerID string) ([]domain.Order, error)
}

type SellerRepo interface {
	GetBySellerID(ctx context.Context, sellerID string) (*domain.SellerAccount, error)
}

type PolicyRepo interface {
	MarketplacePolicy(ctx context.Context) (fees.MarketplacePolicy, error)
}

var ErrSellerNotFound = errors.New("seller account not found")

// Service projects the two sides of a seller's money: held funds are
// recomputed from in-flight orders on every call, available funds are the
// persisted ledger balance that only the settlement executor mutates.
type Service struct {
	orderRepo  OrderRepo
	sellerRepo SellerRepo
	policyRepo PolicyRepo
}

func New(orderRepo OrderRepo, sellerRepo SellerRepo, policyRepo PolicyRepo) *Service {
	return &Service{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		policyRepo: policyRepo,
	}
}

// LedgerView is one consistent snapshot of a seller's balances.
type LedgerView struct {
	SellerID  string
	StoreName string
	Held      int64
	Available int64
}

func (s *Service) account(ctx context.Context, sellerID string) (*domain.SellerAccount, error) {
	acc, err := s.sellerRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to get seller account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrSellerNotFound
	}
	return acc, nil
}

// Held sums the net value of the seller's orders that are paid but not
// yet completed. It is a live projection of in-flight risk.
func (s *Service) Held(ctx context.Context, sellerID string) (int64, error) {
	acc, err := s.account(ctx, sellerID)
	if err != nil {
		return 0, err
	}
	return s.heldFor(ctx, acc)
}

func (s *Service) heldFor(ctx context.Context, acc *domain.SellerAccount) (int64, error) {
	policy, err := s.policyRepo.MarketplacePolicy(ctx)
	if err != nil {
		return 0, err
	}
	orders, err := s.orderRepo.FindActiveBySeller(ctx, acc.SellerID)
	if err != nil {
		zap.L().Error("failed to get in-flight orders", zap.Error(err))
		return 0, err
	}

	var held int64
	for i := range orders {
		held += fees.Split(&orders[i], acc.SellerID, acc.IsCompetitor, policy).Net
	}
	return held, nil
}

// Available returns the authoritative withdrawable balance.
func (s *Service) Available(ctx context.Context, sellerID string) (int64, error) {
	acc, err := s.account(ctx, sellerID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Balances returns held and available in one snapshot.
func (s *Service) Balances(ctx context.Context, sellerID string) (*LedgerView, error) {
	acc, err := s.account(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	held, err := s.heldFor(ctx, acc)
	if err != nil {
		return nil, err
	}
	return &LedgerView{
		SellerID:  acc.SellerID,
		StoreName: acc.StoreName,
		Held:      held,
		Available: acc.Balance,
	}, nil
}
