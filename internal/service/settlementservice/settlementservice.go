package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

type OrderRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	MarkPayoutCompleted(ctx context.Context, orderID, proofURL string, at time.Time, adminID string) (bool, error)
}

type SellerRepo interface {
	GetBySellerID(ctx context.Context, sellerID string) (*domain.SellerAccount, error)
	DebitBalance(ctx context.Context, sellerID string, amount int64) (int64, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.WithdrawalRecord, error)
}

type PolicyRepo interface {
	MarketplacePolicy(ctx context.Context) (fees.MarketplacePolicy, error)
}

// ProofChecker verifies that a proof artifact URL dereferences before a
// settlement is allowed to commit.
type ProofChecker interface {
	Head(ctx context.Context, url string) (int, error)
}

type Metrics interface {
	RecordSettlement(settlementType string, amount int64)
	RecordAdminFee(isCompetitor bool, fee int64)
	RecordSettlementError(reason string)
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCompleted   = errors.New("order is not completed yet")
	ErrAlreadySettled      = errors.New("order already settled")
	ErrMissingProof        = errors.New("transfer proof is required")
	ErrProofUnavailable    = errors.New("transfer proof url is not reachable")
	ErrSellerNotFound      = errors.New("seller account not found")
	ErrNoPaymentDetails    = errors.New("seller has no payment details")
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Service is the settlement executor: it releases escrowed funds to a
// seller, debits the ledger and appends the immutable withdrawal trail.
// Every entry point is atomic over (order flags, ledger debit, record).
type Service struct {
	orderRepo      OrderRepo
	sellerRepo     SellerRepo
	withdrawalRepo WithdrawalRepo
	policyRepo     PolicyRepo
	txManager      pg.TXManager
	proof          ProofChecker
	verifyProofs   bool
	metrics        Metrics
}

func New(
	orderRepo OrderRepo,
	sellerRepo SellerRepo,
	withdrawalRepo WithdrawalRepo,
	policyRepo PolicyRepo,
	txManager pg.TXManager,
	proof ProofChecker,
	verifyProofs bool,
	metrics Metrics,
) *Service {
	return &Service{
		orderRepo:      orderRepo,
		sellerRepo:     sellerRepo,
		withdrawalRepo: withdrawalRepo,
		policyRepo:     policyRepo,
		txManager:      txManager,
		proof:          proof,
		verifyProofs:   verifyProofs,
		metrics:        metrics,
	}
}

func (s *Service) checkProof(ctx context.Context, proofURL string) error {
	if proofURL == "" {
		return ErrMissingProof
	}
	if !s.verifyProofs {
		return nil
	}
	status, err := s.proof.Head(ctx, proofURL)
	if err != nil || status < http.StatusOK || status >= http.StatusBadRequest {
		zap.L().Error("proof url check failed",
			zap.String("url", proofURL),
			zap.Int("status", status),
			zap.Error(err))
		return ErrProofUnavailable
	}
	return nil
}

func (s *Service) sellerWithDetails(ctx context.Context, sellerID string) (*domain.SellerAccount, error) {
	acc, err := s.sellerRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrSellerNotFound
	}
	if acc.PaymentDetails == "" {
		return nil, ErrNoPaymentDetails
	}
	return acc, nil
}

// SettleSingle pays out one completed order to its primary seller.
// A lost compare-and-set race surfaces as ErrAlreadySettled, which
// callers treat as a benign outcome, and a retry after a partial failure
// short-circuits the same way instead of double-debiting.
func (s *Service) SettleSingle(ctx context.Context, orderID, proofURL, adminID string) (*domain.WithdrawalRecord, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.StatusCompleted {
		s.metrics.RecordSettlementError("not_completed")
		return nil, ErrOrderNotCompleted
	}
	if order.PayoutCompleted {
		return nil, ErrAlreadySettled
	}
	if len(order.Items) == 0 {
		return nil, ErrSellerNotFound
	}

	if err := s.checkProof(ctx, proofURL); err != nil {
		s.metrics.RecordSettlementError("proof")
		return nil, err
	}

	sellerID := order.Items[0].SellerID
	acc, err := s.sellerWithDetails(ctx, sellerID)
	if err != nil {
		s.metrics.RecordSettlementError("seller")
		return nil, err
	}

	policy, err := s.policyRepo.MarketplacePolicy(ctx)
	if err != nil {
		return nil, err
	}
	breakdown := fees.Split(order, sellerID, acc.IsCompetitor, policy)
	payout := breakdown.Payout
	if payout < 0 {
		payout = 0
	}

	record := &domain.WithdrawalRecord{
		ID:        uuid.NewString(),
		SellerID:  sellerID,
		Amount:    payout,
		ProofURL:  proofURL,
		Status:    "completed",
		OrderIDs:  []string{order.ID},
		Type:      domain.WithdrawalSingle,
		Note:      fmt.Sprintf("pencairan pesanan %s", order.ID),
		CreatedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		won, err := s.orderRepo.MarkPayoutCompleted(ctx, order.ID, proofURL, record.CreatedAt, adminID)
		if err != nil {
			return err
		}
		if !won {
			return ErrAlreadySettled
		}
		if _, err := s.sellerRepo.DebitBalance(ctx, sellerID, payout); err != nil {
			return err
		}
		if _, err := s.withdrawalRepo.Create(ctx, record); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadySettled) {
			zap.L().Error("single settlement failed",
				zap.String("order_id", order.ID), zap.Error(err))
			s.metrics.RecordSettlementError("tx")
		}
		return nil, err
	}

	s.metrics.RecordSettlement(string(domain.WithdrawalSingle), payout)
	s.metrics.RecordAdminFee(acc.IsCompetitor, breakdown.Fee)
	zap.L().Info("order settled",
		zap.String("order_id", order.ID),
		zap.String("seller_id", sellerID),
		zap.Int64("payout", payout))
	return record, nil
}

// SettleBulk pays out a batch of completed orders for one seller in a
// single transfer. requestedAmount is the admin's authoritative
// reconciliation figure; it is debited as given, not re-derived from the
// per-order payouts.
func (s *Service) SettleBulk(ctx context.Context, sellerID string, orderIDs []string, requestedAmount int64, proofURL, adminID, note string) (*domain.WithdrawalRecord, error) {
	if requestedAmount <= 0 {
		s.metrics.RecordSettlementError("amount")
		return nil, ErrInvalidAmount
	}
	acc, err := s.sellerWithDetails(ctx, sellerID)
	if err != nil {
		s.metrics.RecordSettlementError("seller")
		return nil, err
	}
	if requestedAmount > acc.Balance {
		s.metrics.RecordSettlementError("balance")
		return nil, ErrInsufficientBalance
	}
	if err := s.checkProof(ctx, proofURL); err != nil {
		s.metrics.RecordSettlementError("proof")
		return nil, err
	}

	record := &domain.WithdrawalRecord{
		ID:        uuid.NewString(),
		SellerID:  sellerID,
		Amount:    requestedAmount,
		ProofURL:  proofURL,
		Status:    "completed",
		OrderIDs:  orderIDs,
		Type:      domain.WithdrawalBulk,
		Note:      note,
		CreatedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, orderID := range orderIDs {
			order, err := s.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return err
			}
			if order == nil {
				return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
			}
			if order.Status != domain.StatusCompleted {
				return fmt.Errorf("%w: %s", ErrOrderNotCompleted, orderID)
			}
			won, err := s.orderRepo.MarkPayoutCompleted(ctx, orderID, proofURL, record.CreatedAt, adminID)
			if err != nil {
				return err
			}
			if !won {
				return fmt.Errorf("%w: %s", ErrAlreadySettled, orderID)
			}
		}
		if _, err := s.sellerRepo.DebitBalance(ctx, sellerID, requestedAmount); err != nil {
			return err
		}
		if _, err := s.withdrawalRepo.Create(ctx, record); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadySettled) {
			zap.L().Error("bulk settlement failed",
				zap.String("seller_id", sellerID), zap.Error(err))
			s.metrics.RecordSettlementError("tx")
		}
		return nil, err
	}

	s.metrics.RecordSettlement(string(domain.WithdrawalBulk), requestedAmount)
	zap.L().Info("bulk settlement completed",
		zap.String("seller_id", sellerID),
		zap.Int("orders", len(orderIDs)),
		zap.Int64("amount", requestedAmount))
	return record, nil
}

// GetWithdrawals returns the seller's audit trail, newest first.
func (s *Service) GetWithdrawals(ctx context.Context, sellerID string) ([]domain.WithdrawalRecord, error) {
	records, err := s.withdrawalRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return records, nil
}
