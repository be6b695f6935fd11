package settlementservice

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
	"github.com/rekberhub/settlement/internal/pg"
)

type mocks struct {
	orderRepo      *MockOrderRepo
	sellerRepo     *MockSellerRepo
	withdrawalRepo *MockWithdrawalRepo
	policyRepo     *MockPolicyRepo
	txManager      *pg.MockTXManager
	proof          *MockProofChecker
	metrics        *MockMetrics
}

func NewMock(t *testing.T, verifyProofs bool) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &mocks{
		orderRepo:      NewMockOrderRepo(ctrl),
		sellerRepo:     NewMockSellerRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		policyRepo:     NewMockPolicyRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
		proof:          NewMockProofChecker(ctrl),
		metrics:        NewMockMetrics(ctrl),
	}
	svc := New(m.orderRepo, m.sellerRepo, m.withdrawalRepo, m.policyRepo, m.txManager, m.proof, verifyProofs, m.metrics)
	return svc, m
}

// passthroughTx makes the mocked transaction manager run the body as-is.
func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func completedOrder(id, sellerID string, price int64) *domain.Order {
	return &domain.Order{
		ID:      id,
		BuyerID: "buyer-1",
		Status:  domain.StatusCompleted,
		Items: []domain.OrderItem{
			{ProductID: "p1", SellerID: sellerID, StoreName: "Toko Makmur", Price: price, Quantity: 1},
		},
	}
}

func sellerAccount(sellerID string, balance int64, isCompetitor bool) *domain.SellerAccount {
	return &domain.SellerAccount{
		SellerID:       sellerID,
		StoreName:      "Toko Makmur",
		Balance:        balance,
		IsCompetitor:   isCompetitor,
		PaymentDetails: "BCA 1234567890 a.n. Budi",
	}
}

const proofURL = "https://cdn.example/transfer.jpg"

func TestService_SettleSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path debits net minus fee", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-1", "s1", 50000)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-1").Return(order, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 100000, false), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-1", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(48000)).Return(int64(52000), nil)
		m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
				assert.Equal(t, int64(48000), record.Amount)
				assert.Equal(t, domain.WithdrawalSingle, record.Type)
				assert.Equal(t, []string{"ord-1"}, record.OrderIDs)
				assert.Contains(t, record.Note, "ord-1")
				return record, nil
			})
		m.metrics.EXPECT().RecordSettlement(string(domain.WithdrawalSingle), int64(48000))
		m.metrics.EXPECT().RecordAdminFee(false, int64(2000))

		record, err := svc.SettleSingle(ctx, "ord-1", proofURL, "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(48000), record.Amount)
		assert.Equal(t, "completed", record.Status)
	})

	t.Run("competitor tier fee", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-2", "s1", 300000)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-2").Return(order, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 500000, true), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-2", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(297000)).Return(int64(203000), nil)
		m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
				return record, nil
			})
		m.metrics.EXPECT().RecordSettlement(string(domain.WithdrawalSingle), int64(297000))
		m.metrics.EXPECT().RecordAdminFee(true, int64(3000))

		record, err := svc.SettleSingle(ctx, "ord-2", proofURL, "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(297000), record.Amount)
	})

	t.Run("negative payout clamps to zero", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-3", "s1", 1000)
		order.Voucher = &domain.AppliedVoucher{ItemID: "p1", Amount: 5000}
		m.orderRepo.EXPECT().FindByID(ctx, "ord-3").Return(order, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 100000, false), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-3", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(0)).Return(int64(100000), nil)
		m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
				return record, nil
			})
		m.metrics.EXPECT().RecordSettlement(string(domain.WithdrawalSingle), int64(0))
		m.metrics.EXPECT().RecordAdminFee(false, int64(2000))

		record, err := svc.SettleSingle(ctx, "ord-3", proofURL, "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), record.Amount)
	})

	t.Run("already settled flag short-circuits", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-4", "s1", 50000)
		order.PayoutCompleted = true
		m.orderRepo.EXPECT().FindByID(ctx, "ord-4").Return(order, nil)

		_, err := svc.SettleSingle(ctx, "ord-4", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("lost CAS race inside tx is benign", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-5", "s1", 50000)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-5").Return(order, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 100000, false), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-5", proofURL, gomock.Any(), "admin-1").Return(false, nil)

		_, err := svc.SettleSingle(ctx, "ord-5", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("not completed", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-6", "s1", 50000)
		order.Status = domain.StatusShipped
		m.orderRepo.EXPECT().FindByID(ctx, "ord-6").Return(order, nil)
		m.metrics.EXPECT().RecordSettlementError("not_completed")

		_, err := svc.SettleSingle(ctx, "ord-6", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrOrderNotCompleted)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.orderRepo.EXPECT().FindByID(ctx, "missing").Return(nil, nil)

		_, err := svc.SettleSingle(ctx, "missing", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("missing proof", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-7").Return(completedOrder("ord-7", "s1", 50000), nil)
		m.metrics.EXPECT().RecordSettlementError("proof")

		_, err := svc.SettleSingle(ctx, "ord-7", "", "admin-1")
		assert.ErrorIs(t, err, ErrMissingProof)
	})

	t.Run("unreachable proof url", func(t *testing.T) {
		svc, m := NewMock(t, true)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-8").Return(completedOrder("ord-8", "s1", 50000), nil)
		m.proof.EXPECT().Head(ctx, proofURL).Return(http.StatusNotFound, nil)
		m.metrics.EXPECT().RecordSettlementError("proof")

		_, err := svc.SettleSingle(ctx, "ord-8", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrProofUnavailable)
	})

	t.Run("reachable proof url passes", func(t *testing.T) {
		svc, m := NewMock(t, true)
		order := completedOrder("ord-9", "s1", 50000)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-9").Return(order, nil)
		m.proof.EXPECT().Head(ctx, proofURL).Return(http.StatusOK, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 100000, false), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-9", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(48000)).Return(int64(52000), nil)
		m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
				return record, nil
			})
		m.metrics.EXPECT().RecordSettlement(gomock.Any(), gomock.Any())
		m.metrics.EXPECT().RecordAdminFee(gomock.Any(), gomock.Any())

		_, err := svc.SettleSingle(ctx, "ord-9", proofURL, "admin-1")
		assert.NoError(t, err)
	})

	t.Run("seller without payment details", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-10").Return(completedOrder("ord-10", "s1", 50000), nil)
		acc := sellerAccount("s1", 100000, false)
		acc.PaymentDetails = ""
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(acc, nil)
		m.metrics.EXPECT().RecordSettlementError("seller")

		_, err := svc.SettleSingle(ctx, "ord-10", proofURL, "admin-1")
		assert.ErrorIs(t, err, ErrNoPaymentDetails)
	})

	t.Run("tx failure surfaces and records error", func(t *testing.T) {
		svc, m := NewMock(t, false)
		order := completedOrder("ord-11", "s1", 50000)
		m.orderRepo.EXPECT().FindByID(ctx, "ord-11").Return(order, nil)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 100000, false), nil)
		m.policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-11", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(48000)).Return(int64(0), errors.New("database error"))
		m.metrics.EXPECT().RecordSettlementError("tx")

		_, err := svc.SettleSingle(ctx, "ord-11", proofURL, "admin-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAlreadySettled)
	})
}

func TestService_SettleBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path debits the admin amount", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 300000, false), nil)
		passthroughTx(m)
		for _, id := range []string{"ord-1", "ord-2"} {
			m.orderRepo.EXPECT().FindByID(gomock.Any(), id).Return(completedOrder(id, "s1", 50000), nil)
			m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), id, proofURL, gomock.Any(), "admin-1").Return(true, nil)
		}
		m.sellerRepo.EXPECT().DebitBalance(gomock.Any(), "s1", int64(96000)).Return(int64(204000), nil)
		m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
				assert.Equal(t, domain.WithdrawalBulk, record.Type)
				assert.Equal(t, []string{"ord-1", "ord-2"}, record.OrderIDs)
				assert.Equal(t, "rekonsiliasi minggu 35", record.Note)
				return record, nil
			})
		m.metrics.EXPECT().RecordSettlement(string(domain.WithdrawalBulk), int64(96000))

		record, err := svc.SettleBulk(ctx, "s1", []string{"ord-1", "ord-2"}, 96000, proofURL, "admin-1", "rekonsiliasi minggu 35")

		assert.NoError(t, err)
		assert.Equal(t, int64(96000), record.Amount)
	})

	t.Run("non positive amount", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.metrics.EXPECT().RecordSettlementError("amount")

		_, err := svc.SettleBulk(ctx, "s1", []string{"ord-1"}, 0, proofURL, "admin-1", "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("amount above balance", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 50000, false), nil)
		m.metrics.EXPECT().RecordSettlementError("balance")

		_, err := svc.SettleBulk(ctx, "s1", []string{"ord-1"}, 96000, proofURL, "admin-1", "")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("one already settled order aborts the batch", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 300000, false), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), "ord-1").Return(completedOrder("ord-1", "s1", 50000), nil)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-1", proofURL, gomock.Any(), "admin-1").Return(true, nil)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), "ord-2").Return(completedOrder("ord-2", "s1", 50000), nil)
		m.orderRepo.EXPECT().MarkPayoutCompleted(gomock.Any(), "ord-2", proofURL, gomock.Any(), "admin-1").Return(false, nil)

		_, err := svc.SettleBulk(ctx, "s1", []string{"ord-1", "ord-2"}, 96000, proofURL, "admin-1", "")
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("one non completed order aborts the batch", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 300000, false), nil)
		passthroughTx(m)
		shipped := completedOrder("ord-1", "s1", 50000)
		shipped.Status = domain.StatusShipped
		m.orderRepo.EXPECT().FindByID(gomock.Any(), "ord-1").Return(shipped, nil)
		m.metrics.EXPECT().RecordSettlementError("tx")

		_, err := svc.SettleBulk(ctx, "s1", []string{"ord-1"}, 48000, proofURL, "admin-1", "")
		assert.ErrorIs(t, err, ErrOrderNotCompleted)
	})

	t.Run("unknown order aborts the batch", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.sellerRepo.EXPECT().GetBySellerID(ctx, "s1").Return(sellerAccount("s1", 300000, false), nil)
		passthroughTx(m)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
		m.metrics.EXPECT().RecordSettlementError("tx")

		_, err := svc.SettleBulk(ctx, "s1", []string{"missing"}, 48000, proofURL, "admin-1", "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_GetWithdrawals(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records", func(t *testing.T) {
		svc, m := NewMock(t, false)
		want := []domain.WithdrawalRecord{
			{ID: "w1", SellerID: "s1", Amount: 48000, Type: domain.WithdrawalSingle, CreatedAt: time.Now()},
		}
		m.withdrawalRepo.EXPECT().ListBySeller(ctx, "s1").Return(want, nil)

		got, err := svc.GetWithdrawals(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("repo error", func(t *testing.T) {
		svc, m := NewMock(t, false)
		m.withdrawalRepo.EXPECT().ListBySeller(ctx, "s1").Return(nil, errors.New("database error"))

		_, err := svc.GetWithdrawals(ctx, "s1")
		assert.Error(t, err)
	})
}
