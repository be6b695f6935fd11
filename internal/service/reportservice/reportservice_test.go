package reportservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockSellerRepo, *MockPolicyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	orderRepo := NewMockOrderRepo(ctrl)
	sellerRepo := NewMockSellerRepo(ctrl)
	policyRepo := NewMockPolicyRepo(ctrl)
	svc := New(orderRepo, sellerRepo, policyRepo)
	return svc, orderRepo, sellerRepo, policyRepo
}

func settledFixtures() ([]domain.Order, []domain.SellerAccount) {
	payoutAt := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{
			ID:              "ord-1",
			Status:          domain.StatusCompleted,
			PayoutCompleted: true,
			CreatedAt:       createdAt,
			PayoutAt:        &payoutAt,
			Items: []domain.OrderItem{
				{ProductID: "p1", SellerID: "s1", Price: 50000, Quantity: 1},
				{ProductID: "p2", SellerID: "s2", Price: 30000, Quantity: 2},
			},
			Voucher: &domain.AppliedVoucher{ItemID: "p2", Amount: 5000},
		},
		{
			ID:              "ord-2",
			Status:          domain.StatusCompleted,
			PayoutCompleted: true,
			CreatedAt:       createdAt,
			Items: []domain.OrderItem{
				{ProductID: "p3", SellerID: "s1", Price: 300000, Quantity: 1},
			},
		},
	}
	accounts := []domain.SellerAccount{
		{SellerID: "s1", StoreName: "Toko Makmur", IsCompetitor: true},
		{SellerID: "s2", StoreName: "Warung Sari"},
	}
	return orders, accounts
}

func TestService_SettlementRows(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, sellerRepo, policyRepo := NewMock(t)

	orders, accounts := settledFixtures()
	policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
	orderRepo.EXPECT().FindSettled(ctx).Return(orders, nil)
	sellerRepo.EXPECT().ListAll(ctx).Return(accounts, nil)

	rows, err := svc.SettlementRows(ctx)

	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, Row{
		Date: "2026-08-20", OrderID: "ord-1", SellerID: "s1", StoreName: "Toko Makmur",
		Gross: 50000, Voucher: 0, Net: 50000, Fee: 5000, Payout: 45000,
	}, rows[0])
	assert.Equal(t, Row{
		Date: "2026-08-20", OrderID: "ord-1", SellerID: "s2", StoreName: "Warung Sari",
		Gross: 60000, Voucher: 5000, Net: 55000, Fee: 2000, Payout: 53000,
	}, rows[1])
	// No payout timestamp falls back to the creation date.
	assert.Equal(t, Row{
		Date: "2026-08-10", OrderID: "ord-2", SellerID: "s1", StoreName: "Toko Makmur",
		Gross: 300000, Voucher: 0, Net: 300000, Fee: 3000, Payout: 297000,
	}, rows[2])
}

func TestService_WriteCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("renders header and rows", func(t *testing.T) {
		svc, orderRepo, sellerRepo, policyRepo := NewMock(t)
		orders, accounts := settledFixtures()
		policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		orderRepo.EXPECT().FindSettled(ctx).Return(orders, nil)
		sellerRepo.EXPECT().ListAll(ctx).Return(accounts, nil)

		var buf bytes.Buffer
		err := svc.WriteCSV(ctx, &buf)

		assert.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 4)
		assert.Equal(t, "date,order_id,seller_id,store,gross,voucher,net,fee,payout", lines[0])
		assert.Equal(t, "2026-08-20,ord-1,s1,Toko Makmur,50000,0,50000,5000,45000", lines[1])
		assert.Equal(t, "2026-08-20,ord-1,s2,Warung Sari,60000,5000,55000,2000,53000", lines[2])
		assert.Equal(t, "2026-08-10,ord-2,s1,Toko Makmur,300000,0,300000,3000,297000", lines[3])
	})

	t.Run("empty report still has the header", func(t *testing.T) {
		svc, orderRepo, sellerRepo, policyRepo := NewMock(t)
		policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		orderRepo.EXPECT().FindSettled(ctx).Return(nil, nil)
		sellerRepo.EXPECT().ListAll(ctx).Return(nil, nil)

		var buf bytes.Buffer
		err := svc.WriteCSV(ctx, &buf)

		assert.NoError(t, err)
		assert.Equal(t, "date,order_id,seller_id,store,gross,voucher,net,fee,payout\n", buf.String())
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		svc, orderRepo, _, policyRepo := NewMock(t)
		policyRepo.EXPECT().MarketplacePolicy(ctx).Return(fees.DefaultMarketplacePolicy(), nil)
		orderRepo.EXPECT().FindSettled(ctx).Return(nil, errors.New("database error"))

		var buf bytes.Buffer
		err := svc.WriteCSV(ctx, &buf)
		assert.Error(t, err)
	})
}
