package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rekberhub/settlement/internal/domain"
)

func TestSplit(t *testing.T) {
	policy := DefaultMarketplacePolicy()

	tests := []struct {
		name         string
		order        *domain.Order
		sellerID     string
		isCompetitor bool
		want         Breakdown
	}{
		{
			name: "single seller no voucher",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 50000, Quantity: 1},
				},
			},
			sellerID: "s1",
			want:     Breakdown{Gross: 50000, VoucherDeduction: 0, Net: 50000, Fee: 2000, Payout: 48000},
		},
		{
			name: "competitor with voucher on own item",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 30000, Quantity: 2},
				},
				Voucher: &domain.AppliedVoucher{ItemID: "p1", Amount: 5000},
			},
			sellerID:     "s1",
			isCompetitor: true,
			want:         Breakdown{Gross: 60000, VoucherDeduction: 5000, Net: 55000, Fee: 5000, Payout: 50000},
		},
		{
			name: "competitor percent tier",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 300000, Quantity: 1},
				},
			},
			sellerID:     "s1",
			isCompetitor: true,
			want:         Breakdown{Gross: 300000, VoucherDeduction: 0, Net: 300000, Fee: 3000, Payout: 297000},
		},
		{
			name: "voucher on another seller's item is ignored",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 40000, Quantity: 1},
					{ProductID: "p2", SellerID: "s2", Price: 25000, Quantity: 1},
				},
				Voucher: &domain.AppliedVoucher{ItemID: "p2", Amount: 3000},
			},
			sellerID: "s1",
			want:     Breakdown{Gross: 40000, VoucherDeduction: 0, Net: 40000, Fee: 2000, Payout: 38000},
		},
		{
			name: "multi seller picks only own items",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 40000, Quantity: 1},
					{ProductID: "p2", SellerID: "s2", Price: 25000, Quantity: 2},
					{ProductID: "p3", SellerID: "s1", Price: 10000, Quantity: 3},
				},
			},
			sellerID: "s1",
			want:     Breakdown{Gross: 70000, VoucherDeduction: 0, Net: 70000, Fee: 2000, Payout: 68000},
		},
		{
			name: "empty seller id aggregates whole order",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 40000, Quantity: 1},
					{ProductID: "p2", SellerID: "s2", Price: 25000, Quantity: 1},
				},
				Voucher: &domain.AppliedVoucher{ItemID: "p2", Amount: 3000},
			},
			sellerID: "",
			want:     Breakdown{Gross: 65000, VoucherDeduction: 3000, Net: 62000, Fee: 2000, Payout: 60000},
		},
		{
			name: "voucher larger than gross clamps net to zero",
			order: &domain.Order{
				Items: []domain.OrderItem{
					{ProductID: "p1", SellerID: "s1", Price: 1000, Quantity: 1},
				},
				Voucher: &domain.AppliedVoucher{ItemID: "p1", Amount: 5000},
			},
			sellerID: "s1",
			want:     Breakdown{Gross: 1000, VoucherDeduction: 5000, Net: 0, Fee: 2000, Payout: -2000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.order, tt.sellerID, tt.isCompetitor, policy)
			assert.Equal(t, tt.want, got)
		})
	}
}
