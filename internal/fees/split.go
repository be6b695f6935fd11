package fees

import "github.com/rekberhub/settlement/internal/domain"

// Breakdown is the financial decomposition of one order for one seller.
// Payout may be negative for bookkeeping purposes; callers clamp at the
// settlement boundary, never here.
type Breakdown struct {
	Gross            int64
	VoucherDeduction int64
	Net              int64
	Fee              int64
	Payout           int64
}

// Split computes the seller-side money breakdown of an order. An empty
// sellerID aggregates over all line items, which is used for
// platform-wide reporting. Split performs no I/O and is deterministic.
func Split(order *domain.Order, sellerID string, isCompetitor bool, policy MarketplacePolicy) Breakdown {
	var b Breakdown
	for _, item := range order.Items {
		if sellerID != "" && item.SellerID != sellerID {
			continue
		}
		b.Gross += item.Price * item.Quantity
	}

	if v := order.Voucher; v != nil {
		for _, item := range order.Items {
			if item.ProductID != v.ItemID {
				continue
			}
			if sellerID == "" || item.SellerID == sellerID {
				b.VoucherDeduction = v.Amount
			}
			break
		}
	}

	b.Net = b.Gross - b.VoucherDeduction
	if b.Net < 0 {
		b.Net = 0
	}
	b.Fee = policy.Fee(b.Net, isCompetitor)
	b.Payout = b.Net - b.Fee
	return b
}
