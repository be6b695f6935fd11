package domain

import "time"

type OrderStatus string

const (
	StatusWaitingPayment      OrderStatus = "waiting_payment"
	StatusWaitingVerification OrderStatus = "waiting_verification"
	StatusPaymentRejected     OrderStatus = "payment_rejected"
	StatusProcessed           OrderStatus = "processed"
	StatusShipped             OrderStatus = "shipped"
	StatusCompleted           OrderStatus = "completed"
	StatusCancelled           OrderStatus = "cancelled"
)

// ServiceCategory marks line items that are fulfilled without physical
// shipment; shipping such an order stores a sentinel tracking reference.
const ServiceCategory = "service"

type OrderItem struct {
	ProductID string `json:"productId"`
	SellerID  string `json:"sellerId"`
	StoreName string `json:"storeName"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Category  string `json:"category"`
}

// AppliedVoucher is a discount attributed to exactly one line item, and
// therefore to exactly one seller.
type AppliedVoucher struct {
	ItemID string `json:"itemId"`
	Amount int64  `json:"amount"`
}

type Order struct {
	ID              string          `db:"id"`
	BuyerID         string          `db:"buyer_id"`
	TotalPrice      int64           `db:"total_price"`
	Items           []OrderItem     `db:"items"`
	Voucher         *AppliedVoucher `db:"voucher"`
	Status          OrderStatus     `db:"status"`
	ProofURL        string          `db:"proof_url"`
	PaidAt          *time.Time      `db:"paid_at"`
	VerifiedAt      *time.Time      `db:"verified_at"`
	ShippedAt       *time.Time      `db:"shipped_at"`
	Resi            string          `db:"resi"`
	RejectionReason string          `db:"rejection_reason"`
	PayoutCompleted bool            `db:"payout_completed"`
	PayoutProofURL  string          `db:"payout_proof_url"`
	PayoutAt        *time.Time      `db:"payout_at"`
	CompletedBy     string          `db:"completed_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// SellerIDs returns the distinct sellers appearing in the order's items,
// in item order.
func (o *Order) SellerIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	var ids []string
	for _, item := range o.Items {
		if _, ok := seen[item.SellerID]; ok {
			continue
		}
		seen[item.SellerID] = struct{}{}
		ids = append(ids, item.SellerID)
	}
	return ids
}

// HasServiceItem reports whether any line item belongs to the service
// category.
func (o *Order) HasServiceItem() bool {
	for _, item := range o.Items {
		if item.Category == ServiceCategory {
			return true
		}
	}
	return false
}

type SellerAccount struct {
	ID                 int       `db:"id"`
	SellerID           string    `db:"seller_id"`
	StoreName          string    `db:"store_name"`
	IsCompetitor       bool      `db:"is_competitor"`
	Balance            int64     `db:"balance"`
	CompetitionRevenue int64     `db:"competition_revenue"`
	CompetitionQty     int64     `db:"competition_qty"`
	PointsEvent        int64     `db:"points_event"`
	PointsLoyalty      int64     `db:"points_loyalty"`
	PaymentDetails     string    `db:"payment_details"`
	CreatedAt          time.Time `db:"created_at"`
}

type WithdrawalType string

const (
	WithdrawalSingle WithdrawalType = "single"
	WithdrawalBulk   WithdrawalType = "bulk"
)

// WithdrawalRecord is the append-only audit trail of cash physically
// transferred to sellers. Rows are never updated or deleted.
type WithdrawalRecord struct {
	ID        string         `db:"id"`
	SellerID  string         `db:"seller_id"`
	Amount    int64          `db:"amount"`
	ProofURL  string         `db:"proof_url"`
	Status    string         `db:"status"`
	OrderIDs  []string       `db:"order_ids"`
	Type      WithdrawalType `db:"type"`
	Note      string         `db:"note"`
	CreatedAt time.Time      `db:"created_at"`
}

type Notification struct {
	ID         int       `db:"id"`
	UserID     string    `db:"user_id"`
	Title      string    `db:"title"`
	Message    string    `db:"message"`
	Type       string    `db:"type"`
	TargetView string    `db:"target_view"`
	TargetTab  string    `db:"target_tab"`
	OrderID    string    `db:"order_id"`
	IsRead     bool      `db:"is_read"`
	CreatedAt  time.Time `db:"created_at"`
}

// RewardWindow is the admin-configured competition scoring window. It is
// re-read on every evaluation, never cached indefinitely.
type RewardWindow struct {
	IsActive  bool      `db:"is_active"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}
