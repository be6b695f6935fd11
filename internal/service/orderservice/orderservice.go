package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/rekberhub/settlement/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=orderservice_mock.go -package=orderservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Metrics interface {
	RecordTransition(from, to string)
	RecordInvalidTransition(from, to string)
}

type Service struct {
	repo          Repo
	notifications NotificationRepo
	metrics       Metrics
}

func New(repo Repo, notifications NotificationRepo, metrics Metrics) *Service {
	return &Service{
		repo:          repo,
		notifications: notifications,
		metrics:       metrics,
	}
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingProof      = errors.New("payment proof is required")
)

// ResiPrefix starts every internally generated tracking reference.
const ResiPrefix = "RKB"

// ServiceResi is the sentinel reference stored for service orders, which
// have nothing to physically ship.
const ServiceResi = "JASA-NONFISIK"

// legalFrom lists the states each transition may start from.
var legalFrom = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusWaitingVerification: {domain.StatusWaitingPayment, domain.StatusPaymentRejected},
	domain.StatusProcessed:           {domain.StatusWaitingVerification},
	domain.StatusPaymentRejected:     {domain.StatusWaitingVerification},
	domain.StatusShipped:             {domain.StatusProcessed},
	domain.StatusCompleted:           {domain.StatusShipped},
	domain.StatusCancelled:           {domain.StatusWaitingPayment, domain.StatusWaitingVerification, domain.StatusPaymentRejected},
}

func (s *Service) transitionAllowed(from, to domain.OrderStatus) bool {
	for _, legal := range legalFrom[to] {
		if from == legal {
			return true
		}
	}
	return false
}

func (s *Service) load(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) apply(ctx context.Context, order *domain.Order, to domain.OrderStatus) error {
	from := order.Status
	if !s.transitionAllowed(from, to) {
		zap.L().Info("rejected status transition",
			zap.String("order_id", order.ID),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		s.metrics.RecordInvalidTransition(string(from), string(to))
		return ErrInvalidTransition
	}
	order.Status = to
	if err := s.repo.Update(ctx, order); err != nil {
		zap.L().Error("can't update order", zap.Error(err))
		return err
	}
	s.metrics.RecordTransition(string(from), string(to))
	return nil
}

// notify writes to the notification sink. The sink is a fire-and-forget
// fan-out; a failed insert is logged, not rolled back.
func (s *Service) notify(ctx context.Context, n *domain.Notification) {
	n.CreatedAt = time.Now()
	if err := s.notifications.Create(ctx, n); err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
	}
}

// SubmitProof records the buyer's transfer proof and moves the order to
// verification. Legal from waiting_payment and payment_rejected; a
// rejected buyer re-enters the flow by re-uploading.
func (s *Service) SubmitProof(ctx context.Context, orderID, proofURL string) (*domain.Order, error) {
	if proofURL == "" {
		return nil, ErrMissingProof
	}
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.ProofURL = proofURL
	order.PaidAt = &now
	order.RejectionReason = ""
	if err := s.apply(ctx, order, domain.StatusWaitingVerification); err != nil {
		return nil, err
	}
	return order, nil
}

// ApprovePayment verifies the buyer's proof and releases the order to the
// seller for processing.
func (s *Service) ApprovePayment(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.VerifiedAt = &now
	if err := s.apply(ctx, order, domain.StatusProcessed); err != nil {
		return nil, err
	}

	message := "Pembayaran kamu sudah dikonfirmasi. Pesanan sedang diproses penjual."
	if order.HasServiceItem() {
		message = "Pembayaran kamu sudah dikonfirmasi. Penjual akan segera mengerjakan pesanan jasa kamu."
	}
	s.notify(ctx, &domain.Notification{
		UserID:     order.BuyerID,
		Title:      "Pembayaran dikonfirmasi",
		Message:    message,
		Type:       "order",
		TargetView: "orders",
		TargetTab:  "processed",
		OrderID:    order.ID,
	})
	return order, nil
}

// RejectPayment sends the buyer back to the payment step. The stored
// proof is cleared so a stale artifact can never be re-verified.
func (s *Service) RejectPayment(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.ProofURL = ""
	order.PaidAt = nil
	order.RejectionReason = reason
	if err := s.apply(ctx, order, domain.StatusPaymentRejected); err != nil {
		return nil, err
	}

	s.notify(ctx, &domain.Notification{
		UserID:     order.BuyerID,
		Title:      "Pembayaran ditolak",
		Message:    fmt.Sprintf("Bukti transfer kamu ditolak: %s. Silakan unggah ulang bukti pembayaran.", reason),
		Type:       "payment",
		TargetView: "payment",
		OrderID:    order.ID,
	})
	return order, nil
}

// Ship marks the order sent. Physical orders get a generated tracking
// reference; service orders store the fixed sentinel.
func (s *Service) Ship(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resi := ServiceResi
	if !order.HasServiceItem() {
		resi, err = newTrackingRef(time.Now())
		if err != nil {
			zap.L().Error("can't generate tracking reference", zap.Error(err))
			return nil, err
		}
	}

	now := time.Now()
	order.Resi = resi
	order.ShippedAt = &now
	if err := s.apply(ctx, order, domain.StatusShipped); err != nil {
		return nil, err
	}

	s.notify(ctx, &domain.Notification{
		UserID:     order.BuyerID,
		Title:      "Pesanan dikirim",
		Message:    fmt.Sprintf("Pesanan kamu sudah dikirim. Nomor resi: %s.", resi),
		Type:       "order",
		TargetView: "orders",
		TargetTab:  "shipped",
		OrderID:    order.ID,
	})
	return order, nil
}

// Complete records the buyer's delivery confirmation. Only completed
// orders become eligible for settlement.
func (s *Service) Complete(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, order, domain.StatusCompleted); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel aborts an order that has not yet reached processing.
func (s *Service) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, order, domain.StatusCancelled); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns one order by id.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.load(ctx, orderID)
}

// newTrackingRef builds a reference of the form RKB + DDMMYY + a
// time-derived suffix, closed with a Luhn check digit.
func newTrackingRef(now time.Time) (string, error) {
	payload := fmt.Sprintf("%s%06d", now.Format("020106"), now.UnixNano()%1_000_000)
	_, full, err := goluhn.Calculate(payload)
	if err != nil {
		return "", err
	}
	return ResiPrefix + full, nil
}
