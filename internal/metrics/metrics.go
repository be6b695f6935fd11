package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics exposes counters for status transitions and payouts.
type SettlementMetrics struct {
	TransitionsTotal        prometheus.CounterVec
	InvalidTransitionsTotal prometheus.CounterVec
	SettlementsTotal        prometheus.CounterVec
	SettledAmountTotal      prometheus.CounterVec
	AdminFeeTotal           prometheus.CounterVec
	SettlementErrorsTotal   prometheus.CounterVec
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Order status transitions applied",
			},
			[]string{"from", "to"},
		),
		InvalidTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_invalid_transitions_total",
				Help: "Rejected status transition attempts",
			},
			[]string{"from", "to"},
		),
		SettlementsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlements_total",
				Help: "Completed payout settlements",
			},
			[]string{"type"},
		),
		SettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settled_amount_total",
				Help: "Total amount transferred to sellers",
			},
			[]string{"type"},
		),
		AdminFeeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_fee_total",
				Help: "Total admin fee retained by the platform",
			},
			[]string{"competitor"},
		),
		SettlementErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_errors_total",
				Help: "Settlement attempts rejected or failed",
			},
			[]string{"reason"},
		),
	}
}

func (m *SettlementMetrics) RecordTransition(from, to string) {
	m.TransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *SettlementMetrics) RecordInvalidTransition(from, to string) {
	m.InvalidTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *SettlementMetrics) RecordSettlement(settlementType string, amount int64) {
	m.SettlementsTotal.WithLabelValues(settlementType).Inc()
	m.SettledAmountTotal.WithLabelValues(settlementType).Add(float64(amount))
}

func (m *SettlementMetrics) RecordAdminFee(isCompetitor bool, fee int64) {
	label := "false"
	if isCompetitor {
		label = "true"
	}
	m.AdminFeeTotal.WithLabelValues(label).Add(float64(fee))
}

func (m *SettlementMetrics) RecordSettlementError(reason string) {
	m.SettlementErrorsTotal.WithLabelValues(reason).Inc()
}
