package entities

import (
	"fmt"
	"time"
)

// PaymentStatus represents the lifecycle of a QR payment.
//
// Domain notes:
//   - OPENED is the only non-terminal status.
//   - CLOSED and EXPIRED are terminal: once reached, no further
//     transition is legal.

type PaymentStatus string

const (
	StatusOpened  PaymentStatus = "OPENED"
	StatusClosed  PaymentStatus = "CLOSED"
	StatusExpired PaymentStatus = "EXPIRED"
)

// InvalidStateTransitionError reports an illegal lifecycle move.
type InvalidStateTransitionError struct {
	Current PaymentStatus
	Target  PaymentStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid payment state transition: %s -> %s", e.Current, e.Target)
}

// Payment is the aggregate persisted by the payments-service.
//
// Storage model (DynamoDB):
//   - PK: id — the upstream order id; doubles as the "has this order
//     already produced a payment?" idempotency key.
//   - GSI1 (external_id-index): external_id — the Mercado Pago in-store
//     order id returned when the dynamic QR order is created.
//
// QRCode is set once at creation and never re-derived; finalized payments
// may legitimately carry an empty QRCode.

type Payment struct {
	ID              string        `json:"id"`
	ExternalID      string        `json:"external_id"`
	Status          PaymentStatus `json:"status"`
	TotalOrderValue float64       `json:"total_order_value"`
	QRCode          string        `json:"qr_code,omitempty"`
	Expiration      time.Time     `json:"expiration"`
	CreatedAt       time.Time     `json:"created_at"`
	Timestamp       time.Time     `json:"timestamp"`
}

// NewPayment builds an OPENED payment for a freshly created gateway order.
func NewPayment(id, externalID string, totalOrderValue float64, qrCode string, expiration time.Time) Payment {
	now := time.Now().UTC()
	return Payment{
		ID:              id,
		ExternalID:      externalID,
		Status:          StatusOpened,
		TotalOrderValue: totalOrderValue,
		QRCode:          qrCode,
		Expiration:      expiration,
		CreatedAt:       now,
		Timestamp:       now,
	}
}

// Finalize moves the payment to a terminal status.
//
// It is the single authority for status changes: it succeeds only when the
// payment is still OPENED and the target is not OPENED. On success the
// entity is mutated in place (so callers can persist it directly) and the
// mutation timestamp is refreshed.
func (p *Payment) Finalize(target PaymentStatus) error {
	if p.Status != StatusOpened || target == StatusOpened {
		return &InvalidStateTransitionError{Current: p.Status, Target: target}
	}
	p.Status = target
	p.Timestamp = time.Now().UTC()
	return nil
}
