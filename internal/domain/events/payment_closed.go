package events

import "time"

// PaymentClosedEvent is published when a payment reaches CLOSED.
//
// PaymentID doubles as the deduplication key at the broker, so redundant
// publishes triggered by retried webhooks collapse downstream.

type PaymentClosedEvent struct {
	EventID         string    `json:"event_id"`
	PaymentID       string    `json:"payment_id"`
	ExternalID      string    `json:"external_id"`
	TotalOrderValue float64   `json:"total_order_value"`
	ClosedAt        time.Time `json:"closed_at"`
}
