package response

import (
	"time"

	"payments-service/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	ExternalID      string    `json:"external_id"`
	Status          string    `json:"status"`
	TotalOrderValue float64   `json:"total_order_value"`
	QRCode          string    `json:"qr_code,omitempty"`
	Expiration      time.Time `json:"expiration"`
	CreatedAt       time.Time `json:"created_at"`
	Timestamp       time.Time `json:"timestamp"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ExternalID:      p.ExternalID,
		Status:          string(p.Status),
		TotalOrderValue: p.TotalOrderValue,
		QRCode:          p.QRCode,
		Expiration:      p.Expiration,
		CreatedAt:       p.CreatedAt,
		Timestamp:       p.Timestamp,
	}
}
