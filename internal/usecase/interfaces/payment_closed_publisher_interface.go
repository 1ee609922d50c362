package interfaces

import (
	"context"

	"payments-service/internal/domain/events"
)

//go:generate mockgen -source=payment_closed_publisher_interface.go -destination=mocks/payment_closed_publisher_mock.go -package=mock_interfaces

// IPaymentClosedPublisher publishes PaymentClosedEvent to downstream
// consumers, deduplicated by payment id. Failures surface as
// ErrEventPublishing.
type IPaymentClosedPublisher interface {
	Publish(ctx context.Context, event events.PaymentClosedEvent) error
}
