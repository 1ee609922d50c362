package interfaces

import (
	"context"
	"time"

	"payments-service/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// QROrder is the outcome of creating a dynamic QR order at the gateway.
type QROrder struct {
	ExternalID string // gateway in-store order id
	QRData     string
	Expiration time.Time
}

// GatewayPayment is a gateway-side payment as reported by a webhook lookup.
type GatewayPayment struct {
	ID      string
	OrderID int64
	Status  string
}

// GatewayOrder is a gateway-side merchant order.
type GatewayOrder struct {
	ID                int64
	ExternalReference string
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Failures surface as ErrPaymentGateway, with ErrGatewayNotFound for
// 404-equivalents.
type IPaymentGateway interface {
	CreateDynamicQROrder(ctx context.Context, orderID string, totalOrderValue float64, products []entities.Product) (QROrder, error)
	FindPaymentByID(ctx context.Context, paymentID string) (GatewayPayment, error)
	FindOrderByID(ctx context.Context, orderID int64) (GatewayOrder, error)
}
