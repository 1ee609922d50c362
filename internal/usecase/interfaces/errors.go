package interfaces

import (
	"errors"
	"fmt"
)

// Port error vocabulary. Adapters translate their native failures into
// these so use cases and handlers can branch without knowing the backend.
var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment already exists")
	ErrPersistence      = errors.New("persistence failure")
	ErrPaymentGateway   = errors.New("payment gateway failure")
	ErrEventPublishing  = errors.New("event publishing failure")

	// ErrGatewayNotFound is the 404 flavor of ErrPaymentGateway; it matches
	// both sentinels under errors.Is.
	ErrGatewayNotFound = fmt.Errorf("%w: resource not found", ErrPaymentGateway)
)
