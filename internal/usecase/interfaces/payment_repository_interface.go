package interfaces

import (
	"context"

	"payments-service/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Save is an insert with idempotent-overwrite semantics: a write for an id
// already taken by a different gateway order fails with
// ErrDuplicatePayment, while re-saving the same logical payment (status
// updates) succeeds. All methods report storage faults as ErrPersistence.
type IPaymentRepository interface {
	FindByID(ctx context.Context, id string) (entities.Payment, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
}
