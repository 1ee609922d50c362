package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"payments-service/internal/domain/entities"
	"payments-service/internal/domain/events"
	"payments-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidMPPaymentID = errors.New("invalid mercado pago payment id")

// IFinalizePaymentUseCase reconciles a gateway payment notification into a
// CLOSED local payment.
type IFinalizePaymentUseCase interface {
	Execute(ctx context.Context, mpPaymentID string) (entities.Payment, error)
}

type FinalizePaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IPaymentClosedPublisher
}

var _ IFinalizePaymentUseCase = (*FinalizePaymentUseCase)(nil)

func NewFinalizePaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IPaymentClosedPublisher) *FinalizePaymentUseCase {
	return &FinalizePaymentUseCase{repo: repo, gateway: gateway, publisher: publisher}
}

// Execute resolves the gateway payment to its merchant order, locates the
// local payment through the order's external reference, transitions it to
// CLOSED and publishes the PaymentClosedEvent.
//
// A publish failure is NOT swallowed: the state change already committed,
// so the caller decides whether the lost event is worth a retry. Re-running
// the whole use case would only observe InvalidStateTransition.
func (u *FinalizePaymentUseCase) Execute(ctx context.Context, mpPaymentID string) (entities.Payment, error) {
	mpPaymentID = strings.TrimSpace(mpPaymentID)
	if mpPaymentID == "" {
		return entities.Payment{}, ErrInvalidMPPaymentID
	}

	mpPayment, err := u.gateway.FindPaymentByID(ctx, mpPaymentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway payment lookup failed mp_payment_id=%s err=%v", mpPaymentID, err)
		return entities.Payment{}, err
	}

	order, err := u.gateway.FindOrderByID(ctx, mpPayment.OrderID)
	if err != nil {
		log.Printf("[payment][usecase] gateway order lookup failed mp_order_id=%d err=%v", mpPayment.OrderID, err)
		return entities.Payment{}, err
	}

	p, err := u.repo.FindByID(ctx, order.ExternalReference)
	if err != nil {
		log.Printf("[payment][usecase] local payment lookup failed external_reference=%s err=%v", order.ExternalReference, err)
		return entities.Payment{}, err
	}

	if err := p.Finalize(entities.StatusClosed); err != nil {
		log.Printf("[payment][usecase] finalize rejected payment_id=%s status=%s err=%v", p.ID, p.Status, err)
		return entities.Payment{}, err
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] save failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment closed payment_id=%s external_id=%s", saved.ID, saved.ExternalID)

	event := events.PaymentClosedEvent{
		EventID:         uuid.NewString(),
		PaymentID:       saved.ID,
		ExternalID:      saved.ExternalID,
		TotalOrderValue: saved.TotalOrderValue,
		ClosedAt:        saved.Timestamp,
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Printf("[payment][usecase] publish failed payment_id=%s err=%v", saved.ID, err)
		return saved, err
	}

	return saved, nil
}
