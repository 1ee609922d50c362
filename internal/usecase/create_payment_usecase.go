package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID    = errors.New("invalid order_id")
	ErrInvalidOrderValue = errors.New("invalid total_order_value")
)

// CreatePaymentCommand is the decoded "order created" message.
type CreatePaymentCommand struct {
	OrderID         string             `json:"order_id"`
	TotalOrderValue float64            `json:"total_order_value"`
	Products        []entities.Product `json:"products"`
}

// ICreatePaymentUseCase turns an order-created command into a persisted
// OPENED payment backed by a gateway dynamic QR order.
type ICreatePaymentUseCase interface {
	Execute(ctx context.Context, cmd CreatePaymentCommand) (entities.Payment, error)
}

type CreatePaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ ICreatePaymentUseCase = (*CreatePaymentUseCase)(nil)

func NewCreatePaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{repo: repo, gateway: gateway}
}

// Execute is replay-safe under at-least-once delivery: a duplicate order id
// returns the already-persisted payment without a second gateway call, and
// a duplicate-save race after the gateway call resolves the same way.
func (u *CreatePaymentUseCase) Execute(ctx context.Context, cmd CreatePaymentCommand) (entities.Payment, error) {
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if cmd.TotalOrderValue <= 0 {
		return entities.Payment{}, ErrInvalidOrderValue
	}

	exists, err := u.repo.ExistsByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if exists {
		log.Printf("[payment][usecase] order already has a payment, replaying order_id=%s", orderID)
		return u.repo.FindByID(ctx, orderID)
	}

	qr, err := u.gateway.CreateDynamicQROrder(ctx, orderID, cmd.TotalOrderValue, cmd.Products)
	if err != nil {
		log.Printf("[payment][usecase] gateway qr order failed order_id=%s err=%v", orderID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] gateway qr order created order_id=%s external_id=%s", orderID, qr.ExternalID)

	p := entities.NewPayment(orderID, qr.ExternalID, cmd.TotalOrderValue, qr.QRData, qr.Expiration)

	saved, err := u.repo.Save(ctx, p)
	if errors.Is(err, interfaces.ErrDuplicatePayment) {
		// A concurrent delivery won the insert; its row is the payment.
		log.Printf("[payment][usecase] lost create race, replaying order_id=%s", orderID)
		return u.repo.FindByID(ctx, orderID)
	}
	if err != nil {
		log.Printf("[payment][usecase] save failed order_id=%s err=%v", orderID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment created order_id=%s status=%s", saved.ID, saved.Status)
	return saved, nil
}
