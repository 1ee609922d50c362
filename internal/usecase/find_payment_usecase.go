package usecase

import (
	"context"
	"errors"
	"strings"

	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase/interfaces"
)

var ErrInvalidPaymentID = errors.New("invalid payment id")

// IFindPaymentByIDUseCase is the read path for a single payment.
type IFindPaymentByIDUseCase interface {
	Execute(ctx context.Context, paymentID string) (entities.Payment, error)
}

type FindPaymentByIDUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IFindPaymentByIDUseCase = (*FindPaymentByIDUseCase)(nil)

func NewFindPaymentByIDUseCase(repo interfaces.IPaymentRepository) *FindPaymentByIDUseCase {
	return &FindPaymentByIDUseCase{repo: repo}
}

func (u *FindPaymentByIDUseCase) Execute(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	return u.repo.FindByID(ctx, paymentID)
}
