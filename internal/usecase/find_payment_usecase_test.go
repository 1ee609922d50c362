package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase/interfaces"
	mock_interfaces "payments-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFindPaymentByIDUseCase_Execute(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewFindPaymentByIDUseCase(nil)
		_, err := uc.Execute(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("returns entity unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewFindPaymentByIDUseCase(repo)

		want := entities.NewPayment("A048", "MP123456", 28.5, "sample-qr-code", time.Now().UTC())
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(want, nil)

		got, err := uc.Execute(context.Background(), "A048")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("entity modified by read path: %+v", got)
		}
	})

	t.Run("not found propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewFindPaymentByIDUseCase(repo)

		repo.EXPECT().FindByID(gomock.Any(), "missing").Return(entities.Payment{}, interfaces.ErrPaymentNotFound)

		_, err := uc.Execute(context.Background(), "missing")
		if !errors.Is(err, interfaces.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
