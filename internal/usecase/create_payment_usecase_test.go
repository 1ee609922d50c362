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

func sampleCommand() CreatePaymentCommand {
	return CreatePaymentCommand{
		OrderID:         "A048",
		TotalOrderValue: 28.5,
		Products: []entities.Product{
			{Description: "X-Burger", Category: "food", Quantity: 3, UnitPrice: 9.5},
		},
	}
}

func TestCreatePaymentUseCase_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(nil, nil)
		_, err := uc.Execute(context.Background(), CreatePaymentCommand{OrderID: "  ", TotalOrderValue: 10})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("non-positive total", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(nil, nil)
		_, err := uc.Execute(context.Background(), CreatePaymentCommand{OrderID: "A048", TotalOrderValue: 0})
		if !errors.Is(err, ErrInvalidOrderValue) {
			t.Fatalf("expected ErrInvalidOrderValue, got %v", err)
		}
	})
}

func TestCreatePaymentUseCase_Execute(t *testing.T) {
	expiration := time.Now().UTC().Add(30 * time.Minute)

	t.Run("creates gateway order and persists OPENED payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreatePaymentUseCase(repo, gateway)

		cmd := sampleCommand()
		repo.EXPECT().ExistsByID(gomock.Any(), "A048").Return(false, nil)
		gateway.EXPECT().CreateDynamicQROrder(gomock.Any(), "A048", 28.5, cmd.Products).
			Return(interfaces.QROrder{ExternalID: "MP123456", QRData: "sample-qr-code", Expiration: expiration}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "A048" || p.ExternalID != "MP123456" || p.Status != entities.StatusOpened {
					t.Fatalf("unexpected payment persisted: %+v", p)
				}
				if p.QRCode != "sample-qr-code" || !p.Expiration.Equal(expiration) {
					t.Fatalf("qr payload/expiration not carried over: %+v", p)
				}
				return p, nil
			})

		created, err := uc.Execute(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.StatusOpened {
			t.Fatalf("expected OPENED, got %s", created.Status)
		}
	})

	t.Run("duplicate order replays existing payment without gateway call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreatePaymentUseCase(repo, gateway)

		existing := entities.NewPayment("A048", "MP123456", 28.5, "sample-qr-code", expiration)
		repo.EXPECT().ExistsByID(gomock.Any(), "A048").Return(true, nil)
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(existing, nil)

		got, err := uc.Execute(context.Background(), sampleCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExternalID != "MP123456" {
			t.Fatalf("expected existing payment, got %+v", got)
		}
	})

	t.Run("save race resolves to existing payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreatePaymentUseCase(repo, gateway)

		winner := entities.NewPayment("A048", "MP999999", 28.5, "other-qr", expiration)
		repo.EXPECT().ExistsByID(gomock.Any(), "A048").Return(false, nil)
		gateway.EXPECT().CreateDynamicQROrder(gomock.Any(), "A048", 28.5, gomock.Any()).
			Return(interfaces.QROrder{ExternalID: "MP123456", QRData: "sample-qr-code", Expiration: expiration}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrDuplicatePayment)
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(winner, nil)

		got, err := uc.Execute(context.Background(), sampleCommand())
		if err != nil {
			t.Fatalf("expected idempotent success, got %v", err)
		}
		if got.ExternalID != "MP999999" {
			t.Fatalf("expected winner row, got %+v", got)
		}
	})

	t.Run("gateway failure propagates and persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreatePaymentUseCase(repo, gateway)

		repo.EXPECT().ExistsByID(gomock.Any(), "A048").Return(false, nil)
		gateway.EXPECT().CreateDynamicQROrder(gomock.Any(), "A048", 28.5, gomock.Any()).
			Return(interfaces.QROrder{}, interfaces.ErrPaymentGateway)

		_, err := uc.Execute(context.Background(), sampleCommand())
		if !errors.Is(err, interfaces.ErrPaymentGateway) {
			t.Fatalf("expected ErrPaymentGateway, got %v", err)
		}
	})

	t.Run("existence check failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCreatePaymentUseCase(repo, gateway)

		repo.EXPECT().ExistsByID(gomock.Any(), "A048").Return(false, interfaces.ErrPersistence)

		_, err := uc.Execute(context.Background(), sampleCommand())
		if !errors.Is(err, interfaces.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}
