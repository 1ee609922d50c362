package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payments-service/internal/domain/entities"
	"payments-service/internal/domain/events"
	"payments-service/internal/usecase/interfaces"
	mock_interfaces "payments-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func finalizeFixture(t *testing.T) (*FinalizePaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIPaymentClosedPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	publisher := mock_interfaces.NewMockIPaymentClosedPublisher(ctrl)
	return NewFinalizePaymentUseCase(repo, gateway, publisher), repo, gateway, publisher
}

func TestFinalizePaymentUseCase_Execute(t *testing.T) {
	expiration := time.Now().UTC().Add(30 * time.Minute)

	t.Run("closes payment and publishes event with payment id dedup key", func(t *testing.T) {
		uc, repo, gateway, publisher := finalizeFixture(t)

		opened := entities.NewPayment("A048", "MP123456", 28.5, "sample-qr-code", expiration)
		gateway.EXPECT().FindPaymentByID(gomock.Any(), "MP123456").
			Return(interfaces.GatewayPayment{ID: "MP123456", OrderID: 777, Status: "approved"}, nil)
		gateway.EXPECT().FindOrderByID(gomock.Any(), int64(777)).
			Return(interfaces.GatewayOrder{ID: 777, ExternalReference: "A048"}, nil)
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(opened, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.StatusClosed {
					t.Fatalf("expected CLOSED persisted, got %s", p.Status)
				}
				return p, nil
			})
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e events.PaymentClosedEvent) error {
				if e.PaymentID != "A048" || e.ExternalID != "MP123456" {
					t.Fatalf("unexpected event: %+v", e)
				}
				if e.EventID == "" || e.ClosedAt.IsZero() {
					t.Fatalf("event envelope incomplete: %+v", e)
				}
				return nil
			})

		closed, err := uc.Execute(context.Background(), "MP123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed.Status != entities.StatusClosed {
			t.Fatalf("expected CLOSED, got %s", closed.Status)
		}
	})

	t.Run("empty mp payment id", func(t *testing.T) {
		uc, _, _, _ := finalizeFixture(t)
		_, err := uc.Execute(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidMPPaymentID) {
			t.Fatalf("expected ErrInvalidMPPaymentID, got %v", err)
		}
	})

	t.Run("duplicate webhook observes invalid transition and does not publish", func(t *testing.T) {
		uc, repo, gateway, _ := finalizeFixture(t)

		closed := entities.NewPayment("A048", "MP123456", 28.5, "sample-qr-code", expiration)
		if err := closed.Finalize(entities.StatusClosed); err != nil {
			t.Fatalf("fixture: %v", err)
		}

		gateway.EXPECT().FindPaymentByID(gomock.Any(), "MP123456").
			Return(interfaces.GatewayPayment{ID: "MP123456", OrderID: 777}, nil)
		gateway.EXPECT().FindOrderByID(gomock.Any(), int64(777)).
			Return(interfaces.GatewayOrder{ID: 777, ExternalReference: "A048"}, nil)
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(closed, nil)

		_, err := uc.Execute(context.Background(), "MP123456")
		var ist *entities.InvalidStateTransitionError
		if !errors.As(err, &ist) {
			t.Fatalf("expected InvalidStateTransitionError, got %v", err)
		}
	})

	t.Run("gateway payment lookup failure propagates", func(t *testing.T) {
		uc, _, gateway, _ := finalizeFixture(t)

		gateway.EXPECT().FindPaymentByID(gomock.Any(), "MP123456").
			Return(interfaces.GatewayPayment{}, interfaces.ErrGatewayNotFound)

		_, err := uc.Execute(context.Background(), "MP123456")
		if !errors.Is(err, interfaces.ErrGatewayNotFound) {
			t.Fatalf("expected ErrGatewayNotFound, got %v", err)
		}
		if !errors.Is(err, interfaces.ErrPaymentGateway) {
			t.Fatalf("not-found variant must still match ErrPaymentGateway, got %v", err)
		}
	})

	t.Run("local payment missing", func(t *testing.T) {
		uc, repo, gateway, _ := finalizeFixture(t)

		gateway.EXPECT().FindPaymentByID(gomock.Any(), "MP123456").
			Return(interfaces.GatewayPayment{ID: "MP123456", OrderID: 777}, nil)
		gateway.EXPECT().FindOrderByID(gomock.Any(), int64(777)).
			Return(interfaces.GatewayOrder{ID: 777, ExternalReference: "A048"}, nil)
		repo.EXPECT().FindByID(gomock.Any(), "A048").
			Return(entities.Payment{}, interfaces.ErrPaymentNotFound)

		_, err := uc.Execute(context.Background(), "MP123456")
		if !errors.Is(err, interfaces.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("publish failure propagates after successful transition", func(t *testing.T) {
		uc, repo, gateway, publisher := finalizeFixture(t)

		opened := entities.NewPayment("A048", "MP123456", 28.5, "sample-qr-code", expiration)
		gateway.EXPECT().FindPaymentByID(gomock.Any(), "MP123456").
			Return(interfaces.GatewayPayment{ID: "MP123456", OrderID: 777}, nil)
		gateway.EXPECT().FindOrderByID(gomock.Any(), int64(777)).
			Return(interfaces.GatewayOrder{ID: 777, ExternalReference: "A048"}, nil)
		repo.EXPECT().FindByID(gomock.Any(), "A048").Return(opened, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(interfaces.ErrEventPublishing)

		closed, err := uc.Execute(context.Background(), "MP123456")
		if !errors.Is(err, interfaces.ErrEventPublishing) {
			t.Fatalf("expected ErrEventPublishing, got %v", err)
		}
		// The closed entity still comes back; the mutation committed.
		if closed.Status != entities.StatusClosed {
			t.Fatalf("expected CLOSED alongside the publish error, got %s", closed.Status)
		}
	})
}
