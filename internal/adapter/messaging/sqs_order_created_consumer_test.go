package messaging

import (
	"context"
	"testing"

	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase"
	"payments-service/internal/usecase/interfaces"
	mock_usecase "payments-service/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

func consumerWith(uc usecase.ICreatePaymentUseCase, calls *int) *OrderCreatedConsumer {
	return NewOrderCreatedConsumer(nil, "queue-url", func() usecase.ICreatePaymentUseCase {
		*calls++
		return uc
	})
}

func TestOrderCreatedConsumer_ProcessMessage(t *testing.T) {
	validBody := `{"order_id":"A048","total_order_value":28.5,"products":[{"description":"X-Burger","category":"food","quantity":3,"unit_price":9.5}]}`

	t.Run("acks on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockICreatePaymentUseCase(ctrl)

		uc.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreatePaymentCommand) (entities.Payment, error) {
				if cmd.OrderID != "A048" || cmd.TotalOrderValue != 28.5 || len(cmd.Products) != 1 {
					t.Fatalf("command decoded incorrectly: %+v", cmd)
				}
				return entities.Payment{ID: cmd.OrderID, Status: entities.StatusOpened}, nil
			})

		calls := 0
		if ack := consumerWith(uc, &calls).ProcessMessage(context.Background(), validBody); !ack {
			t.Fatalf("expected ack on success")
		}
		if calls != 1 {
			t.Fatalf("expected one scoped use case per message, got %d", calls)
		}
	})

	t.Run("leaves retryable failures for redelivery", func(t *testing.T) {
		for _, portErr := range []error{interfaces.ErrPaymentGateway, interfaces.ErrPersistence} {
			ctrl := gomock.NewController(t)
			uc := mock_usecase.NewMockICreatePaymentUseCase(ctrl)
			uc.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(entities.Payment{}, portErr)

			calls := 0
			if ack := consumerWith(uc, &calls).ProcessMessage(context.Background(), validBody); ack {
				t.Fatalf("%v: expected no ack", portErr)
			}
			ctrl.Finish()
		}
	})

	t.Run("acks malformed bodies without invoking the use case", func(t *testing.T) {
		calls := 0
		c := NewOrderCreatedConsumer(nil, "queue-url", func() usecase.ICreatePaymentUseCase {
			calls++
			return nil
		})

		if ack := c.ProcessMessage(context.Background(), `{not-json`); !ack {
			t.Fatalf("expected ack for malformed body")
		}
		if calls != 0 {
			t.Fatalf("use case must not run for malformed bodies")
		}
	})

	t.Run("acks commands that can never succeed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mock_usecase.NewMockICreatePaymentUseCase(ctrl)
		uc.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrInvalidOrderID)

		calls := 0
		if ack := consumerWith(uc, &calls).ProcessMessage(context.Background(), `{"order_id":"","total_order_value":1}`); !ack {
			t.Fatalf("expected ack for permanently invalid command")
		}
	})
}
