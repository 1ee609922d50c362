package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	adaptermessaging "payments-service/internal/adapter/messaging"
	"payments-service/internal/adapter/persistence/repository"
	"payments-service/internal/infrastructure/config"
	"payments-service/internal/infrastructure/database"
	inframessaging "payments-service/internal/infrastructure/messaging"
	"payments-service/internal/infrastructure/payments"
	"payments-service/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	settings := config.Load()
	if settings.OrderCreatedQueueURL == "" {
		log.Fatal("missing SQS_ORDER_CREATED_QUEUE_URL")
	}

	ddb := database.ConnectDynamoDB()

	gateway, err := payments.NewMercadoPagoGateway(settings)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	// Each message gets its own repository/use-case pair; only the AWS
	// clients are shared.
	consumer := adaptermessaging.NewOrderCreatedConsumer(
		inframessaging.ConnectSQS(),
		settings.OrderCreatedQueueURL,
		func() usecase.ICreatePaymentUseCase {
			return usecase.NewCreatePaymentUseCase(repository.NewPaymentDynamoRepository(ddb, settings.PaymentsTable), gateway)
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Listen(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("listener stopped: %v", err)
	}
	log.Print("[payment][listener] shutdown complete")
}
