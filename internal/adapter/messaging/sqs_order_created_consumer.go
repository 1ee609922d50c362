package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"payments-service/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	receiveWaitSeconds  = 20
	receiveBatchSize    = 10
	receiveRetryBackoff = 5 * time.Second
)

// CreatePaymentFactory builds a create-payment use case bound to a
// resource scope reserved for a single message. Scopes are never shared
// across concurrent messages.
type CreatePaymentFactory func() usecase.ICreatePaymentUseCase

// OrderCreatedConsumer long-polls the order-created queue and drives the
// create-payment use case.
//
// Ack contract: a message is deleted only when the use case succeeded or
// the message can never succeed (malformed body, invalid command).
// Retryable failures (gateway, persistence) leave the message for
// redelivery; dead-lettering is the queue's policy, not ours.

type OrderCreatedConsumer struct {
	client   *sqs.Client
	queueURL string
	factory  CreatePaymentFactory
}

func NewOrderCreatedConsumer(client *sqs.Client, queueURL string, factory CreatePaymentFactory) *OrderCreatedConsumer {
	return &OrderCreatedConsumer{client: client, queueURL: queueURL, factory: factory}
}

// Listen blocks until ctx is canceled.
func (c *OrderCreatedConsumer) Listen(ctx context.Context) error {
	log.Printf("[payment][listener] listening queue=%s", c.queueURL)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: receiveBatchSize,
			WaitTimeSeconds:     receiveWaitSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("[payment][listener] receive failed err=%v", err)
			time.Sleep(receiveRetryBackoff)
			continue
		}

		for _, msg := range out.Messages {
			if !c.ProcessMessage(ctx, aws.ToString(msg.Body)) {
				continue
			}
			_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      aws.String(c.queueURL),
				ReceiptHandle: msg.ReceiptHandle,
			})
			if err != nil {
				// Redelivery of an already-applied message is safe: the
				// create use case is idempotent by order id.
				log.Printf("[payment][listener] delete failed err=%v", err)
			}
		}
	}
}

// ProcessMessage handles one message body and reports whether it should be
// acknowledged (deleted).
func (c *OrderCreatedConsumer) ProcessMessage(ctx context.Context, body string) bool {
	var cmd usecase.CreatePaymentCommand
	if err := json.Unmarshal([]byte(body), &cmd); err != nil {
		log.Printf("[payment][listener] discarding malformed message err=%v", err)
		return true
	}

	uc := c.factory()
	if _, err := uc.Execute(ctx, cmd); err != nil {
		if errors.Is(err, usecase.ErrInvalidOrderID) || errors.Is(err, usecase.ErrInvalidOrderValue) {
			log.Printf("[payment][listener] discarding invalid command order_id=%q err=%v", cmd.OrderID, err)
			return true
		}
		log.Printf("[payment][listener] leaving message for redelivery order_id=%s err=%v", cmd.OrderID, err)
		return false
	}

	log.Printf("[payment][listener] order processed order_id=%s", cmd.OrderID)
	return true
}
