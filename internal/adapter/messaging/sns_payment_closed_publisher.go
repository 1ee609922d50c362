package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"payments-service/internal/domain/events"
	appconfig "payments-service/internal/infrastructure/config"
	"payments-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPaymentClosedPublisher publishes PaymentClosedEvent to an SNS FIFO
// topic. The payment id is the deduplication id, so retried webhooks that
// somehow re-publish collapse at the broker.

type SNSPaymentClosedPublisher struct {
	client   *sns.Client
	topicARN string
	groupID  string
}

var _ interfaces.IPaymentClosedPublisher = (*SNSPaymentClosedPublisher)(nil)

func NewSNSPaymentClosedPublisher(client *sns.Client, settings appconfig.Settings) *SNSPaymentClosedPublisher {
	return &SNSPaymentClosedPublisher{
		client:   client,
		topicARN: settings.PaymentClosedTopicARN,
		groupID:  settings.PaymentClosedGroupID,
	}
}

func (p *SNSPaymentClosedPublisher) Publish(ctx context.Context, event events.PaymentClosedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrEventPublishing, err)
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn:               aws.String(p.topicARN),
		Subject:                aws.String("payment-closed"),
		Message:                aws.String(string(body)),
		MessageGroupId:         aws.String(p.groupID),
		MessageDeduplicationId: aws.String(event.PaymentID),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrEventPublishing, err)
	}

	log.Printf("[payment][publisher] published payment_id=%s message_id=%s", event.PaymentID, aws.ToString(out.MessageId))
	return nil
}
