package messaging

import (
	"context"
	"log"

	"payments-service/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// ConnectSQS creates an SQS client from the environment.
// SQS_ENDPOINT overrides the endpoint for local setups.
func ConnectSQS() *sqs.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background(), sqs.ServiceID, "SQS_ENDPOINT")
	if err != nil {
		log.Fatalf("failed to create sqs config: %v", err)
	}
	return sqs.NewFromConfig(cfg)
}

// ConnectSNS creates an SNS client from the environment.
// SNS_ENDPOINT overrides the endpoint for local setups.
func ConnectSNS() *sns.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background(), sns.ServiceID, "SNS_ENDPOINT")
	if err != nil {
		log.Fatalf("failed to create sns config: %v", err)
	}
	return sns.NewFromConfig(cfg)
}
