package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"payments-service/internal/domain/entities"
	"payments-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsExternalIDIndex  = "external_id-index"
)

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	ExternalID      string `dynamodbav:"external_id"`
	Status          string `dynamodbav:"status"`
	TotalOrderValue string `dynamodbav:"total_order_value"`
	QRCode          string `dynamodbav:"qr_code,omitempty"`
	Expiration      string `dynamodbav:"expiration"`
	CreatedAt       string `dynamodbav:"created_at"`
	Timestamp       string `dynamodbav:"timestamp"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string) — the upstream order id
//   - GSI: external_id-index (PK: external_id)
//
// Save conditions the put on `attribute_not_exists(id) OR external_id =
// :ext`: a fresh insert and a status update of the same logical payment
// both pass, while a racing insert for the same order but a different
// gateway order fails and surfaces as ErrDuplicatePayment.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) FindByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, persistenceErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, interfaces.ErrPaymentNotFound
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, persistenceErr(err)
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ProjectionExpression: aws.String("id"),
		ConsistentRead:       aws.Bool(true),
	})
	if err != nil {
		return false, persistenceErr(err)
	}
	return len(out.Item) > 0, nil
}

func (r *PaymentDynamoRepository) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: externalID},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, persistenceErr(err)
	}
	return out.Count > 0, nil
}

func (r *PaymentDynamoRepository) Save(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, persistenceErr(err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #external_id = :ext"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#external_id": "external_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ext": &types.AttributeValueMemberS{Value: p.ExternalID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrDuplicatePayment
		}
		return entities.Payment{}, persistenceErr(err)
	}
	return p, nil
}

func persistenceErr(err error) error {
	return fmt.Errorf("%w: %v", interfaces.ErrPersistence, err)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		ExternalID:      p.ExternalID,
		Status:          string(p.Status),
		TotalOrderValue: floatToString(p.TotalOrderValue),
		QRCode:          p.QRCode,
		Expiration:      p.Expiration.UTC().Format(time.RFC3339Nano),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		Timestamp:       p.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	expiration, _ := time.Parse(time.RFC3339Nano, it.Expiration)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	timestamp, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	total, _ := strconv.ParseFloat(it.TotalOrderValue, 64)
	return entities.Payment{
		ID:              it.ID,
		ExternalID:      it.ExternalID,
		Status:          entities.PaymentStatus(it.Status),
		TotalOrderValue: total,
		QRCode:          it.QRCode,
		Expiration:      expiration,
		CreatedAt:       createdAt,
		Timestamp:       timestamp,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
