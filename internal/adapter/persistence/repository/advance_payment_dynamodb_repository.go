package repository

import (
	"context"
	"time"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "advance_payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type advancePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	OrderID            string                 `dynamodbav:"order_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// AdvancePaymentDynamoRepository persists AdvancePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type AdvancePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdvancePaymentRepository = (*AdvancePaymentDynamoRepository)(nil)

func NewAdvancePaymentDynamoRepository(ddb *dynamodb.Client) *AdvancePaymentDynamoRepository {
	return &AdvancePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *AdvancePaymentDynamoRepository) Create(ctx context.Context, p entities.AdvancePayment) (entities.AdvancePayment, error) {
	av, err := attributevalue.MarshalMap(toAdvancePaymentItem(p))
	if err != nil {
		return entities.AdvancePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AdvancePayment{}, err
	}
	return p, nil
}

func (r *AdvancePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AdvancePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdvancePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.AdvancePayment{}, nil
	}

	var it advancePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AdvancePayment{}, err
	}
	return fromAdvancePaymentItem(it), nil
}

func (r *AdvancePaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.AdvancePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AdvancePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it advancePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAdvancePaymentItem(it))
	}
	return items, nil
}

func toAdvancePaymentItem(p entities.AdvancePayment) advancePaymentItem {
	return advancePaymentItem{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromAdvancePaymentItem(it advancePaymentItem) entities.AdvancePayment {
	return entities.AdvancePayment{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
