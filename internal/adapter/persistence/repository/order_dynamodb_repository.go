package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderLinesTableName = "order_lines"
	defaultCountersTableName   = "counters"
	orderLinesOrderIDIndex     = "order_id-index"
	orderCounterName           = "orders"
)

type orderItem struct {
	ID       string `dynamodbav:"id"`
	Number   string `dynamodbav:"number"`
	ClientID string `dynamodbav:"client_id,omitempty"`

	CustomerName    string `dynamodbav:"customer_name"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	CustomerAddress string `dynamodbav:"customer_address,omitempty"`
	CustomerEmail   string `dynamodbav:"customer_email,omitempty"`

	Status   string `dynamodbav:"status"`
	Priority string `dynamodbav:"priority"`

	Subtotal string `dynamodbav:"subtotal"`
	Discount string `dynamodbav:"discount"`
	Total    string `dynamodbav:"total"`
	Advance  string `dynamodbav:"advance"`
	Balance  string `dynamodbav:"balance"`

	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`

	DeliveryDate string `dynamodbav:"delivery_date,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type orderLineItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	ProductID   string `dynamodbav:"product_id,omitempty"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Subtotal    string `dynamodbav:"subtotal"`
	Size        string `dynamodbav:"size,omitempty"`
	Color       string `dynamodbav:"color,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order headers and lines in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string)
//   - order_lines: PK id (string), GSI order_id-index (PK: order_id)
//   - counters: PK name (string), attribute seq (number)
//
// Headers and lines live in separate tables; the saga in the use-case layer
// owns the ordering and compensation between them.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
	countersTable  string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		linesTableName: getenvDefault("ORDER_LINES_TABLE", defaultOrderLinesTableName),
		countersTable:  getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

// NextOrderNumber increments the shared counter atomically and returns the
// new value; concurrent creations never observe the same number.
func (r *OrderDynamoRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderCounterName},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter attribute missing")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *OrderDynamoRepository) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) InsertOrderLine(ctx context.Context, l entities.OrderLine) (entities.OrderLine, error) {
	av, err := attributevalue.MarshalMap(toOrderLineItem(l))
	if err != nil {
		return entities.OrderLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.linesTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.OrderLine{}, err
	}
	return l, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var items []orderItem

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var chunk []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &chunk); err != nil {
			return nil, err
		}
		items = append(items, chunk...)
	}

	return lo.Map(items, func(it orderItem, _ int) entities.Order {
		return fromOrderItem(it)
	}), nil
}

func (r *OrderDynamoRepository) ListOrderLines(ctx context.Context, orderID string) ([]entities.OrderLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(orderLinesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []orderLineItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	return lo.Map(items, func(it orderLineItem, _ int) entities.OrderLine {
		return fromOrderLineItem(it)
	}), nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) DeleteOrder(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DeleteOrderLines removes every line of an order: a GSI query for the ids,
// then per-item deletes. Used both by the delete cascade and by saga
// compensation.
func (r *OrderDynamoRepository) DeleteOrderLines(ctx context.Context, orderID string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(orderLinesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ProjectionExpression:   aws.String("id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.linesTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:              o.ID,
		Number:          o.Number,
		ClientID:        o.ClientID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerEmail:   o.CustomerEmail,
		Status:          string(o.Status),
		Priority:        string(o.Priority),
		Subtotal:        decimalToString(o.Subtotal),
		Discount:        decimalToString(o.Discount),
		Total:           decimalToString(o.Total),
		Advance:         decimalToString(o.Advance),
		Balance:         decimalToString(o.Balance),
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
	if o.DeliveryDate != nil {
		it.DeliveryDate = timeToString(*o.DeliveryDate)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:              it.ID,
		Number:          it.Number,
		ClientID:        it.ClientID,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		CustomerAddress: it.CustomerAddress,
		CustomerEmail:   it.CustomerEmail,
		Status:          entities.OrderStatus(it.Status),
		Priority:        entities.OrderPriority(it.Priority),
		Subtotal:        parseDecimal(it.Subtotal),
		Discount:        parseDecimal(it.Discount),
		Total:           parseDecimal(it.Total),
		Advance:         parseDecimal(it.Advance),
		Balance:         parseDecimal(it.Balance),
		PaymentMethod:   it.PaymentMethod,
		Notes:           it.Notes,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.DeliveryDate != "" {
		dd := parseTime(it.DeliveryDate)
		o.DeliveryDate = &dd
	}
	return o
}

func toOrderLineItem(l entities.OrderLine) orderLineItem {
	return orderLineItem{
		ID:          l.ID,
		OrderID:     l.OrderID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UnitPrice:   decimalToString(l.UnitPrice),
		Subtotal:    decimalToString(l.Subtotal),
		Size:        l.Size,
		Color:       l.Color,
		CreatedAt:   timeToString(l.CreatedAt),
	}
}

func fromOrderLineItem(it orderLineItem) entities.OrderLine {
	return entities.OrderLine{
		ID:          it.ID,
		OrderID:     it.OrderID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   parseDecimal(it.UnitPrice),
		Subtotal:    parseDecimal(it.Subtotal),
		Size:        it.Size,
		Color:       it.Color,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
