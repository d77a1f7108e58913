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

const defaultMaterialsTableName = "materials"

type materialItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Supplier     string `dynamodbav:"supplier,omitempty"`
	Unit         string `dynamodbav:"unit"`
	Quantity     int    `dynamodbav:"quantity"`
	ReorderLevel int    `dynamodbav:"reorder_level"`
	CostPerUnit  string `dynamodbav:"cost_per_unit"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists Material entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// AdjustQuantity mirrors the conditional stock discipline of the products
// table.

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	var items []materialItem

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var chunk []materialItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &chunk); err != nil {
			return nil, err
		}
		items = append(items, chunk...)
	}

	return lo.Map(items, func(it materialItem, _ int) entities.Material {
		return fromMaterialItem(it)
	}), nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: m.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #supplier = :supplier, #unit = :unit, #reorder_level = :reorder_level, #cost_per_unit = :cost_per_unit, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: m.Name},
			":supplier":      &types.AttributeValueMemberS{Value: m.Supplier},
			":unit":          &types.AttributeValueMemberS{Value: m.Unit},
			":reorder_level": &types.AttributeValueMemberN{Value: strconv.Itoa(m.ReorderLevel)},
			":cost_per_unit": &types.AttributeValueMemberS{Value: decimalToString(m.CostPerUnit)},
			":updated_at":    &types.AttributeValueMemberS{Value: timeToString(m.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#name":          "name",
			"#supplier":      "supplier",
			"#unit":          "unit",
			"#reorder_level": "reorder_level",
			"#cost_per_unit": "cost_per_unit",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *MaterialDynamoRepository) AdjustQuantity(ctx context.Context, id string, delta int) (entities.Material, error) {
	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
	}
	if delta < 0 {
		condition = "attribute_exists(#id) AND #quantity >= :needed"
		values[":needed"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #updated_at = :updated_at ADD #quantity :delta"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:           m.ID,
		Name:         m.Name,
		Supplier:     m.Supplier,
		Unit:         m.Unit,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		CostPerUnit:  decimalToString(m.CostPerUnit),
		CreatedAt:    timeToString(m.CreatedAt),
		UpdatedAt:    timeToString(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	return entities.Material{
		ID:           it.ID,
		Name:         it.Name,
		Supplier:     it.Supplier,
		Unit:         it.Unit,
		Quantity:     it.Quantity,
		ReorderLevel: it.ReorderLevel,
		CostPerUnit:  parseDecimal(it.CostPerUnit),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
