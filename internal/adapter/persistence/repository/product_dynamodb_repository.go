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

const defaultProductsTableName = "products"

type productItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Category  string   `dynamodbav:"category,omitempty"`
	Price     string   `dynamodbav:"price"`
	Stock     int      `dynamodbav:"stock"`
	Sizes     []string `dynamodbav:"sizes,omitempty"`
	Colors    []string `dynamodbav:"colors,omitempty"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// AdjustStock is the only stock write path. A negative delta carries the
// condition `stock >= needed`, so a stale client-side snapshot can never
// drive stock below zero; the race between two concurrent orders for the
// same product is resolved by DynamoDB, not by the caller.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	sizes, err := attributevalue.Marshal(p.Sizes)
	if err != nil {
		return entities.Product{}, err
	}
	colors, err := attributevalue.Marshal(p.Colors)
	if err != nil {
		return entities.Product{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #category = :category, #price = :price, #sizes = :sizes, #colors = :colors, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: p.Name},
			":category":   &types.AttributeValueMemberS{Value: p.Category},
			":price":      &types.AttributeValueMemberS{Value: decimalToString(p.Price)},
			":sizes":      sizes,
			":colors":     colors,
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(p.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#category":   "category",
			"#price":      "price",
			"#sizes":      "sizes",
			"#colors":     "colors",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// AdjustStock applies the signed delta atomically. Decrements additionally
// require the stored stock to cover the delta; a failed condition comes back
// as a zero-value Product with no error, matching the repository convention
// for conditional misses.
func (r *ProductDynamoRepository) AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
	}
	if delta < 0 {
		condition = "attribute_exists(#id) AND #stock >= :needed"
		values[":needed"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #updated_at = :updated_at ADD #stock :delta"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stock":      "stock",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#stock <= :threshold"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":threshold": &types.AttributeValueMemberN{Value: strconv.Itoa(threshold)},
		},
		ExpressionAttributeNames: map[string]string{
			"#stock": "stock",
		},
	})
}

func (r *ProductDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Product, error) {
	var items []productItem

	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var chunk []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &chunk); err != nil {
			return nil, err
		}
		items = append(items, chunk...)
	}

	return lo.Map(items, func(it productItem, _ int) entities.Product {
		return fromProductItem(it)
	}), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     decimalToString(p.Price),
		Stock:     p.Stock,
		Sizes:     p.Sizes,
		Colors:    p.Colors,
		CreatedAt: timeToString(p.CreatedAt),
		UpdatedAt: timeToString(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Price:     parseDecimal(it.Price),
		Stock:     it.Stock,
		Sizes:     it.Sizes,
		Colors:    it.Colors,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
