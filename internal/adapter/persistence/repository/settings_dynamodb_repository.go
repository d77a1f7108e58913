package repository

import (
	"context"
	"strconv"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	settingsItemID           = "settings"
)

type settingsItem struct {
	ID                string `dynamodbav:"id"`
	BusinessName      string `dynamodbav:"business_name"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Address           string `dynamodbav:"address,omitempty"`
	CurrencyCode      string `dynamodbav:"currency_code"`
	LowStockThreshold string `dynamodbav:"low_stock_threshold"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the single configuration record.
//
// Table requirements:
//   - PK: id (string), always the constant "settings"
//
// Put is an unconditional upsert: the configuration page overwrites the
// whole record.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultSettings(), nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.Settings) settingsItem {
	return settingsItem{
		ID:                settingsItemID,
		BusinessName:      s.BusinessName,
		Phone:             s.Phone,
		Address:           s.Address,
		CurrencyCode:      s.CurrencyCode,
		LowStockThreshold: strconv.Itoa(s.LowStockThreshold),
		UpdatedAt:         timeToString(s.UpdatedAt),
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	threshold, _ := strconv.Atoi(it.LowStockThreshold)
	return entities.Settings{
		BusinessName:      it.BusinessName,
		Phone:             it.Phone,
		Address:           it.Address,
		CurrencyCode:      it.CurrencyCode,
		LowStockThreshold: threshold,
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
