package repository

import (
	"context"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SettingDynamoRepository persists key/value settings in DynamoDB.
// Put is an unconditional upsert.
type SettingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingRepository = (*SettingDynamoRepository)(nil)

func NewSettingDynamoRepository(ddb *dynamodb.Client) *SettingDynamoRepository {
	return &SettingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingDynamoRepository) Get(ctx context.Context, key string) (entities.Setting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Setting{}, err
	}
	if out.Item == nil {
		return entities.Setting{}, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Setting{}, err
	}
	return fromSettingItem(it), nil
}

func (r *SettingDynamoRepository) Put(ctx context.Context, s entities.Setting) (entities.Setting, error) {
	av, err := attributevalue.MarshalMap(settingItem{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.Setting{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Setting{}, err
	}
	return s, nil
}

func (r *SettingDynamoRepository) List(ctx context.Context) ([]entities.Setting, error) {
	var items []entities.Setting
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it settingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSettingItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func fromSettingItem(it settingItem) entities.Setting {
	return entities.Setting{
		Key:       it.Key,
		Value:     it.Value,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
