package repository

import (
	"context"
	"errors"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAdminConfigTableName = "admin_config"

type adminConfigItem struct {
	ID                    string `dynamodbav:"id"`
	MasterPasswordHash    string `dynamodbav:"master_password_hash"`
	SecondaryPasswordHash string `dynamodbav:"secondary_password_hash"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// AdminConfigDynamoRepository persists the singleton admin config document.
// All operations address the fixed id entities.AdminConfigID.
type AdminConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdminConfigRepository = (*AdminConfigDynamoRepository)(nil)

func NewAdminConfigDynamoRepository(ddb *dynamodb.Client) *AdminConfigDynamoRepository {
	return &AdminConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADMIN_CONFIG_TABLE", defaultAdminConfigTableName),
	}
}

func (r *AdminConfigDynamoRepository) Get(ctx context.Context) (entities.AdminConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.AdminConfigID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdminConfig{}, err
	}
	if out.Item == nil {
		return entities.AdminConfig{}, nil
	}

	var it adminConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AdminConfig{}, err
	}
	return fromAdminConfigItem(it), nil
}

// Init writes the config document only if none exists yet. A concurrent or
// repeated init loses the conditional check and gets a zero-value config back.
func (r *AdminConfigDynamoRepository) Init(ctx context.Context, cfg entities.AdminConfig) (entities.AdminConfig, error) {
	cfg.ID = entities.AdminConfigID

	av, err := attributevalue.MarshalMap(toAdminConfigItem(cfg))
	if err != nil {
		return entities.AdminConfig{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AdminConfig{}, nil
		}
		return entities.AdminConfig{}, err
	}
	return cfg, nil
}

func (r *AdminConfigDynamoRepository) UpdatePasswords(ctx context.Context, masterHash, secondaryHash string) (entities.AdminConfig, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.AdminConfigID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #master = :master, #secondary = :secondary, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#master":     "master_password_hash",
			"#secondary":  "secondary_password_hash",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":master":     &types.AttributeValueMemberS{Value: masterHash},
			":secondary":  &types.AttributeValueMemberS{Value: secondaryHash},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AdminConfig{}, nil
		}
		return entities.AdminConfig{}, err
	}

	var it adminConfigItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AdminConfig{}, err
	}
	return fromAdminConfigItem(it), nil
}

func toAdminConfigItem(cfg entities.AdminConfig) adminConfigItem {
	return adminConfigItem{
		ID:                    cfg.ID,
		MasterPasswordHash:    cfg.MasterPasswordHash,
		SecondaryPasswordHash: cfg.SecondaryPasswordHash,
		CreatedAt:             formatTime(cfg.CreatedAt),
		UpdatedAt:             formatTime(cfg.UpdatedAt),
	}
}

func fromAdminConfigItem(it adminConfigItem) entities.AdminConfig {
	return entities.AdminConfig{
		ID:                    it.ID,
		MasterPasswordHash:    it.MasterPasswordHash,
		SecondaryPasswordHash: it.SecondaryPasswordHash,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
