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

const (
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"

	// DynamoDB caps TransactWriteItems at 100 actions, but we stay at 25 to
	// keep parity with BatchWriteItem limits on older endpoints.
	markAllReadBatchSize = 25
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Link      string `dynamodbav:"link,omitempty"`
	IsRead    bool   `dynamodbav:"is_read"`
	ReadAt    string `dynamodbav:"read_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if out.Item == nil {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	now := time.Now().UTC()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #is_read = :read, #read_at = :read_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_read": "is_read",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":    &types.AttributeValueMemberBOOL{Value: true},
			":read_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// MarkAllRead flips every unread notification belonging to userID inside
// TransactWriteItems batches and returns how many it flipped. Notifications
// of other users are never part of the transaction.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	var unreadIDs []string
	for _, n := range all {
		if !n.IsRead {
			unreadIDs = append(unreadIDs, n.ID)
		}
	}
	if len(unreadIDs) == 0 {
		return 0, nil
	}

	now := formatTime(time.Now().UTC())
	for start := 0; start < len(unreadIDs); start += markAllReadBatchSize {
		end := start + markAllReadBatchSize
		if end > len(unreadIDs) {
			end = len(unreadIDs)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, id := range unreadIDs[start:end] {
			items = append(items, types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET #is_read = :read, #read_at = :read_at"),
					ConditionExpression: aws.String("#user_id = :uid"),
					ExpressionAttributeNames: map[string]string{
						"#is_read": "is_read",
						"#read_at": "read_at",
						"#user_id": "user_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":read":    &types.AttributeValueMemberBOOL{Value: true},
						":read_at": &types.AttributeValueMemberS{Value: now},
						":uid":     &types.AttributeValueMemberS{Value: userID},
					},
				},
			})
		}

		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		})
		if err != nil {
			return 0, err
		}
	}
	return len(unreadIDs), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		ReadAt:    formatTimePtr(n.ReadAt),
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Title:     it.Title,
		Message:   it.Message,
		Link:      it.Link,
		IsRead:    it.IsRead,
		ReadAt:    parseTimePtr(it.ReadAt),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
