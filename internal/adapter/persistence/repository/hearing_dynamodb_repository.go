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
	defaultHearingsTableName = "hearings"
	hearingsCaseIDIndex      = "case_id-index"
)

type hearingItem struct {
	ID            string `dynamodbav:"id"`
	CaseID        string `dynamodbav:"case_id"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	Location      string `dynamodbav:"location,omitempty"`
	Attendance    string `dynamodbav:"attendance,omitempty"`
	Result        string `dynamodbav:"result,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// HearingDynamoRepository persists Hearing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type HearingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHearingRepository = (*HearingDynamoRepository)(nil)

func NewHearingDynamoRepository(ddb *dynamodb.Client) *HearingDynamoRepository {
	return &HearingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HEARINGS_TABLE", defaultHearingsTableName),
	}
}

func (r *HearingDynamoRepository) Create(ctx context.Context, h entities.Hearing) (entities.Hearing, error) {
	av, err := attributevalue.MarshalMap(toHearingItem(h))
	if err != nil {
		return entities.Hearing{}, err
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
		return entities.Hearing{}, err
	}
	return h, nil
}

func (r *HearingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Hearing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Hearing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Hearing{}, nil
	}

	var it hearingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Hearing{}, err
	}
	return fromHearingItem(it), nil
}

func (r *HearingDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Hearing, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(hearingsCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Hearing, 0, len(out.Items))
	for _, raw := range out.Items {
		var it hearingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromHearingItem(it))
	}
	return items, nil
}

func (r *HearingDynamoRepository) UpdateResult(ctx context.Context, h entities.Hearing) (entities.Hearing, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: h.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #attendance = :attendance, #result = :result, #notes = :notes, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":attendance": &types.AttributeValueMemberS{Value: h.Attendance},
			":result":     &types.AttributeValueMemberS{Value: h.Result},
			":notes":      &types.AttributeValueMemberS{Value: h.Notes},
			":status":     &types.AttributeValueMemberS{Value: string(h.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#attendance": "attendance",
			"#result":     "result",
			"#notes":      "notes",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Hearing{}, nil
		}
		return entities.Hearing{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Hearing{}, nil
	}

	var it hearingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Hearing{}, err
	}
	return fromHearingItem(it), nil
}

func toHearingItem(h entities.Hearing) hearingItem {
	return hearingItem{
		ID:            h.ID,
		CaseID:        h.CaseID,
		ScheduledDate: formatTime(h.ScheduledDate),
		Location:      h.Location,
		Attendance:    h.Attendance,
		Result:        h.Result,
		Notes:         h.Notes,
		Status:        string(h.Status),
		CreatedAt:     formatTime(h.CreatedAt),
		UpdatedAt:     formatTime(h.UpdatedAt),
	}
}

func fromHearingItem(it hearingItem) entities.Hearing {
	return entities.Hearing{
		ID:            it.ID,
		CaseID:        it.CaseID,
		ScheduledDate: parseTime(it.ScheduledDate),
		Location:      it.Location,
		Attendance:    it.Attendance,
		Result:        it.Result,
		Notes:         it.Notes,
		Status:        entities.HearingStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
