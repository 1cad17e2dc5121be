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
	defaultDeliverablesTableName = "deliverables"
	deliverablesCaseIDIndex      = "case_id-index"
)

type deliverableItem struct {
	ID              string `dynamodbav:"id"`
	CaseID          string `dynamodbav:"case_id"`
	Phase           string `dynamodbav:"phase"`
	PhaseNumber     int    `dynamodbav:"phase_number"`
	Title           string `dynamodbav:"title"`
	Version         int    `dynamodbav:"version"`
	FileURL         string `dynamodbav:"file_url,omitempty"`
	Status          string `dynamodbav:"status"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// DeliverableDynamoRepository persists Deliverable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type DeliverableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliverableRepository = (*DeliverableDynamoRepository)(nil)

func NewDeliverableDynamoRepository(ddb *dynamodb.Client) *DeliverableDynamoRepository {
	return &DeliverableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DELIVERABLES_TABLE", defaultDeliverablesTableName),
	}
}

func (r *DeliverableDynamoRepository) Create(ctx context.Context, d entities.Deliverable) (entities.Deliverable, error) {
	av, err := attributevalue.MarshalMap(toDeliverableItem(d))
	if err != nil {
		return entities.Deliverable{}, err
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
		return entities.Deliverable{}, err
	}
	return d, nil
}

func (r *DeliverableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deliverable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deliverable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deliverable{}, nil
	}

	var it deliverableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deliverable{}, err
	}
	return fromDeliverableItem(it), nil
}

func (r *DeliverableDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Deliverable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(deliverablesCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Deliverable, 0, len(out.Items))
	for _, raw := range out.Items {
		var it deliverableItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDeliverableItem(it))
	}
	return items, nil
}

func (r *DeliverableDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DeliverableStatus, reason string) (entities.Deliverable, error) {
	now := formatTime(time.Now())

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if reason != "" {
		expr += ", #rejection_reason = :reason"
		names["#rejection_reason"] = "rejection_reason"
		vals[":reason"] = &types.AttributeValueMemberS{Value: reason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deliverable{}, nil
		}
		return entities.Deliverable{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deliverable{}, nil
	}

	var it deliverableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deliverable{}, err
	}
	return fromDeliverableItem(it), nil
}

func toDeliverableItem(d entities.Deliverable) deliverableItem {
	return deliverableItem{
		ID:              d.ID,
		CaseID:          d.CaseID,
		Phase:           d.Phase,
		PhaseNumber:     d.PhaseNumber,
		Title:           d.Title,
		Version:         d.Version,
		FileURL:         d.FileURL,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		CreatedAt:       formatTime(d.CreatedAt),
		UpdatedAt:       formatTime(d.UpdatedAt),
	}
}

func fromDeliverableItem(it deliverableItem) entities.Deliverable {
	return entities.Deliverable{
		ID:              it.ID,
		CaseID:          it.CaseID,
		Phase:           it.Phase,
		PhaseNumber:     it.PhaseNumber,
		Title:           it.Title,
		Version:         it.Version,
		FileURL:         it.FileURL,
		Status:          entities.DeliverableStatus(it.Status),
		RejectionReason: it.RejectionReason,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
