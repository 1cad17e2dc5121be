package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesCaseIDIndex      = "case_id-index"
)

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	CaseID          string `dynamodbav:"case_id"`
	Amount          string `dynamodbav:"amount"`
	Description     string `dynamodbav:"description,omitempty"`
	Status          string `dynamodbav:"status"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	SentAt          string `dynamodbav:"sent_at,omitempty"`
	DecidedAt       string `dynamodbav:"decided_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, reason string) (entities.Quote, error) {
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
	switch status {
	case entities.QuoteStatusEnviada:
		expr += ", #sent_at = :ts"
		names["#sent_at"] = "sent_at"
		vals[":ts"] = &types.AttributeValueMemberS{Value: now}
	case entities.QuoteStatusAprobada, entities.QuoteStatusRechazada:
		expr += ", #decided_at = :ts"
		names["#decided_at"] = "decided_at"
		vals[":ts"] = &types.AttributeValueMemberS{Value: now}
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		CaseID:          q.CaseID,
		Amount:          floatToString(q.Amount),
		Description:     q.Description,
		Status:          string(q.Status),
		RejectionReason: q.RejectionReason,
		SentAt:          formatTimePtr(q.SentAt),
		DecidedAt:       formatTimePtr(q.DecidedAt),
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Quote{
		ID:              it.ID,
		CaseID:          it.CaseID,
		Amount:          amount,
		Description:     it.Description,
		Status:          entities.QuoteStatus(it.Status),
		RejectionReason: it.RejectionReason,
		SentAt:          parseTimePtr(it.SentAt),
		DecidedAt:       parseTimePtr(it.DecidedAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
