package repository

import (
	"context"
	"encoding/json"
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
	defaultPaymentsTableName = "payments"
	paymentsCaseIDIndex      = "case_id-index"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	CaseID             string `dynamodbav:"case_id"`
	Amount             string `dynamodbav:"amount"`
	Concept            string `dynamodbav:"concept,omitempty"`
	Method             string `dynamodbav:"method,omitempty"`
	Status             string `dynamodbav:"status"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	var items []entities.Payment
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
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, providerPaymentID string, providerPayload json.RawMessage) (entities.Payment, error) {
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
	if status == entities.PaymentStatusPagado {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: now}
	}
	if providerPaymentID != "" {
		expr += ", #provider_payment_id = :ppid"
		names["#provider_payment_id"] = "provider_payment_id"
		vals[":ppid"] = &types.AttributeValueMemberS{Value: providerPaymentID}
	}
	if len(providerPayload) > 0 {
		expr += ", #provider_payload_raw = :payload"
		names["#provider_payload_raw"] = "provider_payload_raw"
		vals[":payload"] = &types.AttributeValueMemberS{Value: string(providerPayload)}
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
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		CaseID:             p.CaseID,
		Amount:             floatToString(p.Amount),
		Concept:            p.Concept,
		Method:             p.Method,
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		PaidAt:             formatTimePtr(p.PaidAt),
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.Payment{
		ID:                 it.ID,
		CaseID:             it.CaseID,
		Amount:             amount,
		Concept:            it.Concept,
		Method:             it.Method,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderPayloadRaw: raw,
		PaidAt:             parseTimePtr(it.PaidAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
