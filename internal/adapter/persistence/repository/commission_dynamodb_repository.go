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
	defaultCommissionsTableName = "commissions"
	commissionsExpertIDIndex    = "expert_id-index"
)

type commissionItem struct {
	ID                string `dynamodbav:"id"`
	CaseID            string `dynamodbav:"case_id"`
	ExpertID          string `dynamodbav:"expert_id"`
	BaseAmount        string `dynamodbav:"base_amount"`
	BonusPercentage   string `dynamodbav:"bonus_percentage"`
	PenaltyPercentage string `dynamodbav:"penalty_percentage"`
	FinalAmount       string `dynamodbav:"final_amount"`
	EvaluationScore   string `dynamodbav:"evaluation_score,omitempty"`
	Status            string `dynamodbav:"status"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// CommissionDynamoRepository persists Commission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: expert_id-index (PK: expert_id)
type CommissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb *dynamodb.Client) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMISSIONS_TABLE", defaultCommissionsTableName),
	}
}

func (r *CommissionDynamoRepository) Create(ctx context.Context, c entities.Commission) (entities.Commission, error) {
	av, err := attributevalue.MarshalMap(toCommissionItem(c))
	if err != nil {
		return entities.Commission{}, err
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
		return entities.Commission{}, err
	}
	return c, nil
}

func (r *CommissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Commission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Commission{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

func (r *CommissionDynamoRepository) ListByExpertID(ctx context.Context, expertID string) ([]entities.Commission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commissionsExpertIDIndex),
		KeyConditionExpression: aws.String("expert_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: expertID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Commission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCommissionItem(it))
	}
	return items, nil
}

func (r *CommissionDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.Commission, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #paid_at = :paid_at, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.CommissionStatusPagada)},
			":paid_at":    &types.AttributeValueMemberS{Value: now},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Commission{}, nil
		}
		return entities.Commission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Commission{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

func toCommissionItem(c entities.Commission) commissionItem {
	score := ""
	if c.EvaluationScore != nil {
		score = floatToString(*c.EvaluationScore)
	}
	return commissionItem{
		ID:                c.ID,
		CaseID:            c.CaseID,
		ExpertID:          c.ExpertID,
		BaseAmount:        floatToString(c.BaseAmount),
		BonusPercentage:   floatToString(c.BonusPercentage),
		PenaltyPercentage: floatToString(c.PenaltyPercentage),
		FinalAmount:       floatToString(c.FinalAmount),
		EvaluationScore:   score,
		Status:            string(c.Status),
		PaidAt:            formatTimePtr(c.PaidAt),
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromCommissionItem(it commissionItem) entities.Commission {
	base, _ := strconv.ParseFloat(it.BaseAmount, 64)
	bonus, _ := strconv.ParseFloat(it.BonusPercentage, 64)
	penalty, _ := strconv.ParseFloat(it.PenaltyPercentage, 64)
	final, _ := strconv.ParseFloat(it.FinalAmount, 64)
	var score *float64
	if it.EvaluationScore != "" {
		s, _ := strconv.ParseFloat(it.EvaluationScore, 64)
		score = &s
	}
	return entities.Commission{
		ID:                it.ID,
		CaseID:            it.CaseID,
		ExpertID:          it.ExpertID,
		BaseAmount:        base,
		BonusPercentage:   bonus,
		PenaltyPercentage: penalty,
		FinalAmount:       final,
		EvaluationScore:   score,
		Status:            entities.CommissionStatus(it.Status),
		PaidAt:            parseTimePtr(it.PaidAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
