package repository

import (
	"context"
	"strconv"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEvaluationsTableName = "evaluations"
	evaluationsCaseIDIndex      = "case_id-index"
)

type evaluationItem struct {
	ID                 string `dynamodbav:"id"`
	CaseID             string `dynamodbav:"case_id"`
	ExpertID           string `dynamodbav:"expert_id"`
	QualityScore       int    `dynamodbav:"quality_score"`
	TimelinessScore    int    `dynamodbav:"timeliness_score"`
	CommunicationScore int    `dynamodbav:"communication_score"`
	FinalScore         string `dynamodbav:"final_score"`
	Comments           string `dynamodbav:"comments,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// EvaluationDynamoRepository persists Evaluation entities in DynamoDB.
// Evaluations are terminal documents: there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
type EvaluationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEvaluationRepository = (*EvaluationDynamoRepository)(nil)

func NewEvaluationDynamoRepository(ddb *dynamodb.Client) *EvaluationDynamoRepository {
	return &EvaluationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVALUATIONS_TABLE", defaultEvaluationsTableName),
	}
}

func (r *EvaluationDynamoRepository) Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	av, err := attributevalue.MarshalMap(toEvaluationItem(e))
	if err != nil {
		return entities.Evaluation{}, err
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
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (r *EvaluationDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.Evaluation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(evaluationsCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Evaluation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Evaluation{}, nil
	}

	var it evaluationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Evaluation{}, err
	}
	return fromEvaluationItem(it), nil
}

func (r *EvaluationDynamoRepository) List(ctx context.Context) ([]entities.Evaluation, error) {
	var items []entities.Evaluation
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
			var it evaluationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEvaluationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toEvaluationItem(e entities.Evaluation) evaluationItem {
	return evaluationItem{
		ID:                 e.ID,
		CaseID:             e.CaseID,
		ExpertID:           e.ExpertID,
		QualityScore:       e.QualityScore,
		TimelinessScore:    e.TimelinessScore,
		CommunicationScore: e.CommunicationScore,
		FinalScore:         floatToString(e.FinalScore),
		Comments:           e.Comments,
		CreatedAt:          formatTime(e.CreatedAt),
	}
}

func fromEvaluationItem(it evaluationItem) entities.Evaluation {
	final, _ := strconv.ParseFloat(it.FinalScore, 64)
	return entities.Evaluation{
		ID:                 it.ID,
		CaseID:             it.CaseID,
		ExpertID:           it.ExpertID,
		QualityScore:       it.QualityScore,
		TimelinessScore:    it.TimelinessScore,
		CommunicationScore: it.CommunicationScore,
		FinalScore:         final,
		Comments:           it.Comments,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
