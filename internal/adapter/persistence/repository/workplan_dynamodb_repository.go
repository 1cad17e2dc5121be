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
	defaultWorkPlansTableName = "work_plans"
	workPlansCaseIDIndex      = "case_id-index"
)

type workPlanItem struct {
	ID          string `dynamodbav:"id"`
	CaseID      string `dynamodbav:"case_id"`
	Methodology string `dynamodbav:"methodology"`
	Schedule    string `dynamodbav:"schedule"`
	Comments    string `dynamodbav:"comments,omitempty"`
	Version     int    `dynamodbav:"version"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkPlanDynamoRepository persists WorkPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
//
// One work plan per case is enforced at the use case level via GetByCaseID.
type WorkPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkPlanRepository = (*WorkPlanDynamoRepository)(nil)

func NewWorkPlanDynamoRepository(ddb *dynamodb.Client) *WorkPlanDynamoRepository {
	return &WorkPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_PLANS_TABLE", defaultWorkPlansTableName),
	}
}

func (r *WorkPlanDynamoRepository) Create(ctx context.Context, wp entities.WorkPlan) (entities.WorkPlan, error) {
	av, err := attributevalue.MarshalMap(toWorkPlanItem(wp))
	if err != nil {
		return entities.WorkPlan{}, err
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
		return entities.WorkPlan{}, err
	}
	return wp, nil
}

func (r *WorkPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkPlan{}, nil
	}

	var it workPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkPlan{}, err
	}
	return fromWorkPlanItem(it), nil
}

func (r *WorkPlanDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.WorkPlan, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workPlansCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.WorkPlan{}, err
	}
	if len(out.Items) == 0 {
		return entities.WorkPlan{}, nil
	}

	var it workPlanItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.WorkPlan{}, err
	}
	return fromWorkPlanItem(it), nil
}

func (r *WorkPlanDynamoRepository) UpdateContent(ctx context.Context, wp entities.WorkPlan) (entities.WorkPlan, error) {
	return r.update(ctx, wp.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #methodology = :methodology, #schedule = :schedule, #version = :version, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":methodology": &types.AttributeValueMemberS{Value: wp.Methodology},
			":schedule":    &types.AttributeValueMemberS{Value: wp.Schedule},
			":version":     &types.AttributeValueMemberN{Value: itoa(wp.Version)},
			":status":      &types.AttributeValueMemberS{Value: string(wp.Status)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#methodology": "methodology",
			"#schedule":    "schedule",
			"#version":     "version",
			"#status":      "status",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkPlanDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkPlanStatus, comments string) (entities.WorkPlan, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if comments != "" {
			expr += ", #comments = :comments"
			names["#comments"] = "comments"
			vals[":comments"] = &types.AttributeValueMemberS{Value: comments}
		}
		return expr, vals, names
	})
}

func (r *WorkPlanDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.WorkPlan, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkPlan{}, nil
		}
		return entities.WorkPlan{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkPlan{}, nil
	}

	var it workPlanItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkPlan{}, err
	}
	return fromWorkPlanItem(it), nil
}

func toWorkPlanItem(wp entities.WorkPlan) workPlanItem {
	return workPlanItem{
		ID:          wp.ID,
		CaseID:      wp.CaseID,
		Methodology: wp.Methodology,
		Schedule:    wp.Schedule,
		Comments:    wp.Comments,
		Version:     wp.Version,
		Status:      string(wp.Status),
		CreatedAt:   formatTime(wp.CreatedAt),
		UpdatedAt:   formatTime(wp.UpdatedAt),
	}
}

func fromWorkPlanItem(it workPlanItem) entities.WorkPlan {
	return entities.WorkPlan{
		ID:          it.ID,
		CaseID:      it.CaseID,
		Methodology: it.Methodology,
		Schedule:    it.Schedule,
		Comments:    it.Comments,
		Version:     it.Version,
		Status:      entities.WorkPlanStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
