package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID           string `dynamodbav:"id"`
	CaseCode     string `dynamodbav:"case_code"`
	Title        string `dynamodbav:"title"`
	ClientName   string `dynamodbav:"client_name"`
	Description  string `dynamodbav:"description,omitempty"`
	Status       string `dynamodbav:"status"`
	CurrentPhase int    `dynamodbav:"current_phase"`
	ComercialID  string `dynamodbav:"comercial_id,omitempty"`
	AnalistaID   string `dynamodbav:"analista_id,omitempty"`
	PeritoID     string `dynamodbav:"perito_id,omitempty"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CaseDynamoRepository persists Case entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the table; case volume in this back office is small enough
// that a scan plus in-memory filtering is acceptable.
type CaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb *dynamodb.Client) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
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
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Case{}, err
	}
	if len(out.Item) == 0 {
		return entities.Case{}, nil
	}

	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func (r *CaseDynamoRepository) List(ctx context.Context) ([]entities.Case, error) {
	var items []entities.Case
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
			var it caseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCaseItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CaseDynamoRepository) UpdateDetails(ctx context.Context, c entities.Case) (entities.Case, error) {
	return r.update(ctx, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #title = :title, #client_name = :client_name, #description = :description, #status = :status, #current_phase = :current_phase, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":title":         &types.AttributeValueMemberS{Value: c.Title},
			":client_name":   &types.AttributeValueMemberS{Value: c.ClientName},
			":description":   &types.AttributeValueMemberS{Value: c.Description},
			":status":        &types.AttributeValueMemberS{Value: string(c.Status)},
			":current_phase": &types.AttributeValueMemberN{Value: itoa(c.CurrentPhase)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#title":         "title",
			"#client_name":   "client_name",
			"#description":   "description",
			"#status":        "status",
			"#current_phase": "current_phase",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) SetAssignment(ctx context.Context, id string, role entities.AssignmentRole, userID string) (entities.Case, error) {
	var attr string
	switch role {
	case entities.AssignmentRoleComercial:
		attr = "comercial_id"
	case entities.AssignmentRoleAnalista:
		attr = "analista_id"
	case entities.AssignmentRolePerito:
		attr = "perito_id"
	default:
		return entities.Case{}, fmt.Errorf("unknown assignment role %q", role)
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #role_ref = :user_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":user_id":    &types.AttributeValueMemberS{Value: userID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#role_ref":   attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #active = :active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#active":     "active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Case, error) {
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
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}

	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func toCaseItem(c entities.Case) caseItem {
	return caseItem{
		ID:           c.ID,
		CaseCode:     c.CaseCode,
		Title:        c.Title,
		ClientName:   c.ClientName,
		Description:  c.Description,
		Status:       string(c.Status),
		CurrentPhase: c.CurrentPhase,
		ComercialID:  c.ComercialID,
		AnalistaID:   c.AnalistaID,
		PeritoID:     c.PeritoID,
		Active:       c.Active,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromCaseItem(it caseItem) entities.Case {
	return entities.Case{
		ID:           it.ID,
		CaseCode:     it.CaseCode,
		Title:        it.Title,
		ClientName:   it.ClientName,
		Description:  it.Description,
		Status:       entities.CaseStatus(it.Status),
		CurrentPhase: it.CurrentPhase,
		ComercialID:  it.ComercialID,
		AnalistaID:   it.AnalistaID,
		PeritoID:     it.PeritoID,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
