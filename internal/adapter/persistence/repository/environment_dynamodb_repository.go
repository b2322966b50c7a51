package repository

import (
	"context"
	"sort"

	"mobiplan/internal/domain/entities"
	"mobiplan/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEnvironmentsTableName = "budget_environments"
	environmentsBudgetIDIndex    = "budget_id-index"
)

type environmentItem struct {
	ID          string  `dynamodbav:"id"`
	BudgetID    string  `dynamodbav:"budget_id"`
	OwnerID     string  `dynamodbav:"owner_id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Subtotal    float64 `dynamodbav:"subtotal"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// EnvironmentDynamoRepository persists BudgetEnvironment entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type EnvironmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnvironmentRepository = (*EnvironmentDynamoRepository)(nil)

func NewEnvironmentDynamoRepository(ddb *dynamodb.Client) *EnvironmentDynamoRepository {
	return &EnvironmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENVIRONMENTS_TABLE", defaultEnvironmentsTableName),
	}
}

func (r *EnvironmentDynamoRepository) Create(ctx context.Context, e entities.BudgetEnvironment) (entities.BudgetEnvironment, error) {
	av, err := attributevalue.MarshalMap(toEnvironmentItem(e))
	if err != nil {
		return entities.BudgetEnvironment{}, err
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
		return entities.BudgetEnvironment{}, err
	}
	return e, nil
}

func (r *EnvironmentDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.BudgetEnvironment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetEnvironment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetEnvironment{}, nil
	}

	var it environmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetEnvironment{}, err
	}
	if it.OwnerID != ownerID {
		return entities.BudgetEnvironment{}, nil
	}
	return fromEnvironmentItem(it), nil
}

func (r *EnvironmentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID, ownerID string) ([]entities.BudgetEnvironment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(environmentsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		FilterExpression:       aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid":   &types.AttributeValueMemberS{Value: budgetID},
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	environments := make([]entities.BudgetEnvironment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it environmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		environments = append(environments, fromEnvironmentItem(it))
	}
	sort.SliceStable(environments, func(i, j int) bool {
		return environments[i].CreatedAt.Before(environments[j].CreatedAt)
	})
	return environments, nil
}

func (r *EnvironmentDynamoRepository) Update(ctx context.Context, e entities.BudgetEnvironment) (entities.BudgetEnvironment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: e.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		UpdateExpression:    aws.String("SET #name = :name, #description = :description, #quantity = :quantity, #unit_price = :unit_price, #subtotal = :subtotal, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":       &types.AttributeValueMemberS{Value: e.OwnerID},
			":name":        &types.AttributeValueMemberS{Value: e.Name},
			":description": &types.AttributeValueMemberS{Value: e.Description},
			":quantity":    &types.AttributeValueMemberN{Value: intToString(e.Quantity)},
			":unit_price":  &types.AttributeValueMemberN{Value: floatToString(e.UnitPrice)},
			":subtotal":    &types.AttributeValueMemberN{Value: floatToString(e.Subtotal)},
			":updated_at":  &types.AttributeValueMemberS{Value: nowStamp()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#owner_id":    "owner_id",
			"#name":        "name",
			"#description": "description",
			"#quantity":    "quantity",
			"#unit_price":  "unit_price",
			"#subtotal":    "subtotal",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BudgetEnvironment{}, nil
		}
		return entities.BudgetEnvironment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BudgetEnvironment{}, nil
	}

	var it environmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BudgetEnvironment{}, err
	}
	return fromEnvironmentItem(it), nil
}

func (r *EnvironmentDynamoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toEnvironmentItem(e entities.BudgetEnvironment) environmentItem {
	return environmentItem{
		ID:          e.ID,
		BudgetID:    e.BudgetID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		Subtotal:    e.Subtotal,
		CreatedAt:   e.CreatedAt.UTC().Format(timeStampLayout),
		UpdatedAt:   e.UpdatedAt.UTC().Format(timeStampLayout),
	}
}

func fromEnvironmentItem(it environmentItem) entities.BudgetEnvironment {
	return entities.BudgetEnvironment{
		ID:          it.ID,
		BudgetID:    it.BudgetID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		Subtotal:    it.Subtotal,
		CreatedAt:   parseStamp(it.CreatedAt),
		UpdatedAt:   parseStamp(it.UpdatedAt),
	}
}
