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
	defaultBudgetsTableName = "budgets"
	budgetsOwnerIDIndex     = "owner_id-index"
)

type budgetItem struct {
	ID                  string `dynamodbav:"id"`
	OwnerID             string `dynamodbav:"owner_id"`
	ClientName          string `dynamodbav:"client_name"`
	InitialDate         string `dynamodbav:"initial_date,omitempty"`
	Observations        string `dynamodbav:"observations,omitempty"`
	FinalConsiderations string `dynamodbav:"final_considerations,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Every write carries an owner_id condition so a budget can never be
// mutated through another owner's session.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	// A budget of another owner is indistinguishable from a missing one.
	if it.OwnerID != ownerID {
		return entities.Budget{}, nil
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	budgets := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		budgets = append(budgets, fromBudgetItem(it))
	}
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.Before(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		UpdateExpression:    aws.String("SET #client_name = :client_name, #initial_date = :initial_date, #observations = :observations, #final_considerations = :final_considerations, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":                &types.AttributeValueMemberS{Value: b.OwnerID},
			":client_name":          &types.AttributeValueMemberS{Value: b.ClientName},
			":initial_date":         &types.AttributeValueMemberS{Value: b.InitialDate},
			":observations":         &types.AttributeValueMemberS{Value: b.Observations},
			":final_considerations": &types.AttributeValueMemberS{Value: b.FinalConsiderations},
			":updated_at":           &types.AttributeValueMemberS{Value: nowStamp()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#owner_id":             "owner_id",
			"#client_name":          "client_name",
			"#initial_date":         "initial_date",
			"#observations":         "observations",
			"#final_considerations": "final_considerations",
			"#updated_at":           "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// Delete removes only the budget row. Environments and proposals under
// it are not cascaded; every read of those rows is budget-scoped, so
// they become unreachable once the budget is gone.
func (r *BudgetDynamoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
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

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                  b.ID,
		OwnerID:             b.OwnerID,
		ClientName:          b.ClientName,
		InitialDate:         b.InitialDate,
		Observations:        b.Observations,
		FinalConsiderations: b.FinalConsiderations,
		CreatedAt:           b.CreatedAt.UTC().Format(timeStampLayout),
		UpdatedAt:           b.UpdatedAt.UTC().Format(timeStampLayout),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:                  it.ID,
		OwnerID:             it.OwnerID,
		ClientName:          it.ClientName,
		InitialDate:         it.InitialDate,
		Observations:        it.Observations,
		FinalConsiderations: it.FinalConsiderations,
		CreatedAt:           parseStamp(it.CreatedAt),
		UpdatedAt:           parseStamp(it.UpdatedAt),
	}
}
