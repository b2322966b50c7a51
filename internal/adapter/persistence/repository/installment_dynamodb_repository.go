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
	defaultInstallmentsTableName = "payment_installments"
	installmentsProposalIDIndex  = "proposal_id-index"
)

type installmentItem struct {
	ID            string  `dynamodbav:"id"`
	ProposalID    string  `dynamodbav:"proposal_id"`
	OwnerID       string  `dynamodbav:"owner_id"`
	Number        int     `dynamodbav:"installment_number"`
	DueDate       string  `dynamodbav:"due_date"`
	Amount        float64 `dynamodbav:"amount"`
	PaymentMethod string  `dynamodbav:"payment_method"`
	Notes         string  `dynamodbav:"notes,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository reads and updates individual
// PaymentInstallment records. Bulk creation and cascade deletion are part
// of the proposal transaction in ProposalDynamoRepository.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.PaymentInstallment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentInstallment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentInstallment{}, err
	}
	if it.OwnerID != ownerID {
		return entities.PaymentInstallment{}, nil
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByProposalID(ctx context.Context, proposalID, ownerID string) ([]entities.PaymentInstallment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(installmentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		FilterExpression:       aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":   &types.AttributeValueMemberS{Value: proposalID},
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	installments := make([]entities.PaymentInstallment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		installments = append(installments, fromInstallmentItem(it))
	}
	sort.SliceStable(installments, func(i, j int) bool {
		return installments[i].Number < installments[j].Number
	})
	return installments, nil
}

func (r *InstallmentDynamoRepository) Update(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: inst.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		UpdateExpression:    aws.String("SET #due_date = :due_date, #amount = :amount, #payment_method = :payment_method, #notes = :notes, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":          &types.AttributeValueMemberS{Value: inst.OwnerID},
			":due_date":       &types.AttributeValueMemberS{Value: inst.DueDate},
			":amount":         &types.AttributeValueMemberN{Value: floatToString(inst.Amount)},
			":payment_method": &types.AttributeValueMemberS{Value: inst.PaymentMethod},
			":notes":          &types.AttributeValueMemberS{Value: inst.Notes},
			":updated_at":     &types.AttributeValueMemberS{Value: nowStamp()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#owner_id":       "owner_id",
			"#due_date":       "due_date",
			"#amount":         "amount",
			"#payment_method": "payment_method",
			"#notes":          "notes",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentInstallment{}, nil
		}
		return entities.PaymentInstallment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentInstallment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentInstallment{}, err
	}
	return fromInstallmentItem(it), nil
}

func toInstallmentItem(inst entities.PaymentInstallment) installmentItem {
	return installmentItem{
		ID:            inst.ID,
		ProposalID:    inst.ProposalID,
		OwnerID:       inst.OwnerID,
		Number:        inst.Number,
		DueDate:       inst.DueDate,
		Amount:        inst.Amount,
		PaymentMethod: inst.PaymentMethod,
		Notes:         inst.Notes,
		CreatedAt:     inst.CreatedAt.UTC().Format(timeStampLayout),
		UpdatedAt:     inst.UpdatedAt.UTC().Format(timeStampLayout),
	}
}

func fromInstallmentItem(it installmentItem) entities.PaymentInstallment {
	return entities.PaymentInstallment{
		ID:            it.ID,
		ProposalID:    it.ProposalID,
		OwnerID:       it.OwnerID,
		Number:        it.Number,
		DueDate:       it.DueDate,
		Amount:        it.Amount,
		PaymentMethod: it.PaymentMethod,
		Notes:         it.Notes,
		CreatedAt:     parseStamp(it.CreatedAt),
		UpdatedAt:     parseStamp(it.UpdatedAt),
	}
}
