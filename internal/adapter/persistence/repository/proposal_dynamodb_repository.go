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
	defaultProposalsTableName = "payment_proposals"
	proposalsBudgetIDIndex    = "budget_id-index"
)

type proposalItem struct {
	ID                string  `dynamodbav:"id"`
	BudgetID          string  `dynamodbav:"budget_id"`
	OwnerID           string  `dynamodbav:"owner_id"`
	Name              string  `dynamodbav:"name"`
	DiscountType      string  `dynamodbav:"discount_type"`
	DiscountValue     float64 `dynamodbav:"discount_value"`
	DownPaymentType   string  `dynamodbav:"down_payment_type"`
	DownPaymentValue  float64 `dynamodbav:"down_payment_value"`
	InterestRate      float64 `dynamodbav:"interest_rate"`
	TotalAmount       float64 `dynamodbav:"total_amount"`
	TotalWithDiscount float64 `dynamodbav:"total_with_discount"`
	RemainingAmount   float64 `dynamodbav:"remaining_amount"`
	InstallmentsCount int     `dynamodbav:"installments_count"`
	IsSelected        bool    `dynamodbav:"is_selected"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists PaymentProposal entities in DynamoDB
// together with the bulk lifecycle of their installments.
//
// Table requirements:
//   - payment_proposals: PK id (string), GSI budget_id-index (PK: budget_id)
//   - payment_installments: PK id (string), GSI proposal_id-index
//     (PK: proposal_id) — shared with InstallmentDynamoRepository
//
// Proposal creation, exclusive selection and cascade deletion each run as
// a single TransactWriteItems call, so the "at most one selected proposal
// per budget" invariant cannot be broken by interleaved writers and a
// proposal can never exist half-written without its installments.

type ProposalDynamoRepository struct {
	ddb                   *dynamodb.Client
	tableName             string
	installmentsTableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:                   ddb,
		tableName:             getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		installmentsTableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *ProposalDynamoRepository) CreateWithInstallments(ctx context.Context, p entities.PaymentProposal, installments []entities.PaymentInstallment) (entities.PaymentProposal, error) {
	proposalAV, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.PaymentProposal{}, err
	}

	writes := make([]types.TransactWriteItem, 0, 1+len(installments))
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                proposalAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, inst := range installments {
		instAV, err := attributevalue.MarshalMap(toInstallmentItem(inst))
		if err != nil {
			return entities.PaymentProposal{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.installmentsTableName),
				Item:      instAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		return entities.PaymentProposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id, ownerID string) (entities.PaymentProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentProposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentProposal{}, err
	}
	if it.OwnerID != ownerID {
		return entities.PaymentProposal{}, nil
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByBudgetID(ctx context.Context, budgetID, ownerID string) ([]entities.PaymentProposal, error) {
	items, err := r.queryBudgetProposals(ctx, budgetID, ownerID)
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.PaymentProposal, 0, len(items))
	for _, it := range items {
		proposals = append(proposals, fromProposalItem(it))
	}
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.Before(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.PaymentProposal) (entities.PaymentProposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		UpdateExpression: aws.String("SET #name = :name, #discount_type = :discount_type, #discount_value = :discount_value, " +
			"#down_payment_type = :down_payment_type, #down_payment_value = :down_payment_value, #interest_rate = :interest_rate, " +
			"#total_amount = :total_amount, #total_with_discount = :total_with_discount, #remaining_amount = :remaining_amount, " +
			"#updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":               &types.AttributeValueMemberS{Value: p.OwnerID},
			":name":                &types.AttributeValueMemberS{Value: p.Name},
			":discount_type":       &types.AttributeValueMemberS{Value: string(p.DiscountType)},
			":discount_value":      &types.AttributeValueMemberN{Value: floatToString(p.DiscountValue)},
			":down_payment_type":   &types.AttributeValueMemberS{Value: string(p.DownPaymentType)},
			":down_payment_value":  &types.AttributeValueMemberN{Value: floatToString(p.DownPaymentValue)},
			":interest_rate":       &types.AttributeValueMemberN{Value: floatToString(p.InterestRate)},
			":total_amount":        &types.AttributeValueMemberN{Value: floatToString(p.TotalAmount)},
			":total_with_discount": &types.AttributeValueMemberN{Value: floatToString(p.TotalWithDiscount)},
			":remaining_amount":    &types.AttributeValueMemberN{Value: floatToString(p.RemainingAmount)},
			":updated_at":          &types.AttributeValueMemberS{Value: nowStamp()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#owner_id":            "owner_id",
			"#name":                "name",
			"#discount_type":       "discount_type",
			"#discount_value":      "discount_value",
			"#down_payment_type":   "down_payment_type",
			"#down_payment_value":  "down_payment_value",
			"#interest_rate":       "interest_rate",
			"#total_amount":        "total_amount",
			"#total_with_discount": "total_with_discount",
			"#remaining_amount":    "remaining_amount",
			"#updated_at":          "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentProposal{}, nil
		}
		return entities.PaymentProposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentProposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentProposal{}, err
	}
	return fromProposalItem(it), nil
}

// selectAttempts bounds the re-read loop when a selection transaction is
// cancelled by a concurrent selection in the same budget.
const selectAttempts = 3

// SelectExclusive flips the selection to the target proposal. The write
// set is anchored to a snapshot of the whole budget: selected siblings
// are unselected only while still selected, and every other sibling
// carries a ConditionCheck pinning it unselected, so a selection that
// committed between our read and our write cancels the transaction
// instead of leaving two proposals selected. A cancelled attempt
// re-reads the budget and tries again.
func (r *ProposalDynamoRepository) SelectExclusive(ctx context.Context, budgetID, proposalID, ownerID string) (bool, error) {
	var lastErr error
	for attempt := 0; attempt < selectAttempts; attempt++ {
		siblings, err := r.queryBudgetProposals(ctx, budgetID, ownerID)
		if err != nil {
			return false, err
		}

		writes, targetFound := r.selectionWrites(siblings, proposalID, budgetID, ownerID)
		if !targetFound {
			return false, nil
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
		if err == nil {
			return true, nil
		}
		if !isConditionalCheckFailed(err) {
			return false, err
		}
		lastErr = err
	}
	return false, lastErr
}

// selectionWrites builds the selection transaction for one budget
// snapshot. Every sibling appears in the write set: still-selected ones
// as conditional unselects, the rest as unselected condition checks.
func (r *ProposalDynamoRepository) selectionWrites(siblings []proposalItem, proposalID, budgetID, ownerID string) ([]types.TransactWriteItem, bool) {
	targetFound := false
	writes := make([]types.TransactWriteItem, 0, len(siblings))
	for _, it := range siblings {
		if it.ID == proposalID {
			targetFound = true
			continue
		}
		if it.IsSelected {
			writes = append(writes, r.unselectWrite(it.ID, budgetID, ownerID))
		} else {
			writes = append(writes, r.unselectedCheck(it.ID, budgetID, ownerID))
		}
	}
	if !targetFound {
		return nil, false
	}
	writes = append(writes, r.selectWrite(proposalID, budgetID, ownerID))
	return writes, true
}

func (r *ProposalDynamoRepository) selectWrite(proposalID, budgetID, ownerID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: proposalID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner AND #budget_id = :bid"),
			UpdateExpression:    aws.String("SET #is_selected = :selected, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner":      &types.AttributeValueMemberS{Value: ownerID},
				":bid":        &types.AttributeValueMemberS{Value: budgetID},
				":selected":   &types.AttributeValueMemberBOOL{Value: true},
				":updated_at": &types.AttributeValueMemberS{Value: nowStamp()},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#owner_id":    "owner_id",
				"#budget_id":   "budget_id",
				"#is_selected": "is_selected",
				"#updated_at":  "updated_at",
			},
		},
	}
}

func (r *ProposalDynamoRepository) unselectWrite(proposalID, budgetID, ownerID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: proposalID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner AND #budget_id = :bid AND #is_selected = :true"),
			UpdateExpression:    aws.String("SET #is_selected = :false, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner":      &types.AttributeValueMemberS{Value: ownerID},
				":bid":        &types.AttributeValueMemberS{Value: budgetID},
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":updated_at": &types.AttributeValueMemberS{Value: nowStamp()},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#owner_id":    "owner_id",
				"#budget_id":   "budget_id",
				"#is_selected": "is_selected",
				"#updated_at":  "updated_at",
			},
		},
	}
}

func (r *ProposalDynamoRepository) unselectedCheck(proposalID, budgetID, ownerID string) types.TransactWriteItem {
	return types.TransactWriteItem{
		ConditionCheck: &types.ConditionCheck{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: proposalID},
			},
			ConditionExpression: aws.String("#owner_id = :owner AND #budget_id = :bid AND #is_selected = :false"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: ownerID},
				":bid":   &types.AttributeValueMemberS{Value: budgetID},
				":false": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{
				"#owner_id":    "owner_id",
				"#budget_id":   "budget_id",
				"#is_selected": "is_selected",
			},
		},
	}
}

// Delete removes the proposal and all of its installments in one
// transaction.
func (r *ProposalDynamoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	p, err := r.GetByID(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	if p.ID == "" {
		return false, nil
	}

	installmentIDs, err := r.queryInstallmentIDs(ctx, id, ownerID)
	if err != nil {
		return false, err
	}

	writes := make([]types.TransactWriteItem, 0, 1+len(installmentIDs))
	writes = append(writes, types.TransactWriteItem{
		Delete: &types.Delete{
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
		},
	})
	for _, instID := range installmentIDs {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.installmentsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: instID},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProposalDynamoRepository) queryBudgetProposals(ctx context.Context, budgetID, ownerID string) ([]proposalItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsBudgetIDIndex),
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

	items := make([]proposalItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *ProposalDynamoRepository) queryInstallmentIDs(ctx context.Context, proposalID, ownerID string) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.installmentsTableName),
		IndexName:              aws.String(installmentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		FilterExpression:       aws.String("owner_id = :owner"),
		ProjectionExpression:   aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":   &types.AttributeValueMemberS{Value: proposalID},
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

func toProposalItem(p entities.PaymentProposal) proposalItem {
	return proposalItem{
		ID:                p.ID,
		BudgetID:          p.BudgetID,
		OwnerID:           p.OwnerID,
		Name:              p.Name,
		DiscountType:      string(p.DiscountType),
		DiscountValue:     p.DiscountValue,
		DownPaymentType:   string(p.DownPaymentType),
		DownPaymentValue:  p.DownPaymentValue,
		InterestRate:      p.InterestRate,
		TotalAmount:       p.TotalAmount,
		TotalWithDiscount: p.TotalWithDiscount,
		RemainingAmount:   p.RemainingAmount,
		InstallmentsCount: p.InstallmentsCount,
		IsSelected:        p.IsSelected,
		CreatedAt:         p.CreatedAt.UTC().Format(timeStampLayout),
		UpdatedAt:         p.UpdatedAt.UTC().Format(timeStampLayout),
	}
}

func fromProposalItem(it proposalItem) entities.PaymentProposal {
	return entities.PaymentProposal{
		ID:                it.ID,
		BudgetID:          it.BudgetID,
		OwnerID:           it.OwnerID,
		Name:              it.Name,
		DiscountType:      entities.AdjustmentType(it.DiscountType),
		DiscountValue:     it.DiscountValue,
		DownPaymentType:   entities.AdjustmentType(it.DownPaymentType),
		DownPaymentValue:  it.DownPaymentValue,
		InterestRate:      it.InterestRate,
		TotalAmount:       it.TotalAmount,
		TotalWithDiscount: it.TotalWithDiscount,
		RemainingAmount:   it.RemainingAmount,
		InstallmentsCount: it.InstallmentsCount,
		IsSelected:        it.IsSelected,
		CreatedAt:         parseStamp(it.CreatedAt),
		UpdatedAt:         parseStamp(it.UpdatedAt),
	}
}
