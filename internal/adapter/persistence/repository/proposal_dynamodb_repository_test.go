package repository

import (
	"strings"
	"testing"
)

func TestSelectionWrites_PinsEverySibling(t *testing.T) {
	r := &ProposalDynamoRepository{tableName: "payment_proposals"}
	siblings := []proposalItem{
		{ID: "p-1", BudgetID: "b-1", OwnerID: "owner-1", IsSelected: true},
		{ID: "p-2", BudgetID: "b-1", OwnerID: "owner-1"},
		{ID: "p-3", BudgetID: "b-1", OwnerID: "owner-1"},
	}

	writes, ok := r.selectionWrites(siblings, "p-2", "b-1", "owner-1")
	if !ok {
		t.Fatalf("expected target to be found")
	}
	// one conditional unselect, one unselected pin, one target select
	if len(writes) != 3 {
		t.Fatalf("expected 3 transaction items, got %d", len(writes))
	}

	unselect := writes[0]
	if unselect.Update == nil {
		t.Fatalf("expected selected sibling to be an Update, got %+v", unselect)
	}
	if cond := *unselect.Update.ConditionExpression; !strings.Contains(cond, "#is_selected = :true") {
		t.Fatalf("unselect must require the sibling to still be selected, got %q", cond)
	}

	pin := writes[1]
	if pin.ConditionCheck == nil {
		t.Fatalf("expected unselected sibling to be a ConditionCheck, got %+v", pin)
	}
	if cond := *pin.ConditionCheck.ConditionExpression; !strings.Contains(cond, "#is_selected = :false") {
		t.Fatalf("pin must require the sibling to be unselected, got %q", cond)
	}
	if key := pin.ConditionCheck.Key["id"]; key == nil {
		t.Fatalf("pin missing key: %+v", pin.ConditionCheck)
	}

	target := writes[2]
	if target.Update == nil {
		t.Fatalf("expected target select to be an Update, got %+v", target)
	}
	if cond := *target.Update.ConditionExpression; !strings.Contains(cond, "attribute_exists(#id)") {
		t.Fatalf("target select must require existence, got %q", cond)
	}
}

func TestSelectionWrites_TargetNotInBudget(t *testing.T) {
	r := &ProposalDynamoRepository{tableName: "payment_proposals"}
	siblings := []proposalItem{
		{ID: "p-1", BudgetID: "b-1", OwnerID: "owner-1", IsSelected: true},
	}

	if _, ok := r.selectionWrites(siblings, "p-elsewhere", "b-1", "owner-1"); ok {
		t.Fatalf("expected target outside the budget to be rejected")
	}
}

func TestSelectionWrites_EmptyBudgetSelectsTargetOnly(t *testing.T) {
	r := &ProposalDynamoRepository{tableName: "payment_proposals"}
	siblings := []proposalItem{
		{ID: "p-1", BudgetID: "b-1", OwnerID: "owner-1"},
	}

	writes, ok := r.selectionWrites(siblings, "p-1", "b-1", "owner-1")
	if !ok {
		t.Fatalf("expected target to be found")
	}
	if len(writes) != 1 || writes[0].Update == nil {
		t.Fatalf("expected a single target update, got %+v", writes)
	}
}
