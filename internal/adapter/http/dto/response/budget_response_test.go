package response

import (
	"testing"
	"time"

	"mobiplan/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:                  "b-1",
		OwnerID:             "owner-1",
		ClientName:          "Maria Souza",
		InitialDate:         "2025-03-01",
		Observations:        "kitchen remodel",
		FinalConsiderations: "delivery in 45 days",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.ClientName != "Maria Souza" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.InitialDate != "2025-03-01" || res.Observations != "kitchen remodel" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.FinalConsiderations != "delivery in 45 days" {
		t.Fatalf("unexpected final considerations: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEnvironment(t *testing.T) {
	now := time.Now().UTC()
	e := entities.BudgetEnvironment{
		ID:          "env-1",
		BudgetID:    "b-1",
		OwnerID:     "owner-1",
		Name:        "Kitchen",
		Description: "custom cabinets",
		Quantity:    3,
		UnitPrice:   199.99,
		Subtotal:    599.97,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromEnvironment(e)
	if res.ID != "env-1" || res.BudgetID != "b-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Quantity != 3 || res.UnitPrice != 199.99 || res.Subtotal != 599.97 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.Name != "Kitchen" || res.Description != "custom cabinets" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
