package usecase

import (
	"context"
	"errors"
	"testing"

	"mobiplan/internal/domain/entities"
	"mobiplan/internal/domain/pricing"
	mock_interfaces "mobiplan/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string                                   { return &s }
func floatPtr(f float64) *float64                               { return &f }
func adjPtr(t entities.AdjustmentType) *entities.AdjustmentType { return &t }

func validProposalInput() ProposalInput {
	return ProposalInput{
		Name: "à vista com desconto",
		Installments: []pricing.InstallmentLine{
			{DueDate: "2024-01-01", Amount: 500, PaymentMethod: "pix"},
			{DueDate: "2024-02-01", Amount: 500, PaymentMethod: "boleto"},
		},
	}
}

func TestProposalUseCase_Preview(t *testing.T) {
	uc := NewProposalUseCase(nil, nil)

	t.Run("negative total", func(t *testing.T) {
		_, err := uc.Preview(-1, ProposalInput{})
		if !errors.Is(err, ErrNegativeTotalAmount) {
			t.Fatalf("expected ErrNegativeTotalAmount, got %v", err)
		}
	})

	t.Run("invalid adjustment type", func(t *testing.T) {
		_, err := uc.Preview(100, ProposalInput{DiscountType: "weird"})
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("percentage above 100 rejected", func(t *testing.T) {
		_, err := uc.Preview(100, ProposalInput{DownPaymentType: entities.AdjustmentPercentage, DownPaymentValue: 101})
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("computes figures without persistence", func(t *testing.T) {
		q, err := uc.Preview(1000, ProposalInput{
			DiscountType:     entities.AdjustmentPercentage,
			DiscountValue:    10,
			DownPaymentType:  entities.AdjustmentPercentage,
			DownPaymentValue: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalWithDiscount != 900 || q.DownPaymentAmount != 90 || q.RemainingAmount != 810 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, _, err := uc.Create(context.Background(), "  ", "owner-1", 100, validProposalInput())
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("invalid owner", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, _, err := uc.Create(context.Background(), "b-1", "", 100, validProposalInput())
		if !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.Name = "   "
		_, _, err := uc.Create(context.Background(), "b-1", "owner-1", 100, in)
		if !errors.Is(err, ErrInvalidProposalName) {
			t.Fatalf("expected ErrInvalidProposalName, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, _, err := uc.Create(context.Background(), "b-1", "owner-1", -0.01, validProposalInput())
		if !errors.Is(err, ErrNegativeTotalAmount) {
			t.Fatalf("expected ErrNegativeTotalAmount, got %v", err)
		}
	})

	t.Run("empty installments", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.Installments = nil
		_, _, err := uc.Create(context.Background(), "b-1", "owner-1", 100, in)
		if !errors.Is(err, pricing.ErrEmptyInstallments) {
			t.Fatalf("expected ErrEmptyInstallments, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().CreateWithInstallments(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentProposal{}, errors.New("db"))

		_, _, err := uc.Create(context.Background(), "b-1", "owner-1", 100, validProposalInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("round trip without adjustments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().CreateWithInstallments(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentProposal, installments []entities.PaymentInstallment) (entities.PaymentProposal, error) {
				if p.ID == "" || p.BudgetID != "b-1" || p.OwnerID != "owner-1" {
					t.Fatalf("unexpected proposal identity: %+v", p)
				}
				if p.TotalAmount != 1000 || p.TotalWithDiscount != 1000 || p.RemainingAmount != 1000 {
					t.Fatalf("unexpected derived figures: %+v", p)
				}
				if p.IsSelected {
					t.Fatalf("new proposal must start unselected")
				}
				if p.InstallmentsCount != 2 || len(installments) != 2 {
					t.Fatalf("expected 2 installments, got count=%d len=%d", p.InstallmentsCount, len(installments))
				}
				if p.DiscountType != entities.AdjustmentNone || p.DownPaymentType != entities.AdjustmentNone {
					t.Fatalf("expected normalized adjustment types: %+v", p)
				}
				sum := 0.0
				for i, inst := range installments {
					if inst.Number != i+1 || inst.ProposalID != p.ID || inst.OwnerID != "owner-1" {
						t.Fatalf("unexpected installment %d: %+v", i, inst)
					}
					sum += inst.Amount
				}
				if sum != 1000 {
					t.Fatalf("expected installments to sum 1000, got %v", sum)
				}
				return p, nil
			},
		)

		created, installments, err := uc.Create(context.Background(), " b-1 ", " owner-1 ", 1000, validProposalInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || len(installments) != 2 {
			t.Fatalf("unexpected result: %+v / %d installments", created, len(installments))
		}
	})

	t.Run("discount and down payment snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		in := validProposalInput()
		in.DiscountType = entities.AdjustmentPercentage
		in.DiscountValue = 10
		in.DownPaymentType = entities.AdjustmentPercentage
		in.DownPaymentValue = 10
		in.InterestRate = 1.5

		repo.EXPECT().CreateWithInstallments(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentProposal, _ []entities.PaymentInstallment) (entities.PaymentProposal, error) {
				if p.TotalWithDiscount != 900 || p.RemainingAmount != 810 {
					t.Fatalf("down payment must apply to discounted total: %+v", p)
				}
				if p.InterestRate != 1.5 {
					t.Fatalf("interest rate must be stored untouched: %+v", p)
				}
				return p, nil
			},
		)

		if _, _, err := uc.Create(context.Background(), "b-1", "owner-1", 1000, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_List(t *testing.T) {
	t.Run("blank budget id yields empty list without a repo call", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		got, err := uc.List(context.Background(), "   ", "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list, got %d", len(got))
		}
	})

	t.Run("blank owner yields empty list", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		got, err := uc.List(context.Background(), "b-1", "")
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty list, got %v / %v", got, err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		expected := []entities.PaymentProposal{{ID: "p-1"}, {ID: "p-2"}}
		repo.EXPECT().ListByBudgetID(gomock.Any(), "b-1", "owner-1").Return(expected, nil)

		got, err := uc.List(context.Background(), " b-1 ", " owner-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestProposalUseCase_Update(t *testing.T) {
	stored := entities.PaymentProposal{
		ID:                "p-1",
		BudgetID:          "b-1",
		OwnerID:           "owner-1",
		Name:              "parcelado",
		DiscountType:      entities.AdjustmentFixed,
		DiscountValue:     100,
		DownPaymentType:   entities.AdjustmentNone,
		TotalAmount:       1000,
		TotalWithDiscount: 900,
		RemainingAmount:   900,
		InstallmentsCount: 3,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(entities.PaymentProposal{}, nil)

		_, err := uc.Update(context.Background(), "b-1", "p-1", "owner-1", 1000, ProposalUpdateInput{})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "b-1", "p-1", "owner-1", -5, ProposalUpdateInput{})
		if !errors.Is(err, ErrNegativeTotalAmount) {
			t.Fatalf("expected ErrNegativeTotalAmount, got %v", err)
		}
	})

	t.Run("invalid merged adjustment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "b-1", "p-1", "owner-1", 1000, ProposalUpdateInput{
			DiscountType:  adjPtr(entities.AdjustmentPercentage),
			DiscountValue: floatPtr(150),
		})
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("merges partial input and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentProposal) (entities.PaymentProposal, error) {
				// Only the discount value changed; the fixed type is kept
				// from the stored proposal and the figures follow the new
				// value and the new total.
				if p.DiscountType != entities.AdjustmentFixed || p.DiscountValue != 200 {
					t.Fatalf("merge failed: %+v", p)
				}
				if p.TotalAmount != 1200 || p.TotalWithDiscount != 1000 || p.RemainingAmount != 1000 {
					t.Fatalf("recompute failed: %+v", p)
				}
				if p.Name != "parcelado" || p.InstallmentsCount != 3 {
					t.Fatalf("untouched fields must survive: %+v", p)
				}
				return p, nil
			},
		)

		got, err := uc.Update(context.Background(), "b-1", "p-1", "owner-1", 1200, ProposalUpdateInput{
			DiscountValue: floatPtr(200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RemainingAmount != 1000 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("rejects blank name patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "b-1", "p-1", "owner-1", 1000, ProposalUpdateInput{Name: strPtr("   ")})
		if !errors.Is(err, ErrInvalidProposalName) {
			t.Fatalf("expected ErrInvalidProposalName, got %v", err)
		}
	})

	t.Run("proposal from another budget is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		// Only the sale total of b-2 is known here; the proposal lives in
		// b-1, so the patch must not go through and no write may happen.
		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "b-2", "p-1", "owner-1", 999, ProposalUpdateInput{})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_Select(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		if err := uc.Select(context.Background(), "", "p-1", "owner-1"); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
		if err := uc.Select(context.Background(), "b-1", "", "owner-1"); !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
		if err := uc.Select(context.Background(), "b-1", "p-1", ""); !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("target not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().SelectExclusive(gomock.Any(), "b-1", "p-1", "owner-2").Return(false, nil)

		if err := uc.Select(context.Background(), "b-1", "p-1", "owner-2"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().SelectExclusive(gomock.Any(), "b-1", "p-1", "owner-1").Return(false, errors.New("db"))

		if err := uc.Select(context.Background(), "b-1", "p-1", "owner-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().SelectExclusive(gomock.Any(), "b-1", "p-1", "owner-1").Return(true, nil)

		if err := uc.Select(context.Background(), " b-1 ", " p-1 ", " owner-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	stored := entities.PaymentProposal{
		ID:       "p-1",
		BudgetID: "b-1",
		OwnerID:  "owner-1",
		Name:     "parcelado",
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(entities.PaymentProposal{}, nil)

		if err := uc.Delete(context.Background(), "b-1", "p-1", "owner-1"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("proposal from another budget is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)

		if err := uc.Delete(context.Background(), "b-2", "p-1", "owner-1"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1", "owner-1").Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1", "owner-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "b-1", "p-1", "owner-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Installments(t *testing.T) {
	t.Run("list blank proposal id yields empty", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		got, err := uc.ListInstallments(context.Background(), "", "owner-1")
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty list, got %v / %v", got, err)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		insts := mock_interfaces.NewMockIInstallmentRepository(ctrl)
		uc := NewProposalUseCase(nil, insts)

		insts.EXPECT().GetByID(gomock.Any(), "i-1", "owner-1").Return(entities.PaymentInstallment{}, nil)

		_, err := uc.UpdateInstallment(context.Background(), "i-1", "owner-1", InstallmentUpdateInput{})
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})

	t.Run("update rejects negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		insts := mock_interfaces.NewMockIInstallmentRepository(ctrl)
		uc := NewProposalUseCase(nil, insts)

		insts.EXPECT().GetByID(gomock.Any(), "i-1", "owner-1").Return(entities.PaymentInstallment{ID: "i-1", Number: 2}, nil)

		_, err := uc.UpdateInstallment(context.Background(), "i-1", "owner-1", InstallmentUpdateInput{Amount: floatPtr(-1)})
		if !errors.Is(err, pricing.ErrNegativeInstallment) {
			t.Fatalf("expected ErrNegativeInstallment, got %v", err)
		}
	})

	t.Run("update rejects bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		insts := mock_interfaces.NewMockIInstallmentRepository(ctrl)
		uc := NewProposalUseCase(nil, insts)

		insts.EXPECT().GetByID(gomock.Any(), "i-1", "owner-1").Return(entities.PaymentInstallment{ID: "i-1", Number: 2}, nil)

		_, err := uc.UpdateInstallment(context.Background(), "i-1", "owner-1", InstallmentUpdateInput{DueDate: strPtr("not-a-date")})
		if !errors.Is(err, pricing.ErrInvalidInstallmentDate) {
			t.Fatalf("expected ErrInvalidInstallmentDate, got %v", err)
		}
	})

	t.Run("update patches fields and keeps number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		insts := mock_interfaces.NewMockIInstallmentRepository(ctrl)
		uc := NewProposalUseCase(nil, insts)

		stored := entities.PaymentInstallment{ID: "i-1", ProposalID: "p-1", OwnerID: "owner-1", Number: 2, DueDate: "2024-02-01", Amount: 500, PaymentMethod: "boleto"}
		insts.EXPECT().GetByID(gomock.Any(), "i-1", "owner-1").Return(stored, nil)
		insts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.Number != 2 {
					t.Fatalf("number must be immutable: %+v", inst)
				}
				if inst.DueDate != "2024-03-15" || inst.Amount != 450.55 || inst.PaymentMethod != "pix" {
					t.Fatalf("patch not applied: %+v", inst)
				}
				return inst, nil
			},
		)

		got, err := uc.UpdateInstallment(context.Background(), "i-1", "owner-1", InstallmentUpdateInput{
			DueDate:       strPtr("2024-03-15"),
			Amount:        floatPtr(450.554),
			PaymentMethod: strPtr(" pix "),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 450.55 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
