package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mobiplan/internal/adapter/http/handlers/mocks"
	"mobiplan/internal/adapter/http/middleware"
	"mobiplan/internal/domain/entities"
	"mobiplan/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testOwnerID = "owner-1"

// asOwner stubs the auth middleware so handler tests exercise routing
// and mapping without real tokens.
func asOwner(ownerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.OwnerKey, ownerID)
		c.Next()
	}
}

func budgetTestRouter(h *BudgetHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asOwner(testOwnerID))
	r.POST("/v1/budgets", h.CreateBudget)
	r.GET("/v1/budgets", h.ListBudgets)
	r.GET("/v1/budgets/:budget_id", h.GetBudget)
	r.PUT("/v1/budgets/:budget_id", h.UpdateBudget)
	r.DELETE("/v1/budgets/:budget_id", h.DeleteBudget)
	r.POST("/v1/budgets/:budget_id/environments", h.CreateEnvironment)
	r.GET("/v1/budgets/:budget_id/environments", h.ListEnvironments)
	r.PUT("/v1/budgets/:budget_id/environments/:environment_id", h.UpdateEnvironment)
	r.DELETE("/v1/budgets/:budget_id/environments/:environment_id", h.DeleteEnvironment)
	r.GET("/v1/budgets/:budget_id/total", h.GetBudgetTotal)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{"observations":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().
			CreateBudget(gomock.Any(), testOwnerID, usecase.BudgetInput{ClientName: "Maria Souza", InitialDate: "2025-03-01"}).
			Return(entities.Budget{ID: "b-1", OwnerID: testOwnerID, ClientName: "Maria Souza", InitialDate: "2025-03-01", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{"client_name":"Maria Souza","initial_date":"2025-03-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["id"] != "b-1" || body["client_name"] != "Maria Souza" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().GetBudget(gomock.Any(), "b-404", testOwnerID).Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/b-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().GetBudget(gomock.Any(), "b-1", testOwnerID).Return(entities.Budget{ID: "b-1", ClientName: "Maria Souza"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := budgetTestRouter(NewBudgetHandler(uc))

	uc.EXPECT().ListBudgets(gomock.Any(), testOwnerID).Return([]entities.Budget{{ID: "b-1"}, {ID: "b-2"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(body))
	}
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().DeleteBudget(gomock.Any(), "b-404", testOwnerID).Return(usecase.ErrBudgetNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().DeleteBudget(gomock.Any(), "b-1", testOwnerID).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_Environments(t *testing.T) {
	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().
			CreateEnvironment(gomock.Any(), "b-1", testOwnerID, usecase.EnvironmentInput{Name: "Kitchen", Quantity: 3, UnitPrice: 199.99}).
			Return(entities.BudgetEnvironment{ID: "env-1", BudgetID: "b-1", Name: "Kitchen", Quantity: 3, UnitPrice: 199.99, Subtotal: 599.97}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/environments", bytes.NewBufferString(`{"name":"Kitchen","quantity":3,"unit_price":199.99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["subtotal"] != 599.97 {
			t.Fatalf("unexpected subtotal: %v", body["subtotal"])
		}
	})

	t.Run("create on someone else's budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().
			CreateEnvironment(gomock.Any(), "b-other", testOwnerID, gomock.Any()).
			Return(entities.BudgetEnvironment{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-other/environments", bytes.NewBufferString(`{"name":"Kitchen","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().
			UpdateEnvironment(gomock.Any(), "env-1", testOwnerID, gomock.Any()).
			Return(entities.BudgetEnvironment{}, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1/environments/env-1", bytes.NewBufferString(`{"name":"Kitchen","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().ListEnvironments(gomock.Any(), "b-1", testOwnerID).Return([]entities.BudgetEnvironment{{ID: "env-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/environments", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetTestRouter(NewBudgetHandler(uc))

		uc.EXPECT().DeleteEnvironment(gomock.Any(), "env-1", testOwnerID).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/budgets/b-1/environments/env-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetBudgetTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := budgetTestRouter(NewBudgetHandler(uc))

	uc.EXPECT().TotalOf(gomock.Any(), "b-1", testOwnerID).Return(2000.0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1/total", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body["budget_id"] != "b-1" || body["total"] != 2000.0 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestMapBudgetError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid budget id", err: usecase.ErrInvalidBudgetID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "invalid quantity", err: usecase.ErrInvalidQuantity, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "budget not found", err: usecase.ErrBudgetNotFound, wantStatus: http.StatusNotFound, wantCode: "BUDGET_NOT_FOUND"},
		{name: "environment not found", err: usecase.ErrEnvironmentNotFound, wantStatus: http.StatusNotFound, wantCode: "ENVIRONMENT_NOT_FOUND"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapBudgetError(tt.err)
			if appErr.HTTPStatus != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, appErr.HTTPStatus)
			}
			if appErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}
