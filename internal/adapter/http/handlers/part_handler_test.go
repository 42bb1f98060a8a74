package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_motors/internal/adapter/http/handlers/mocks"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPartHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPartUseCase(ctrl)
	h := NewPartHandler(uc)

	uc.EXPECT().List(gomock.Any(), "Rafael").Return([]entities.Part{
		{ID: "p1", Name: "Filtro de óleo", Stock: 2, MinStock: 3, SalePrice: 35},
		{ID: "p2", Name: "Amortecedor", Stock: 10, MinStock: 2, SalePrice: 150},
	}, nil)

	r := testRouter(ownerPrincipal)
	r.GET("/v1/parts", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/parts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []struct {
		ID       string `json:"id"`
		LowStock bool   `json:"low_stock"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 parts, got %+v", resp)
	}
	if !resp[0].LowStock || resp[1].LowStock {
		t.Fatalf("low stock flags wrong: %+v", resp)
	}
}

func TestPartHandler_Summary(t *testing.T) {
	// Registered next to the :id route, as in the live router: the summary
	// path must win over the id wildcard.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPartUseCase(ctrl)
	h := NewPartHandler(uc)

	uc.EXPECT().Summary(gomock.Any(), "Rafael").Return(usecase.InventorySummary{CriticalCount: 2, TotalValue: 970}, nil)

	r := testRouter(ownerPrincipal)
	r.GET("/v1/parts/summary", h.Summary)
	r.GET("/v1/parts/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/v1/parts/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		CriticalCount int     `json:"critical_count"`
		TotalValue    float64 `json:"total_value"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.CriticalCount != 2 || resp.TotalValue != 970 {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestPartHandler_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "p1", false).Return(usecase.ErrDeletionNotConfirmed)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/parts/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/parts/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPartUseCase(ctrl)
		h := NewPartHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "p1", true).Return(nil)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/parts/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/parts/p1?confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
