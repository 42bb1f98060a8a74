package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_motors/internal/adapter/http/handlers/mocks"
	"kaenpro_motors/internal/auth"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testRouter(p auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetPrincipal(c, p)
		c.Next()
	})
	return r
}

var ownerPrincipal = auth.Principal{Username: "Rafael", Role: entities.RoleDono}

func TestServiceOrderHandler_Finalize(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/service-orders", h.Finalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/v1/service-orders", h.Finalize)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("client not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "Rafael", gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrClientNotFound)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/service-orders", h.Finalize)

		body := `{"client_id":"c1","vehicle_id":"v1","labor_value":50}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "Rafael", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.FinalizeOrderInput) (entities.ServiceOrder, error) {
				if in.ClientID != "c1" || in.VehicleID != "v1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.Items) != 1 || in.Items[0].Type != entities.OSItemTypePart {
					t.Fatalf("unexpected items: %+v", in.Items)
				}
				return entities.ServiceOrder{ID: "os-1", OSNumber: "12345", TotalValue: 310, Status: entities.OSStatusFinalizado}, nil
			},
		)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/service-orders", h.Finalize)

		body := `{"client_id":"c1","vehicle_id":"v1","vehicle_km":85000,"items":[{"description":"Amortecedor","quantity":2,"unit_price":130,"type":"PART"}],"labor_value":50}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["os_number"] != "12345" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("negative numbers are coerced to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Finalize(gomock.Any(), "Rafael", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.FinalizeOrderInput) (entities.ServiceOrder, error) {
				if in.LaborValue != 0 || in.Discount != 0 || in.VehicleKm != 0 {
					t.Fatalf("expected coerced input, got %+v", in)
				}
				return entities.ServiceOrder{ID: "os-1"}, nil
			},
		)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/service-orders", h.Finalize)

		body := `{"client_id":"c1","vehicle_id":"v1","vehicle_km":-5,"labor_value":-10,"discount":-3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Delete(t *testing.T) {
	t.Run("permission denied maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		employee := auth.Principal{Username: "Ana", Role: entities.RoleFuncionario}
		uc.EXPECT().Delete(gomock.Any(), "Ana", "os-1", entities.RoleFuncionario).Return(usecase.ErrPermissionDenied)

		r := testRouter(employee)
		r.DELETE("/v1/service-orders/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "os-1", entities.RoleDono).Return(nil)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/service-orders/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "Rafael", "os-9").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		r := testRouter(ownerPrincipal)
		r.GET("/v1/service-orders/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
