package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_motors/internal/adapter/http/handlers/mocks"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestVehicleHandler_Register(t *testing.T) {
	t.Run("missing plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/vehicles", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"client_id":"c1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "Rafael", gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, _ string, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ClientID != "c1" || v.Plate != "abc1d23" {
					t.Fatalf("unexpected vehicle payload: %+v", v)
				}
				v.ID = "v1"
				v.Plate = "ABC1D23"
				return v, nil
			},
		)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/vehicles", h.Register)

		body := `{"client_id":"c1","plate":"abc1d23","brand":"VW","model":"Gol","year":"2019","km":42000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			ID    string `json:"id"`
			Plate string `json:"plate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ID != "v1" || resp.Plate != "ABC1D23" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestVehicleHandler_List(t *testing.T) {
	t.Run("client_id filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().ListByClientID(gomock.Any(), "Rafael", "c1").Return([]entities.Vehicle{
			{ID: "v1", ClientID: "c1", Plate: "ABC1D23"},
		}, nil)

		r := testRouter(ownerPrincipal)
		r.GET("/v1/vehicles", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?client_id=c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0].ID != "v1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("whole fleet without filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().List(gomock.Any(), "Rafael").Return([]entities.Vehicle{}, nil)

		r := testRouter(ownerPrincipal)
		r.GET("/v1/vehicles", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "v1", false).Return(usecase.ErrDeletionNotConfirmed)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/vehicles/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/v1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "v1", true).Return(nil)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/vehicles/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/v1?confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
