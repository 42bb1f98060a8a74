package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_motors/internal/adapter/http/handlers/mocks"
	"kaenpro_motors/internal/auth"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestClientHandler_Register(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/clients", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created under the authenticated tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "Rafael", gomock.AssignableToTypeOf(entities.Client{})).Return(entities.Client{ID: "c1", Name: "Marcos"}, nil)

		r := testRouter(ownerPrincipal)
		r.POST("/v1/clients", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":"Marcos","phone":"11 98888-7777"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_Delete(t *testing.T) {
	t.Run("confirm query flag reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "c1", entities.RoleDono, true).Return(nil)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/clients/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c1?confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("missing confirmation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "Rafael", "c1", entities.RoleDono, false).Return(usecase.ErrDeletionNotConfirmed)

		r := testRouter(ownerPrincipal)
		r.DELETE("/v1/clients/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-owner maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		reception := auth.Principal{Username: "Bia", Role: entities.RoleRecepcao}
		uc.EXPECT().Delete(gomock.Any(), "Bia", "c1", entities.RoleRecepcao, true).Return(usecase.ErrPermissionDenied)

		r := testRouter(reception)
		r.DELETE("/v1/clients/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c1?confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
