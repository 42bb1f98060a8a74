package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaenpro_motors/internal/auth"

	"github.com/gin-gonic/gin"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("AUTH_USERNAME", "Rafael")
	t.Setenv("AUTH_PASSWORD", "enzo1234")
	t.Setenv("AUTH_ROLE", "dono")

	h := NewAuthHandler(auth.NewStaticVerifierFromEnv())
	r := gin.New()
	r.POST("/v1/auth/login", h.Login)

	t.Run("valid credentials", func(t *testing.T) {
		body := `{"username":"Rafael","password":"enzo1234"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["username"] != "Rafael" || resp["role"] != "dono" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"username":"Rafael","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields rejected by binding", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"Rafael"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
