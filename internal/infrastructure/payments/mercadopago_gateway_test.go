package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewMercadoPagoGateway("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := json.RawMessage(`{"transaction_amount":550,"payment_method_id":"pix","external_reference":"os-1"}`)
	id, status, resp, err := g.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a provider payment id")
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}

	var body struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		StatusDetail string `json:"status_detail"`
		Request      struct {
			ExternalReference string `json:"external_reference"`
		} `json:"request"`
	}
	if err := json.Unmarshal(resp, &body); err != nil {
		t.Fatalf("provider response must be valid json: %v", err)
	}
	if body.ID != id || body.Status != "approved" || body.StatusDetail != "accredited" {
		t.Fatalf("unexpected provider response: %+v", body)
	}
	if body.Request.ExternalReference != "os-1" {
		t.Fatalf("request payload must be echoed back, got %+v", body.Request)
	}
}

func TestNewMercadoPagoGateway_RequiresAccessToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway("", nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}
