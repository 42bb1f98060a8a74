package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway confirms workshop payments through Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) short-circuits the
// provider and approves everything locally, which keeps the mark-paid flow
// usable in development without credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
}

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if isPaymentGatewayMockEnabled() {
		logger.Info("payment gateway mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("failed creating mercado pago sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

// mockApproval is the provider response shape produced in mock mode. The
// caller's payload travels back under "request" so the stored provider
// response still carries what was asked for.
type mockApproval struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	StatusDetail string          `json:"status_detail"`
	DateCreated  string          `json:"date_created"`
	DateApproved string          `json:"date_approved"`
	Request      json.RawMessage `json:"request,omitempty"`
}

func (g *MercadoPagoGateway) approveLocally(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	now := time.Now().UTC()
	approval := mockApproval{
		ID:           strconv.FormatInt(now.UnixNano(), 10),
		Status:       "approved",
		StatusDetail: "accredited",
		DateCreated:  now.Format(time.RFC3339Nano),
		DateApproved: now.Format(time.RFC3339Nano),
	}
	if json.Valid(requestPayload) {
		approval.Request = requestPayload
	}

	b, err := json.Marshal(approval)
	if err != nil {
		return "", "", nil, err
	}

	g.logger.Info("mock payment approved", zap.String("provider_payment_id", approval.ID))
	return approval.ID, approval.Status, b, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.approveLocally(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("mercado pago create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.Info("payment created",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status))

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
