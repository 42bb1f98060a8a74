package request

import "encoding/json"

type RecordContactRequest struct {
	Level string `json:"level" binding:"required,oneof=mild formal final"`
}

// MarkPaidRequest optionally carries a payment-provider payload. When
// present, the payment is confirmed through the configured gateway before
// the order is marked paid.
type MarkPaidRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
