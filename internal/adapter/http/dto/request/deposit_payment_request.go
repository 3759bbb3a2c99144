package request

import "encoding/json"

// DepositPaymentCreateRequest carries the provider payload for taking a
// deposit. `provider_payload` is forwarded as raw JSON so provider schema
// changes do not require a deploy here.
type DepositPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
