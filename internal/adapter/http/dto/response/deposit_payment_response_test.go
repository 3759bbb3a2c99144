package response

import (
	"testing"
	"time"

	"roofpro/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:                 "pay-1",
		EstimateID:         "est-1",
		Amount:             434.94,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"id": float64(123)},
	}

	res := FromDepositPayment(p)
	if res.ID != "pay-1" || res.EstimateID != "est-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 434.94 {
		t.Fatalf("unexpected amount: %v", res.Amount)
	}
	if res.ProviderPayloadRaw != `{"id":123}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["id"] != float64(123) {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}
}
