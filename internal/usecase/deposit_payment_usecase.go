package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"roofpro/internal/domain/entities"
	"roofpro/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound     = errors.New("deposit payment not found")
	ErrInvalidPaymentEstimateID   = errors.New("invalid estimate_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrEstimateNotApproved        = errors.New("estimate not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const defaultDepositPercent = 10.0

// IDepositPaymentUseCase encapsulates taking a deposit against an approved
// estimate: create the payment with the provider, approve it and persist it.
type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_estimate_id=%q payload_len=%d", estimateID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentEstimateID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		return entities.DepositPayment{}, errors.New("estimate repository not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	if !mockMode && est.Status != entities.EstimateStatusApproved {
		log.Printf("[payment][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotApproved
	}

	depositAmount := roundToCents(est.PriceLikely * depositPercent() / 100)
	log.Printf("[payment][usecase] estimate loaded estimate_id=%s status=%s deposit=%.2f", estimateID, est.Status, depositAmount)

	// Carry linkage with the estimate into the provider request when the
	// caller left it out; the deposit amount in DB is the source of truth.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = estimateID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Roofing estimate deposit %s", estimateID)
		}
		reqMap["transaction_amount"] = depositAmount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway estimate_id=%s", estimateID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(providerPayload) > 0 && json.Valid(providerPayload) {
			_ = json.Unmarshal(providerPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = depositAmount
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		Amount:             depositAmount,
		Date:               now,
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func depositPercent() float64 {
	raw := strings.TrimSpace(os.Getenv("ESTIMATE_DEPOSIT_PERCENT"))
	if raw == "" {
		return defaultDepositPercent
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 100 {
		return defaultDepositPercent
	}
	return v
}

func roundToCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unauthorized") || strings.Contains(msg, "\"status\":401")
}
