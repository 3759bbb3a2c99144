package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roofpro/internal/adapter/http/handlers/mocks"
	"roofpro/internal/domain/entities"
	"roofpro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDepositPaymentHandler_CreatePaymentByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIDepositPaymentUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)
		return uc, r
	}

	post := func(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success with raw provider payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ any, estimateID string, payload json.RawMessage) (entities.DepositPayment, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload not forwarded as json: %v", err)
				}
				if body["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %+v", body)
				}
				return entities.DepositPayment{ID: "pay-1", EstimateID: estimateID, Amount: 1287.55, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}, nil
			})

		w := post(r, "/v1/payments/est-1", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "pay-1" || resp["amount"] != 1287.55 || resp["status"] != "approved" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("success with provider_payload envelope", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ any, estimateID string, payload json.RawMessage) (entities.DepositPayment, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload not unwrapped: %v", err)
				}
				if body["payment_method_id"] != "master" {
					t.Fatalf("envelope not unwrapped: %+v", body)
				}
				return entities.DepositPayment{ID: "pay-2", EstimateID: estimateID, Status: entities.PaymentStatusApproved}, nil
			})

		w := post(r, "/v1/payments/est-1", `{"provider_payload":{"payment_method_id":"master"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid body json", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		_, r := setup(t)

		w := post(r, "/v1/payments/est-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty provider_payload envelope", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		_, r := setup(t)

		w := post(r, "/v1/payments/est-1", `{"provider_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid body tolerated in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", json.RawMessage("{}")).Return(entities.DepositPayment{ID: "pay-3", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)

		w := post(r, "/v1/payments/est-1", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "missing", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrEstimateNotFound)

		w := post(r, "/v1/payments/missing", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrEstimateNotApproved)

		w := post(r, "/v1/payments/est-1", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		w := post(r, "/v1/payments/est-1", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc, r := setup(t)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrPaymentGatewayBadRequest)

		w := post(r, "/v1/payments/est-1", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDepositPaymentHandler_GetPaymentByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIDepositPaymentUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetPaymentByEstimateID)
		return uc, r
	}

	t.Run("returns latest payment", func(t *testing.T) {
		uc, r := setup(t)

		older := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)
		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.DepositPayment{
			{ID: "pay-1", EstimateID: "est-1", Date: older, Status: entities.PaymentStatusDenied},
			{ID: "pay-2", EstimateID: "est-1", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "pay-2" || resp["status"] != "approved" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("no payments", func(t *testing.T) {
		uc, r := setup(t)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		uc, r := setup(t)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, usecase.ErrInvalidPaymentEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
