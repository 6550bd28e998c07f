package adaptor

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	applied *request.GatewayWebhookRequest
	err     error
}

func (s *stubPaymentService) RecordAttempt(context.Context, uuid.UUID, string, *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	return nil, nil
}

func (s *stubPaymentService) ListByBooking(context.Context, uuid.UUID, string, string) ([]response.PaymentResponse, error) {
	return nil, nil
}

func (s *stubPaymentService) ApplyGatewayResult(_ context.Context, req *request.GatewayWebhookRequest, _ []byte) (*response.PaymentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.applied = req
	return &response.PaymentResponse{Status: entity.PaymentStatus(req.Status)}, nil
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGatewayWebhook(t *testing.T) {
	const secret = "whsec_test"
	body := []byte(`{"transaction_id":"TXN-1","status":"completed"}`)

	t.Run("rejects missing signature", func(t *testing.T) {
		service := &stubPaymentService{}
		handler := NewPaymentHandler(service, secret, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		handler.GatewayWebhook(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, service.applied)
	})

	t.Run("rejects wrong signature", func(t *testing.T) {
		service := &stubPaymentService{}
		handler := NewPaymentHandler(service, secret, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("X-Razorpay-Signature", sign(body, "other-secret"))
		rec := httptest.NewRecorder()
		handler.GatewayWebhook(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts valid signature", func(t *testing.T) {
		service := &stubPaymentService{}
		handler := NewPaymentHandler(service, secret, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		req.Header.Set("X-Razorpay-Signature", sign(body, secret))
		rec := httptest.NewRecorder()
		handler.GatewayWebhook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, service.applied) {
			assert.Equal(t, "TXN-1", service.applied.TransactionID)
			assert.Equal(t, "completed", service.applied.Status)
		}
	})

	t.Run("maps transition errors to conflict", func(t *testing.T) {
		service := &stubPaymentService{err: entity.ErrInvalidTransition}
		handler := NewPaymentHandler(service, "", zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		handler.GatewayWebhook(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
