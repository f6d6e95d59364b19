package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/handlers/mocks"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/domain/entities"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
)

func TestPaymentHandler_CollectInitialPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests/:id/payments/initial", h.CollectInitialPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/payments/initial", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests/:id/payments/initial", h.CollectInitialPayment)

		uc.EXPECT().CollectInitialPayment(gomock.Any(), "sr-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/payments/initial", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests/:id/payments/initial", h.CollectInitialPayment)

		uc.EXPECT().CollectInitialPayment(gomock.Any(), "sr-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/payments/initial", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unwraps the provider_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests/:id/payments/initial", h.CollectInitialPayment)

		uc.EXPECT().CollectInitialPayment(gomock.Any(), "sr-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Payment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload must be json: %v", err)
				}
				if m["token"] != "tok_123" {
					t.Fatalf("expected unwrapped payload, got %v", m)
				}
				return entities.Payment{ID: "pay-1", Kind: entities.PaymentKindInitial, Amount: 115}, nil
			})

		body := `{"provider_payload":{"token":"tok_123","payment_method_id":"visa"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/payments/initial", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty body becomes an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/service-requests/:id/payments/initial", h.CollectInitialPayment)

		uc.EXPECT().CollectInitialPayment(gomock.Any(), "sr-1", json.RawMessage("{}")).
			Return(entities.Payment{ID: "pay-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests/sr-1/payments/initial", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/service-requests/:id/payments", h.ListPayments)

	uc.EXPECT().ListByServiceRequestID(gomock.Any(), "sr-1").Return([]entities.Payment{
		{ID: "pay-1", Kind: entities.PaymentKindInitial, Amount: 115},
		{ID: "pay-2", Kind: entities.PaymentKindFinal, Amount: 115},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/service-requests/sr-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res) != 2 || res[0]["kind"] != "initial" {
		t.Fatalf("unexpected payments: %v", res)
	}
}
