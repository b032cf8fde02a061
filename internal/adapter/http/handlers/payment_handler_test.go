package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ipfiling/internal/adapter/http/handlers/mocks"
	"ipfiling/internal/adapter/http/middleware"
	"ipfiling/internal/domain/entities"
	"ipfiling/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity("admin-token"))
	r.POST("/v1/payments/verify", h.VerifyPayment)
	r.GET("/v1/payments/:transaction_id", h.GetPayment)
	r.GET("/v1/payments/:transaction_id/orders", h.ListPaymentOrders)
	return r
}

func postVerify(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		w := postVerify(r, "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing fields", usecase.ErrMissingCallbackFields, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad signature", usecase.ErrInvalidSignature, http.StatusBadRequest, "INVALID_SIGNATURE"},
		{"secret missing", usecase.ErrSignatureSecretMissing, http.StatusInternalServerError, "CONFIGURATION_ERROR"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
			r := newPaymentRouter(NewPaymentHandler(uc, nil))

			uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmationResult{}, tc.err)

			w := postVerify(r, `{"orderRef":"o1","paymentRef":"p1","signature":"x"}`, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %q", tc.code, body["code"])
			}
		})
	}

	t.Run("header identity wins and hints are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.ConfirmPaymentCommand) (usecase.ConfirmationResult, error) {
				if cmd.UserID != "u-header" {
					t.Fatalf("expected header user, got %q", cmd.UserID)
				}
				if cmd.DeclaredPrice == nil || !cmd.DeclaredPrice.Equal(decimal.RequireFromString("99.9")) {
					t.Fatalf("unexpected declared price: %v", cmd.DeclaredPrice)
				}
				if cmd.GatewayAmountMinor == nil || *cmd.GatewayAmountMinor != 9990 {
					t.Fatalf("unexpected gateway amount: %v", cmd.GatewayAmountMinor)
				}
				if len(cmd.CartLines) != 2 || cmd.CartLines[1].Service != "Patent Filing" {
					t.Fatalf("unexpected cart lines: %+v", cmd.CartLines)
				}
				if cmd.FormData["email"] != "a@x.io" {
					t.Fatalf("unexpected form data: %+v", cmd.FormData)
				}
				return usecase.ConfirmationResult{Success: true}, nil
			},
		)

		body := `{"orderRef":"o1","paymentRef":"p1","signature":"x","userId":"u-body",
			"declaredPrice":"99.9","amount":9990,"formData":{"email":"a@x.io"},
			"cartLines":[{"serviceId":"A"},{"service":"Patent Filing"}]}`
		w := postVerify(r, body, map[string]string{middleware.HeaderUserID: "u-header"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("capture failure still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmationResult{
			Success:      true,
			CaptureError: "store down",
			Attribution:  usecase.Attribution{AmountSource: usecase.AmountSourceDefault},
		}, nil)

		w := postVerify(r, `{"orderRef":"o1","paymentRef":"p1","signature":"x"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success      bool   `json:"success"`
			Captured     bool   `json:"captured"`
			CaptureError string `json:"captureError"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Success || body.Captured || body.CaptureError != "store down" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		p := entities.Payment{
			ID:                    "pay-1",
			ProviderTransactionID: "p1",
			ProviderOrderID:       "o1",
			UserID:                "u1",
			Amount:                decimal.RequireFromString("250"),
			Status:                entities.PaymentStatusPaid,
			Date:                  time.Now().UTC(),
		}
		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.ConfirmationResult{
			Success:  true,
			Captured: true,
			Payment:  &p,
			CreatedOrders: []entities.Order{
				{ID: "ord-1", PaymentID: "pay-1", UserID: "u1", ServiceID: "A", Status: entities.OrderStatusReceived},
				{ID: "ord-2", PaymentID: "pay-1", UserID: "u1", ServiceID: "B", LineIndex: 1, Status: entities.OrderStatusReceived},
			},
			Notify: usecase.NotifyOutcome{Dispatched: true, Async: true},
		}, nil)

		w := postVerify(r, `{"orderRef":"o1","paymentRef":"p1","signature":"x"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Captured bool `json:"captured"`
			Payment  struct {
				Amount string `json:"amount"`
			} `json:"payment"`
			CreatedOrders []struct {
				ID string `json:"id"`
			} `json:"createdOrders"`
			NotifyResult struct {
				Dispatched bool `json:"dispatched"`
				Async      bool `json:"async"`
			} `json:"notifyResult"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Captured || body.Payment.Amount != "250.00" || len(body.CreatedOrders) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if !body.NotifyResult.Dispatched || !body.NotifyResult.Async {
			t.Fatalf("unexpected notify result: %+v", body.NotifyResult)
		}
	})
}

func TestPaymentHandler_Lookups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().GetPayment(gomock.Any(), "p9").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/p9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().GetPayment(gomock.Any(), "p1").Return(entities.Payment{ID: "pay-1", ProviderTransactionID: "p1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["user_id"] != nil || body["type"] != nil {
			t.Fatalf("expected null owner and type, got %v", body)
		}
	})

	t.Run("list orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().ListOrdersByPayment(gomock.Any(), "p1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/p1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}
