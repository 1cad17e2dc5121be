package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"peritaje_crm/internal/adapter/http/handlers/mocks"
	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), "case-1", -5.0, "").Return(entities.Quote{}, usecase.ErrInvalidQuoteAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"case_id":"case-1","amount":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success wraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), "case-1", 1500.0, "peritaje contable").
			Return(entities.Quote{ID: "q-1", CaseID: "case-1", Amount: 1500, Status: entities.QuoteStatusBorrador}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"case_id":"case-1","amount":1500,"description":"peritaje contable"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		if data["id"] != "q-1" || data["status"] != "borrador" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusEnviada}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve wrong state is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuotePrecondition)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject without reason is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "q-1", "").Return(entities.Quote{}, usecase.ErrQuoteReasonRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "REASON_REQUIRED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject unknown quote is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "q-1", "monto fuera de rango").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", bytes.NewBufferString(`{"reason":"monto fuera de rango"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
