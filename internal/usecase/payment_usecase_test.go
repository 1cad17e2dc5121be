package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"peritaje_crm/internal/domain/entities"
	mock_interfaces "peritaje_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreatePayment(context.Background(), "", 100, "anticipo", "transferencia")
		if !errors.Is(err, ErrInvalidPaymentCaseID) {
			t.Fatalf("expected ErrInvalidPaymentCaseID, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreatePayment(context.Background(), "case-1", -5, "", "")
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("create success starts pendiente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusPendiente {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreatePayment(context.Background(), "case-1", 2500, " anticipo ", " transferencia ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Concept != "anticipo" || res.Method != "transferencia" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentUseCase_Collect(t *testing.T) {
	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusPagado}, nil)

		_, err := uc.Collect(context.Background(), "p-1", nil)
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusPendiente}, nil)

		_, err := uc.Collect(context.Background(), "p-1", nil)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("payload amount is overridden by persisted amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Payment{ID: "p-1", CaseID: "case-1", Amount: 2500, Status: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if m["transaction_amount"] != 2500.0 {
					t.Fatalf("expected amount 2500, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "p-1" {
					t.Fatalf("expected reference p-1, got %v", m["external_reference"])
				}
				return "mp-77", "approved", json.RawMessage(`{"id":"mp-77"}`), nil
			},
		)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.PaymentStatusPagado, "mp-77", json.RawMessage(`{"id":"mp-77"}`)).
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusPagado}, nil)

		res, err := uc.Collect(context.Background(), "p-1", json.RawMessage(`{"transaction_amount": 1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusPagado {
			t.Fatalf("expected pagado, got %s", res.Status)
		}
	})

	t.Run("gateway failure leaves payment untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").
			Return(entities.Payment{ID: "p-1", Amount: 100, Status: entities.PaymentStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("provider down"))

		_, err := uc.Collect(context.Background(), "p-1", nil)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Cancel(t *testing.T) {
	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusCancelado}, nil)

		_, err := uc.Cancel(context.Background(), "p-1")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusPendiente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.PaymentStatusCancelado, "", nil).
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusCancelado}, nil)

		res, err := uc.Cancel(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusCancelado {
			t.Fatalf("expected cancelado, got %s", res.Status)
		}
	})
}
