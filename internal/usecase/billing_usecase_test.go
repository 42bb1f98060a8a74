package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"kaenpro_motors/internal/domain/entities"
	mock_interfaces "kaenpro_motors/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newBillingUseCaseForTest(t *testing.T) (*BillingUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIPaymentGateway) {
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewBillingUseCase(orders, gateway, "Oficina Teste", nil), orders, gateway
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().Add(-time.Duration(n) * 24 * time.Hour)
}

func TestBillingUseCase_RefreshOverdue(t *testing.T) {
	t.Run("pending past grace becomes overdue", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		stale := entities.ServiceOrder{ID: "os-1", ClientID: "c1", PaymentStatus: entities.PaymentStatusPendente, CreatedAt: daysAgo(8)}

		orders.EXPECT().List(gomock.Any(), testTenant).Return([]entities.ServiceOrder{stale}, nil)
		orders.EXPECT().Update(gomock.Any(), testTenant, gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.PaymentStatus != entities.PaymentStatusAtrasado {
					t.Fatalf("expected atrasado, got %s", o.PaymentStatus)
				}
				return o, nil
			},
		)

		all, err := uc.RefreshOverdue(context.Background(), testTenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if all[0].PaymentStatus != entities.PaymentStatusAtrasado {
			t.Fatalf("expected refreshed list to carry the new status")
		}
	})

	t.Run("recent pending order stays pending", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		recent := entities.ServiceOrder{ID: "os-1", PaymentStatus: entities.PaymentStatusPendente, CreatedAt: daysAgo(3)}

		orders.EXPECT().List(gomock.Any(), testTenant).Return([]entities.ServiceOrder{recent}, nil)

		all, err := uc.RefreshOverdue(context.Background(), testTenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if all[0].PaymentStatus != entities.PaymentStatusPendente {
			t.Fatalf("expected pendente, got %s", all[0].PaymentStatus)
		}
	})

	t.Run("paid and already-overdue orders untouched", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		list := []entities.ServiceOrder{
			{ID: "os-1", PaymentStatus: entities.PaymentStatusPago, CreatedAt: daysAgo(30)},
			{ID: "os-2", PaymentStatus: entities.PaymentStatusAtrasado, CreatedAt: daysAgo(30)},
		}

		orders.EXPECT().List(gomock.Any(), testTenant).Return(list, nil)

		if _, err := uc.RefreshOverdue(context.Background(), testTenant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillingUseCase_Summary(t *testing.T) {
	t.Run("aggregates non-paid subset with distinct debtors", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		list := []entities.ServiceOrder{
			{ID: "os-1", ClientID: "c1", TotalValue: 100, PaymentStatus: entities.PaymentStatusPendente, CreatedAt: daysAgo(2)},
			{ID: "os-2", ClientID: "c1", TotalValue: 200, PaymentStatus: entities.PaymentStatusAtrasado, CreatedAt: daysAgo(10)},
			{ID: "os-3", ClientID: "c2", TotalValue: 50, PaymentStatus: entities.PaymentStatusPendente, CreatedAt: daysAgo(4)},
			{ID: "os-4", ClientID: "c3", TotalValue: 999, PaymentStatus: entities.PaymentStatusPago, CreatedAt: daysAgo(40)},
		}

		orders.EXPECT().List(gomock.Any(), testTenant).Return(list, nil)

		s, err := uc.Summary(context.Background(), testTenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalOutstanding != 350 {
			t.Fatalf("expected total 350, got %v", s.TotalOutstanding)
		}
		// c1 has two open orders but counts once.
		if s.DebtorCount != 2 {
			t.Fatalf("expected 2 debtors, got %d", s.DebtorCount)
		}
		if s.MeanDaysInArrears <= 0 {
			t.Fatalf("expected positive mean, got %d", s.MeanDaysInArrears)
		}
	})

	t.Run("empty collection yields zero summary", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		orders.EXPECT().List(gomock.Any(), testTenant).Return(nil, nil)

		s, err := uc.Summary(context.Background(), testTenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalOutstanding != 0 || s.DebtorCount != 0 || s.MeanDaysInArrears != 0 {
			t.Fatalf("expected zero summary, got %+v", s)
		}
	})
}

func TestBillingUseCase_Message(t *testing.T) {
	order := entities.ServiceOrder{
		OSNumber:   "12345",
		ClientName: "Marcos Silva",
		TotalValue: 1234.5,
		CreatedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	uc, _, _ := newBillingUseCaseForTest(t)

	t.Run("invalid level", func(t *testing.T) {
		_, err := uc.Message(order, "aggressive")
		if !errors.Is(err, ErrInvalidEscalationLevel) {
			t.Fatalf("expected ErrInvalidEscalationLevel, got %v", err)
		}
	})

	t.Run("mild mentions order, date and value", func(t *testing.T) {
		msg, err := uc.Message(order, LevelMild)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Marcos Silva", "12345", "15/03/2026", "1.234,50", "Oficina Teste"} {
			if !strings.Contains(msg, want) {
				t.Fatalf("mild message missing %q:\n%s", want, msg)
			}
		}
	})

	t.Run("formal opens with collection notice", func(t *testing.T) {
		msg, err := uc.Message(order, LevelFormal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(msg, "AVISO DE COBRANÇA") {
			t.Fatalf("unexpected formal message:\n%s", msg)
		}
	})

	t.Run("final is the last warning", func(t *testing.T) {
		msg, err := uc.Message(order, LevelFinal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(msg, "ÚLTIMO AVISO") {
			t.Fatalf("unexpected final message:\n%s", msg)
		}
	})
}

func TestBillingUseCase_RecordContact(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		uc, _, _ := newBillingUseCaseForTest(t)
		_, err := uc.RecordContact(context.Background(), testTenant, "os-1", "shouting", "Rafael")
		if !errors.Is(err, ErrInvalidEscalationLevel) {
			t.Fatalf("expected ErrInvalidEscalationLevel, got %v", err)
		}
	})

	t.Run("invalid acting user", func(t *testing.T) {
		uc, _, _ := newBillingUseCaseForTest(t)
		_, err := uc.RecordContact(context.Background(), testTenant, "os-1", LevelMild, "  ")
		if !errors.Is(err, ErrInvalidActingUser) {
			t.Fatalf("expected ErrInvalidActingUser, got %v", err)
		}
	})

	t.Run("appends without touching existing entries", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		first := entities.BillingContact{Date: daysAgo(5), User: "Rafael", Level: "mild"}
		stored := entities.ServiceOrder{
			ID:             "os-1",
			OSNumber:       "12345",
			PaymentStatus:  entities.PaymentStatusAtrasado,
			BillingHistory: []entities.BillingContact{first},
		}

		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(stored, nil)
		orders.EXPECT().Update(gomock.Any(), testTenant, gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if len(o.BillingHistory) != 2 {
					t.Fatalf("expected 2 history entries, got %d", len(o.BillingHistory))
				}
				if o.BillingHistory[0] != first {
					t.Fatalf("existing entry was modified: %+v", o.BillingHistory[0])
				}
				last := o.BillingHistory[1]
				if last.User != "Rafael" || last.Level != "formal" || last.Date.IsZero() {
					t.Fatalf("unexpected appended entry: %+v", last)
				}
				if o.PaymentStatus != entities.PaymentStatusAtrasado {
					t.Fatalf("payment status must not change on contact")
				}
				return o, nil
			},
		)

		if _, err := uc.RecordContact(context.Background(), testTenant, "os-1", LevelFormal, "Rafael"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-9").Return(entities.ServiceOrder{}, nil)

		_, err := uc.RecordContact(context.Background(), testTenant, "os-9", LevelMild, "Rafael")
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})
}

func TestBillingUseCase_MarkPaid(t *testing.T) {
	t.Run("already paid is returned unchanged", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		paid := entities.ServiceOrder{ID: "os-1", PaymentStatus: entities.PaymentStatusPago}
		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(paid, nil)

		o, err := uc.MarkPaid(context.Background(), testTenant, "os-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("no payload skips the gateway", func(t *testing.T) {
		uc, orders, _ := newBillingUseCaseForTest(t)
		stored := entities.ServiceOrder{ID: "os-1", PaymentStatus: entities.PaymentStatusAtrasado}

		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(stored, nil)
		orders.EXPECT().Update(gomock.Any(), testTenant, gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.PaymentStatus != entities.PaymentStatusPago {
					t.Fatalf("expected pago, got %s", o.PaymentStatus)
				}
				if o.UpdatedAt.IsZero() {
					t.Fatalf("expected UpdatedAt to be set")
				}
				return o, nil
			},
		)

		if _, err := uc.MarkPaid(context.Background(), testTenant, "os-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payload confirms through gateway with enriched amount", func(t *testing.T) {
		uc, orders, gateway := newBillingUseCaseForTest(t)
		stored := entities.ServiceOrder{ID: "os-1", OSNumber: "12345", TotalValue: 550, PaymentStatus: entities.PaymentStatusPendente}

		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(stored, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if m["transaction_amount"] != float64(550) {
					t.Fatalf("expected stored total as amount, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "os-1" {
					t.Fatalf("expected order id as external_reference, got %v", m["external_reference"])
				}
				return "mp-1", "approved", nil, nil
			},
		)
		orders.EXPECT().Update(gomock.Any(), testTenant, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				return o, nil
			},
		)

		payload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`)
		o, err := uc.MarkPaid(context.Background(), testTenant, "os-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.PaymentStatus != entities.PaymentStatusPago {
			t.Fatalf("expected pago, got %s", o.PaymentStatus)
		}
	})

	t.Run("gateway failure leaves order unpaid", func(t *testing.T) {
		uc, orders, gateway := newBillingUseCaseForTest(t)
		stored := entities.ServiceOrder{ID: "os-1", TotalValue: 100, PaymentStatus: entities.PaymentStatusPendente}

		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(stored, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.MarkPaid(context.Background(), testTenant, "os-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
	})

	t.Run("payload without configured gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBillingUseCase(orders, nil, "", nil)

		orders.EXPECT().GetByID(gomock.Any(), testTenant, "os-1").Return(entities.ServiceOrder{ID: "os-1", PaymentStatus: entities.PaymentStatusPendente}, nil)

		_, err := uc.MarkPaid(context.Background(), testTenant, "os-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestDaysInArrears(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		from time.Time
		want int
	}{
		{"same instant", now, 0},
		{"one hour rounds up to a day", now.Add(-time.Hour), 1},
		{"exactly seven days", now.Add(-7 * 24 * time.Hour), 7},
		{"seven days and a minute", now.Add(-7*24*time.Hour - time.Minute), 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysInArrears(now, tc.from); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("(11) 98888-7777", "Olá, tudo bem?")
	if !strings.HasPrefix(link, "https://wa.me/5511988887777?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if strings.ContainsAny(link, " ()") {
		t.Fatalf("link must be fully escaped: %s", link)
	}
}
