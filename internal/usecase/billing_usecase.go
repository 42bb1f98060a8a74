package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidEscalationLevel      = errors.New("invalid escalation level")
	ErrInvalidActingUser           = errors.New("invalid acting user")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayFailed        = errors.New("payment gateway failed")
)

// OverdueGraceDays is the collection grace period: a pending order older
// than this many days is flagged as overdue.
const OverdueGraceDays = 7

// EscalationLevel selects the wording of a collection message.

type EscalationLevel string

const (
	LevelMild   EscalationLevel = "mild"
	LevelFormal EscalationLevel = "formal"
	LevelFinal  EscalationLevel = "final"
)

func (l EscalationLevel) Valid() bool {
	switch l {
	case LevelMild, LevelFormal, LevelFinal:
		return true
	}
	return false
}

// ArrearsSummary aggregates the non-paid subset of the order collection.

type ArrearsSummary struct {
	TotalOutstanding  float64 `json:"total_outstanding"`
	DebtorCount       int     `json:"debtor_count"`
	MeanDaysInArrears int     `json:"mean_days_in_arrears"`
}

// IBillingUseCase is the billing & collections engine: it derives overdue
// state over time, aggregates arrears, generates escalation messages and
// appends immutable contact-history entries.

type IBillingUseCase interface {
	RefreshOverdue(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
	Summary(ctx context.Context, tenantID string) (ArrearsSummary, error)
	Message(o entities.ServiceOrder, level EscalationLevel) (string, error)
	RecordContact(ctx context.Context, tenantID, orderID string, level EscalationLevel, actingUser string) (entities.ServiceOrder, error)
	MarkPaid(ctx context.Context, tenantID, orderID string, providerPayload json.RawMessage) (entities.ServiceOrder, error)
}

type BillingUseCase struct {
	orders   interfaces.IServiceOrderRepository
	gateway  interfaces.IPaymentGateway
	shopName string
	logger   *zap.Logger
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(orders interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway, shopName string, logger *zap.Logger) *BillingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shopName == "" {
		shopName = "Kaenpro Motors"
	}
	return &BillingUseCase{orders: orders, gateway: gateway, shopName: shopName, logger: logger}
}

// RefreshOverdue runs the collections pass: every order still pending past
// the grace period is rewritten as overdue. Paid orders and orders already
// overdue are left untouched. The full refreshed collection is returned.
func (u *BillingUseCase) RefreshOverdue(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	all, err := u.orders.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	flagged := 0
	for i, o := range all {
		if o.PaymentStatus != entities.PaymentStatusPendente {
			continue
		}
		if DaysInArrears(now, o.CreatedAt) <= OverdueGraceDays {
			continue
		}
		o.PaymentStatus = entities.PaymentStatusAtrasado
		updated, err := u.orders.Update(ctx, tenantID, o)
		if err != nil {
			return nil, err
		}
		all[i] = updated
		flagged++
	}

	if flagged > 0 {
		u.logger.Info("orders flagged overdue",
			zap.String("tenant_id", tenantID),
			zap.Int("count", flagged))
	}
	return all, nil
}

// Summary aggregates arrears over the non-paid subset: amount outstanding,
// distinct debtors (a client with two open orders counts once) and the mean
// days in arrears rounded up.
func (u *BillingUseCase) Summary(ctx context.Context, tenantID string) (ArrearsSummary, error) {
	all, err := u.orders.List(ctx, tenantID)
	if err != nil {
		return ArrearsSummary{}, err
	}

	now := time.Now().UTC()
	var s ArrearsSummary
	debtors := map[string]struct{}{}
	daysSum := 0
	open := 0
	for _, o := range all {
		if o.PaymentStatus == entities.PaymentStatusPago {
			continue
		}
		s.TotalOutstanding += o.TotalValue
		debtors[o.ClientID] = struct{}{}
		daysSum += DaysInArrears(now, o.CreatedAt)
		open++
	}
	s.DebtorCount = len(debtors)
	if open > 0 {
		s.MeanDaysInArrears = int(math.Ceil(float64(daysSum) / float64(open)))
	}
	return s, nil
}

// Message renders the collection text for one order at the given escalation
// level. Pure templating; sending is a separate action.
func (u *BillingUseCase) Message(o entities.ServiceOrder, level EscalationLevel) (string, error) {
	if !level.Valid() {
		return "", ErrInvalidEscalationLevel
	}

	date := o.CreatedAt.Format("02/01/2006")
	value := FormatBRL(o.TotalValue)
	switch level {
	case LevelMild:
		return fmt.Sprintf("Olá, %s. Tudo bem?\n\nEstamos entrando em contato referente à Ordem de Serviço nº %s, realizada em %s, no valor de R$ %s.\n\nAté o momento, o pagamento ainda não foi identificado. Pedimos, por gentileza, que regularize o pagamento.\n\nAtenciosamente,\n%s",
			o.ClientName, o.OSNumber, date, value, u.shopName), nil
	case LevelFormal:
		return fmt.Sprintf("AVISO DE COBRANÇA: %s.\n\nReferente à nota de serviço #%s (%s). O valor de R$ %s consta como pendente em nosso sistema.\n\nSolicitamos o envio do comprovante ou a quitação do débito para evitar encargos contratuais.\n\n%s - Financeiro",
			o.ClientName, o.OSNumber, date, value, u.shopName), nil
	default:
		return fmt.Sprintf("URGENTE: ÚLTIMO AVISO DE DÉBITO.\n\nSr(a). %s, sua pendência referente ao serviço #%s está em atraso crítico. O não pagamento nas próximas 24h poderá resultar em restrições de crédito.\n\nRegularize agora.\n%s",
			o.ClientName, o.OSNumber, u.shopName), nil
	}
}

// RecordContact appends one entry to the order's billing history. Existing
// entries are never edited, reordered or removed, and payment status is not
// touched.
func (u *BillingUseCase) RecordContact(ctx context.Context, tenantID, orderID string, level EscalationLevel, actingUser string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if !level.Valid() {
		return entities.ServiceOrder{}, ErrInvalidEscalationLevel
	}
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.ServiceOrder{}, ErrInvalidActingUser
	}

	o, err := u.orders.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	o.BillingHistory = append(o.BillingHistory, entities.BillingContact{
		Date:  time.Now().UTC(),
		User:  actingUser,
		Level: string(level),
	})

	updated, err := u.orders.Update(ctx, tenantID, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("billing contact recorded",
		zap.String("tenant_id", tenantID),
		zap.String("os_number", o.OSNumber),
		zap.String("level", string(level)))
	return updated, nil
}

// MarkPaid moves an order to the terminal paid state. Idempotent in effect:
// an order already paid is returned unchanged. When the caller supplies a
// provider payload, the payment is confirmed through the configured gateway
// before the local state changes.
func (u *BillingUseCase) MarkPaid(ctx context.Context, tenantID, orderID string, providerPayload json.RawMessage) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	o, err := u.orders.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	if o.PaymentStatus == entities.PaymentStatusPago {
		return o, nil
	}

	if len(providerPayload) > 0 {
		if u.gateway == nil {
			return entities.ServiceOrder{}, ErrPaymentGatewayNotConfigured
		}
		payload, err := u.enrichProviderPayload(o, providerPayload)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.logger.Error("payment gateway failed",
				zap.String("tenant_id", tenantID),
				zap.String("os_number", o.OSNumber),
				zap.Error(err))
			return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		u.logger.Info("payment confirmed by gateway",
			zap.String("tenant_id", tenantID),
			zap.String("os_number", o.OSNumber),
			zap.String("provider_payment_id", providerID),
			zap.String("provider_status", providerStatus))
	}

	o.PaymentStatus = entities.PaymentStatusPago
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Update(ctx, tenantID, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("service order marked paid",
		zap.String("tenant_id", tenantID),
		zap.String("os_number", o.OSNumber))
	return updated, nil
}

// enrichProviderPayload pins the provider charge to the order: the stored
// total is the source of truth for the amount, and the order id rides along
// as external_reference for reconciliation.
func (u *BillingUseCase) enrichProviderPayload(o entities.ServiceOrder, payload json.RawMessage) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = o.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Nota de serviço %s", o.OSNumber)
	}
	m["transaction_amount"] = o.TotalValue
	return json.Marshal(m)
}

// DaysInArrears counts the days elapsed since the order was created, rounded
// up, matching the collections view semantics.
func DaysInArrears(now, createdAt time.Time) int {
	d := now.Sub(createdAt)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// WhatsAppLink builds the chat deep link for a collection message. Delivery
// itself happens outside this service; the link only packages phone and
// text.
func WhatsAppLink(phone, message string) string {
	digits := strings.Builder{}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/55" + digits.String() + "?text=" + url.QueryEscape(message)
}

// FormatBRL renders a monetary value the Brazilian way: thousands separated
// by dots, two decimals after a comma.
func FormatBRL(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := fmt.Sprintf("%s,%02d", b.String(), frac)
	if neg {
		out = "-" + out
	}
	return out
}
