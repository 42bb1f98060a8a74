package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles the collections surface: the overdue worklist, the
// arrears dashboard, escalation messages and payment settlement.

type BillingHandler struct {
	billing usecase.IBillingUseCase
	orders  usecase.IServiceOrderUseCase
	clients usecase.IClientUseCase
}

func NewBillingHandler(billing usecase.IBillingUseCase, orders usecase.IServiceOrderUseCase, clients usecase.IClientUseCase) *BillingHandler {
	return &BillingHandler{billing: billing, orders: orders, clients: clients}
}

// ListOverdue godoc
// @Summary      List unpaid service orders
// @Description  Recomputes overdue flags (pending orders older than the grace period become "atrasado") and returns every order still awaiting payment.
// @Tags         billing
// @Produce      json
// @Success      200  {array}   response.ServiceOrderResponse
// @Failure      500  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /v1/billing/overdue [get]
func (h *BillingHandler) ListOverdue(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	orders, err := h.billing.RefreshOverdue(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	unpaid := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if o.PaymentStatus != entities.PaymentStatusPago {
			unpaid = append(unpaid, o)
		}
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(unpaid))
}

func (h *BillingHandler) Summary(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	summary, err := h.billing.Summary(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArrearsSummary(summary))
}

// Message godoc
// @Summary      Generate a collection message
// @Description  Builds the escalation text for an order at the requested level and, when the client has a phone on file, the WhatsApp deep link carrying it.
// @Tags         billing
// @Produce      json
// @Param        id     path      string  true   "Service order ID"
// @Param        level  query     string  false  "Escalation level: mild, formal or final"  default(mild)
// @Success      200    {object}  response.CollectionMessageResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /v1/billing/orders/{id}/message [get]
func (h *BillingHandler) Message(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	level := usecase.EscalationLevel(c.DefaultQuery("level", string(usecase.LevelMild)))

	order, err := h.orders.GetByID(c.Request.Context(), p.Username, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	message, err := h.billing.Message(order, level)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.CollectionMessageResponse{
		Level:   string(level),
		Message: message,
	}

	// The phone lives on the client record, not the order snapshot. A client
	// deleted since the order was written just means no link.
	client, err := h.clients.GetByID(c.Request.Context(), p.Username, order.ClientID)
	if err == nil && client.Phone != "" {
		resp.WhatsAppLink = usecase.WhatsAppLink(client.Phone, message)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BillingHandler) RecordContact(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.RecordContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.billing.RecordContact(c.Request.Context(), p.Username, c.Param("id"), usecase.EscalationLevel(payload.Level), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// MarkPaid godoc
// @Summary      Mark a service order as paid
// @Description  Settles an order. When the body carries a provider payload, the payment is first confirmed through the configured gateway. Already-paid orders are returned unchanged.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true   "Service order ID"
// @Param        payment  body      request.MarkPaidRequest  false  "Optional payment-provider payload"
// @Success      200      {object}  response.ServiceOrderResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /v1/billing/orders/{id}/pay [post]
func (h *BillingHandler) MarkPaid(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	// Body is optional: a bare POST settles without touching the gateway.
	var payload request.MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	order, err := h.billing.MarkPaid(c.Request.Context(), p.Username, c.Param("id"), payload.ProviderPayload)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
