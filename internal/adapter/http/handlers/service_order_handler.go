package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for service orders.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// Finalize godoc
// @Summary      Create a finalized service order
// @Description  Creates a service order directly in its final state, snapshots client and vehicle data, updates the vehicle odometer and decrements stock for matched parts, all atomically.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.FinalizeOrderRequest  true  "Service order payload"
// @Success      201    {object}  response.ServiceOrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /v1/service-orders [post]
func (h *ServiceOrderHandler) Finalize(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Finalize(c.Request.Context(), p.Username, payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), p.Username, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Delete godoc
// @Summary      Delete a service order
// @Description  Removes a service order. Only the workshop owner may delete records.
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "Service order ID"
// @Success      204  "No Content"
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     BasicAuth
// @Router       /v1/service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	err := h.usecase.Delete(c.Request.Context(), p.Username, c.Param("id"), p.Role)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
