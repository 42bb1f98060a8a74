package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for the customer roster.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// Register godoc
// @Summary  Register a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Success  201 {object} response.ClientResponse
// @Router   /clients [post]
func (h *ClientHandler) Register(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Register(c.Request.Context(), p.Username, payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	clients, err := h.usecase.List(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	client, err := h.usecase.GetByID(c.Request.Context(), p.Username, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) Update(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	client, err := h.usecase.Update(c.Request.Context(), p.Username, entity)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// Delete cascades over the client's vehicles and service orders. Owner only,
// and the caller must pass confirm=true: the cascade is irreversible.
//
// Delete godoc
// @Summary  Delete a client and everything referencing it
// @Tags     clients
// @Param    id      path  string true  "client id"
// @Param    confirm query string true  "must be 'true'"
// @Success  204
// @Router   /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	err := h.usecase.Delete(c.Request.Context(), p.Username, c.Param("id"), p.Role, confirmed(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
