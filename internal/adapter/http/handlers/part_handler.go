package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for the parts inventory.

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

func (h *PartHandler) Register(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	part, err := h.usecase.Register(c.Request.Context(), p.Username, payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPart(part))
}

func (h *PartHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	parts, err := h.usecase.List(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParts(parts))
}

// Summary returns the dashboard stock overview: critical part count and the
// sale value of everything in stock.
func (h *PartHandler) Summary(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), p.Username)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventorySummary(summary))
}

func (h *PartHandler) GetByID(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	part, err := h.usecase.GetByID(c.Request.Context(), p.Username, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *PartHandler) Update(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	part, err := h.usecase.Update(c.Request.Context(), p.Username, entity)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *PartHandler) Delete(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	err := h.usecase.Delete(c.Request.Context(), p.Username, c.Param("id"), confirmed(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
