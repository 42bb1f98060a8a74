package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/domain/entities"
	"kaenpro_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles HTTP requests for the vehicle fleet.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) Register(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Register(c.Request.Context(), p.Username, payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

// List returns the whole fleet, or one client's vehicles when the client_id
// query parameter is present.
func (h *VehicleHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var (
		vehicles []entities.Vehicle
		err      error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		vehicles, err = h.usecase.ListByClientID(c.Request.Context(), p.Username, clientID)
	} else {
		vehicles, err = h.usecase.List(c.Request.Context(), p.Username)
	}
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	vehicle, err := h.usecase.GetByID(c.Request.Context(), p.Username, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	vehicle, err := h.usecase.Update(c.Request.Context(), p.Username, entity)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
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
