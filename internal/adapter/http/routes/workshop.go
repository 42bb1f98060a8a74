package routes

import (
	"kaenpro_motors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients       = "/clients"
	PathVehicles      = "/vehicles"
	PathParts         = "/parts"
	PathServiceOrders = "/service-orders"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	partHandler *handlers.PartHandler,
	orderHandler *handlers.ServiceOrderHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Register)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
		// Deleting a client cascades to its vehicles and service orders.
		clients.DELETE("/:id", clientHandler.Delete)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Register)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.Register)
		parts.GET("", partHandler.List)
		parts.GET("/summary", partHandler.Summary)
		parts.GET("/:id", partHandler.GetByID)
		parts.PUT("/:id", partHandler.Update)
		parts.DELETE("/:id", partHandler.Delete)
	}

	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.Finalize)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.DELETE("/:id", orderHandler.Delete)
	}
}
