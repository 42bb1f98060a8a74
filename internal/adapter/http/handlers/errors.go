package handlers

import (
	"errors"
	"net/http"

	"kaenpro_motors/internal/usecase"
	"kaenpro_motors/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates usecase sentinel errors into their HTTP shape.
// Anything unrecognized is an internal error; the original cause travels on
// the AppError for logging, never to the client.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidVehiclePlate),
		errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, usecase.ErrInvalidPartName),
		errors.Is(err, usecase.ErrInvalidServiceOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidEscalationLevel),
		errors.Is(err, usecase.ErrInvalidActingUser):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToBill):
		return pkg.NewDomainErrorSimple("NOTHING_TO_BILL", "Add at least one item or a labor value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeletionNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Destructive action requires explicit confirmation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Only the owner can perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderFinalize):
		return pkg.NewDomainError("SERVICE_ORDER_FINALIZE_FAILED", "Could not finalize the service order", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "No payment gateway configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_FAILED", "Payment confirmation failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
