package handlers

import (
	"net/http"

	"kaenpro_motors/internal/adapter/http/dto/request"
	"kaenpro_motors/internal/adapter/http/dto/response"
	"kaenpro_motors/internal/auth"
	"kaenpro_motors/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the credential check used by front ends before they
// switch to Basic auth on the protected routes.

type AuthHandler struct {
	verifier auth.CredentialVerifier
}

func NewAuthHandler(verifier auth.CredentialVerifier) *AuthHandler {
	return &AuthHandler{verifier: verifier}
}

// Login godoc
// @Summary      Validate credentials
// @Description  Checks a username/password pair and returns the resulting identity and role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.LoginResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      401          {object}  pkg.HTTPError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	principal, err := h.verifier.Verify(payload.Username, payload.Password)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Username: principal.Username,
		Role:     string(principal.Role),
	})
}
