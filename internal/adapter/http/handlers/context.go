package handlers

import (
	"net/http"

	"kaenpro_motors/internal/auth"
	"kaenpro_motors/pkg"

	"github.com/gin-gonic/gin"
)

var errNoPrincipal = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated principal", http.StatusUnauthorized)

// mustPrincipal fetches the authenticated principal or aborts with 401.
// Routes behind the auth middleware always carry one; this guards against
// wiring mistakes, not against users.
func mustPrincipal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(errNoPrincipal.HTTPStatus, errNoPrincipal.ToHTTPError())
		return auth.Principal{}, false
	}
	return p, true
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
