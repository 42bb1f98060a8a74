package auth

import (
	"net/http"

	"kaenpro_motors/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth_principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Middleware authenticates every request with HTTP Basic auth through the
// verifier and stores the resulting principal on the gin context.
func Middleware(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="kaenpro"`)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		principal, err := verifier.Verify(username, password)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// SetPrincipal attaches a principal to the gin context the same way the
// middleware does. Used by handler tests to simulate an authenticated
// request.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFromContext returns the authenticated principal set by Middleware.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
