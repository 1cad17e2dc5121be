package middleware

import (
	"net/http"
	"strings"

	"peritaje_crm/internal/auth"
	"peritaje_crm/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// IdentityKey is the gin context key holding the verified auth.Identity.
	IdentityKey = "identity"
	// CallerIDKey is the gin context key holding the acting user id.
	CallerIDKey = "caller_id"

	adminCookieName = "admin-token"
	crmCookieName   = "crm-token"
	userIDHeader    = "x-user-id"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// RequireAuth verifies the request credential and stores the resolved
// identity in the gin context. It accepts a bearer Authorization header or
// one of the portal cookies (admin-token, crm-token), in that order.
//
// The x-user-id header lets the admin portal act on behalf of a CRM user;
// it is honored only for admin identities.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		id, err := auth.VerifyToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		callerID := id.Subject
		if id.Subject == auth.AdminSubject {
			if v := strings.TrimSpace(c.GetHeader(userIDHeader)); v != "" {
				callerID = v
			}
		}

		c.Set(IdentityKey, id)
		c.Set(CallerIDKey, callerID)
		c.Next()
	}
}

// RequirePermission resolves the permission the request path needs and
// checks it against the authenticated role. Paths with no rule pass.
func RequirePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		perm, ok := auth.RequiredPermission(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}

		id := MustIdentity(c)
		if !auth.Can(id.Role, perm) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// MustIdentity returns the identity stored by RequireAuth. Calling it on a
// route outside the authenticated group is a programming error.
func MustIdentity(c *gin.Context) auth.Identity {
	v, _ := c.Get(IdentityKey)
	id, _ := v.(auth.Identity)
	return id
}

// CallerID returns the acting user id stored by RequireAuth.
func CallerID(c *gin.Context) string {
	return c.GetString(CallerIDKey)
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if v, err := c.Cookie(adminCookieName); err == nil && v != "" {
		return v
	}
	if v, err := c.Cookie(crmCookieName); err == nil && v != "" {
		return v
	}
	return ""
}
