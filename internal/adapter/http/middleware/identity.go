// Package middleware resolves the calling actor from request headers.
//
// The customer identity arrives in X-User-ID, set by the upstream auth
// proxy. The back-office identity is X-Admin-Token matched against the
// configured ADMIN_API_TOKEN.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"ipfiling/internal/domain/entities"
	"ipfiling/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID     = "X-User-ID"
	HeaderAdminToken = "X-Admin-Token"

	actorKey = "ipfiling.actor"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	errAdminRequired   = pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Admin credentials required", http.StatusForbidden)
)

// Identity stores the request's entities.Actor in the gin context. An
// empty adminToken disables the privileged path.
func Identity(adminToken string) gin.HandlerFunc {
	want := []byte(strings.TrimSpace(adminToken))
	return func(c *gin.Context) {
		actor := entities.Actor{UserID: strings.TrimSpace(c.GetHeader(HeaderUserID))}
		if got := strings.TrimSpace(c.GetHeader(HeaderAdminToken)); got != "" && len(want) > 0 {
			actor.Privileged = subtle.ConstantTimeCompare([]byte(got), want) == 1
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor set by Identity, or the anonymous actor.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}

// RequireUser rejects anonymous callers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFrom(c).IsAnonymous() {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without a valid admin token.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).Privileged {
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}
