package middleware

import (
	"net/http"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/pkg"

	"github.com/gin-gonic/gin"
)

// The upstream gateway authenticates callers and asserts their identity via
// these headers. The workflow-service trusts the assertion; this middleware
// only parses it and enforces the per-route role table.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "workflow_actor"
)

var (
	errMissingActor = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing actor identity", http.StatusUnauthorized)
	errUnknownRole  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Unknown actor role", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Actor role is not allowed to perform this action", http.StatusForbidden)
)

// Actor extracts the authenticated caller from the identity headers and
// aborts unauthenticated requests.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderActorID)
		role := entities.ActorRole(c.GetHeader(HeaderActorRole))
		if id == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		if !role.Valid() {
			c.AbortWithStatusJSON(errUnknownRole.HTTPStatus, errUnknownRole.ToHTTPError())
			return
		}
		c.Set(actorContextKey, entities.Actor{ID: id, Role: role})
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Admin always passes;
// record-level ownership stays with the use cases, which know who owns
// what.
func RequireRole(roles ...entities.ActorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if !actor.Is(roles...) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor placed on the context by Actor(). Zero value
// when the middleware did not run.
func ActorFrom(c *gin.Context) entities.Actor {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}
	}
	actor, _ := v.(entities.Actor)
	return actor
}
