package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/integrations/identity"
)

// IdentityClient resolves bearer tokens into division members.
type IdentityClient interface {
	GetUser(ctx context.Context, userToken string) (*identity.User, error)
	IsStaffWithGracefulDegradation(ctx context.Context, userID string) bool
}

// Logger is the logging surface middleware needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth resolves the Authorization bearer token through the identity provider
// and threads the actor into the request context. A failed staff lookup
// degrades to a non-staff actor rather than failing the request.
type Auth struct {
	identityClient IdentityClient
	logger         Logger
}

// NewAuth builds the auth middleware.
func NewAuth(identityClient IdentityClient, logger Logger) *Auth {
	return &Auth{
		identityClient: identityClient,
		logger:         logger,
	}
}

// Require rejects requests without a valid bearer token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			handlers.RespondUnauthorized(w, "missing bearer token")
			return
		}

		user, err := a.identityClient.GetUser(r.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthorized) {
				a.logger.Warn("Auth: rejected token on %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid bearer token")
				return
			}
			a.logger.Error("Auth: identity provider failed on %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondBadGateway(w, "identity provider unavailable")
			return
		}

		actor := &Actor{
			ID:      user.ID,
			Name:    fmt.Sprintf("%s %s", user.FirstName, user.LastName),
			IsStaff: a.identityClient.IsStaffWithGracefulDegradation(r.Context(), user.ID),
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireStaff rejects authenticated requests from non-staff members. Must
// run after Require.
func (a *Auth) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, "missing bearer token")
			return
		}
		if !actor.IsStaff {
			a.logger.Warn("Auth: non-staff actor=%s denied on %s %s", actor.ID, r.Method, r.URL.Path)
			handlers.RespondForbidden(w, "staff access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
