package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
)

const bearerPrefix = "Bearer "

// Roles allowed into the back office. Token verification itself happens
// upstream; the gateway rejects forged tokens on the first proxied call.
var staffRoles = []string{"ADMIN", "STAFF", "RECEPTIONIST"}

// Auth attaches the operator's session to the request context so
// upstream calls can forward the bearer token.
type Auth interface {
	Session(next http.Handler) http.Handler
	RequireStaff(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
}

func NewAuthMiddleware(otel otel.Otel) Auth {
	return &authImpl{
		otel: otel,
	}
}

func (a *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)

			return
		}

		session := auth.NewSession(strings.TrimPrefix(header, bearerPrefix))

		ctx := auth.WithSession(r.Context(), session)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, session.Subject())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *authImpl) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.SessionFromContext(r.Context())
		if !ok {
			response.WithError(w, failure.Unauthorized("missing or malformed bearer token"))

			return
		}

		if session.Expired() {
			response.WithError(w, failure.Unauthorized("session expired"))

			return
		}

		if !slices.Contains(staffRoles, session.Role()) {
			log.Warn().Str("role", session.Role()).Msg("rejected request from non-staff role")

			response.WithError(w, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}
