package middleware

import (
	"context"
	"net/http"

	"github.com/davidcastanon/shopmart-backend/api/responses"
	"github.com/davidcastanon/shopmart-backend/api/validators"
	pkgauth "github.com/davidcastanon/shopmart-backend/pkg/auth"
	"github.com/davidcastanon/shopmart-backend/pkg/auth/session"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/davidcastanon/shopmart-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// resolved user. A nil checker skips the revocation lookup, leaving the JWT
// expiry as the only session bound.
func Auth(cfg config.JWTConfig, checker session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := validators.BearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if checker != nil {
				ok, err := checker.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired"))
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxEmail, claims.Email)

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
