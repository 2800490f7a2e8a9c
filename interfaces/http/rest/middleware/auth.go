package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/common"
)

const notAuthenticatedCode = "uu-app/notAuthenticated"

// Authenticate resolves the request's credential into a principal and stores
// it in the request context. The credential is the bearer token when an
// Authorization header is present, otherwise the X-User-ID header; the
// resolver decides what either means.
func Authenticate(resolver auth.PrincipalResolver, awid string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := resolver.Resolve(r.Context(), extractCredential(r))
			if err != nil {
				logger.Debug("Authentication failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				common.RespondError(w, http.StatusUnauthorized, awid, notAuthenticatedCode, "User not found.")
				return
			}

			ctx := auth.SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCredential pulls the raw credential from the request
func extractCredential(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return authHeader
	}

	return r.Header.Get("X-User-ID")
}
