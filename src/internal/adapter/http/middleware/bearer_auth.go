package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type contextKey string

const (
	userContextKey  contextKey = "auth.user"
	tokenContextKey contextKey = "auth.token"
)

// BearerAuth guards a handler with an access token taken from the
// Authorization header. The resolved user and token are stored on the
// request context.
func BearerAuth(authenticator service_interfaces.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer, ok := bearerToken(r)
			if !ok {
				logger.Info("bearer auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "missing",
				})
				writeUnauthorized(w)
				return
			}

			user, token, err := authenticator.Authenticate(r.Context(), bearer)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.Error("bearer auth middleware lookup failed", err, logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
					})
					writeEnvelope(w, http.StatusInternalServerError, commons.MessageInternalServerError)
					return
				}
				logger.Info("bearer auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_expired",
				})
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			ctx = context.WithValue(ctx, tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(domain.User)
	return user, ok
}

func TokenFromContext(ctx context.Context) (domain.AccessToken, bool) {
	token, ok := ctx.Value(tokenContextKey).(domain.AccessToken)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeEnvelope(w, http.StatusUnauthorized, commons.MessageUnauthorized)
}

func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(commons.MessageResponse(message).WithCode(status))
}
