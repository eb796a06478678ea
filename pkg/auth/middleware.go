package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/pkg/utils"
)

//go:generate mockgen -destination=mock_resolver.go -package=auth github.com/GlebRadaev/festeros/pkg/auth CallerResolver

type ContextKey string

const CallerKey ContextKey = "caller"

type CallerResolver interface {
	ResolveCaller(ctx context.Context, accountID string) (domain.Caller, error)
}

func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, CallerKey, caller)
}

// CallerFromContext returns the zero Caller when the request was not authenticated.
func CallerFromContext(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(CallerKey).(domain.Caller)
	return caller
}

// Middleware validates the bearer token and loads the caller's current role
// from the account store on every request.
func Middleware(tokens JWTServiceInterface, resolver CallerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			caller, err := resolver.ResolveCaller(r.Context(), claims.AccountID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				zap.L().Error("can't resolve caller", zap.String("account_id", claims.AccountID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}
