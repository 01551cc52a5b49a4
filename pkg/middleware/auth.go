package middleware

import (
	"net/http"
	"strings"

	"github.com/Zonda001/AirportAPI/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the Bearer access token and puts the authenticated
// user into the request context. Refresh tokens are rejected here; they
// are only accepted by the token refresh endpoint.
func AuthJWT(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(secret, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if claims.TokenType != utils.TokenTypeAccess {
				logger.Warn("Non-access token used on protected endpoint",
					zap.String("token_type", claims.TokenType))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
