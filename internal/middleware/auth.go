package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"qr-dine/internal/auth"
)

type contextKey string

const authContextKey contextKey = "authContext"

// AuthContext is the admin identity derived from the bearer token.
type AuthContext struct {
	RestaurantID int64
	Username     string
}

func WithAuthContext(ctx context.Context, ac *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, ac)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	ac, ok := ctx.Value(authContextKey).(*AuthContext)
	return ac, ok
}

// AdminAuth guards the back-office routes: it verifies the bearer token
// and puts the restaurant scope on the request context.
func AdminAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			claims, err := auth.Verify(token, jwtSecret)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			if claims.RestaurantID <= 0 {
				writeAuthError(w, http.StatusForbidden, "Restaurant access required")
				return
			}

			ac := &AuthContext{RestaurantID: claims.RestaurantID, Username: claims.Username}
			next.ServeHTTP(w, r.WithContext(WithAuthContext(r.Context(), ac)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": message})
}
