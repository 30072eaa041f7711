package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

type userKey struct{}

// Auth extracts the caller from a Bearer token and binds it to the request
// context. Requests without a valid token pass through unauthenticated;
// handlers that need a caller check the context themselves. The notify
// endpoint has no token at all, its authentication is the callback hash.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := parseUser(token, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser binds user to ctx the way Auth does.
func WithUser(ctx context.Context, user entities.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated caller, if any.
func UserFromContext(ctx context.Context) (entities.User, bool) {
	user, ok := ctx.Value(userKey{}).(entities.User)
	return user, ok
}

func parseUser(tokenString, secret string) (entities.User, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.User{}, err
	}

	return entities.User{
		UserID:    claimString(claims, "sub"),
		FirstName: claimString(claims, "firstName"),
		LastName:  claimString(claims, "lastName"),
		Email:     claimString(claims, "email"),
		Phone:     claimString(claims, "phone"),
		Role:      claimString(claims, "role"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
