package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/handler/http/response"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests whose token is missing, malformed, revoked,
// or not an access token. It runs after jwtauth.Verifier has parsed the token
// into the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrUnauthorized)
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "token has been revoked")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrUnauthorized)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, user.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
