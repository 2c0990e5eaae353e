package middleware

import (
	"context"
	"net/http"
	"strings"
)

type CtxKey int

const (
	CtxToken CtxKey = iota
)

// Auth moves the game token of the request, taken from a bearer
// Authorization header or the token query parameter, into the request
// context. Verification is left to the handlers since only they know which
// session is addressed.
func Auth() Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				token = r.URL.Query().Get("token")
			}
			token = strings.TrimSpace(token)
			if token == "" {
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxToken, token)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Token returns the token stored by [Auth], if any.
func Token(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(CtxToken).(string)
	return token, ok
}
