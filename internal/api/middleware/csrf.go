package middleware

import (
	"context"
	"crypto/sha256"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	CSRFFieldName  = "csrf_token"
	csrfCookieName = "_csrf"
)

type csrfFailureKey struct{}

type csrfFailure struct {
	err error
}

// CSRF wraps gorilla/csrf for gin. Unsafe requests without a matching token
// are handed to onFailure and aborted.
func CSRF(key string, secure bool, onFailure func(ctx *gin.Context, err error)) gin.HandlerFunc {
	authKey := sha256.Sum256([]byte(key))

	protect := csrf.Protect(
		authKey[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.CookieName(csrfCookieName),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			if failure, ok := r.Context().Value(csrfFailureKey{}).(*csrfFailure); ok {
				failure.err = csrf.FailureReason(r)
			}
		})),
	)

	return func(ctx *gin.Context) {
		failure := &csrfFailure{}
		passed := false

		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			ctx.Request = r
			ctx.Next()
		})

		r := ctx.Request.WithContext(context.WithValue(ctx.Request.Context(), csrfFailureKey{}, failure))
		if r.TLS == nil {
			r = csrf.PlaintextHTTPRequest(r)
		}

		protect(next).ServeHTTP(ctx.Writer, r)

		if !passed {
			ctx.Request = r
			onFailure(ctx, failure.err)
			ctx.Abort()
		}
	}
}
