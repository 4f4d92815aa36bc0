package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/pkg/jwthelper"
)

const adminSessionKey = "adminSession"

const loginPath = "/admin/login"

type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AdminSession is the per-request view of a valid admin session cookie.
type AdminSession struct {
	TokenID   string
	ExpiresAt time.Time
}

type SessionOptions struct {
	SigningKey   string
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
}

type Authenticator struct {
	signingKey  []byte
	cookieName  string
	ttl         time.Duration
	secure      bool
	revocations RevocationList
}

func NewAuthenticator(opts SessionOptions, revocations RevocationList) *Authenticator {
	return &Authenticator{
		signingKey:  []byte(opts.SigningKey),
		cookieName:  opts.CookieName,
		ttl:         opts.TTL,
		secure:      opts.SecureCookie,
		revocations: revocations,
	}
}

// LoadSession turns a valid, unrevoked session cookie into an AdminSession
// stored on the gin context. It never rejects a request.
func (a *Authenticator) LoadSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if session, ok := a.readSession(ctx); ok {
			ctx.Set(adminSessionKey, session)
		}

		ctx.Next()
	}
}

// RequireAdmin redirects to the login page unless LoadSession found a session.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := AdminFromContext(ctx); !ok {
			ctx.Redirect(http.StatusFound, loginPath)
			ctx.Abort()

			return
		}

		ctx.Next()
	}
}

// StartSession issues a fresh session token and sets it as an HTTP-only cookie.
func (a *Authenticator) StartSession(ctx *gin.Context) error {
	token, err := jwthelper.GenerateToken(a.signingKey, ctx.Request.UserAgent(), a.ttl)
	if err != nil {
		return fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(a.cookieName, token, int(a.ttl.Seconds()), "/", "", a.secure, true)

	return nil
}

// EndSession clears the cookie and revokes the current token, if any.
func (a *Authenticator) EndSession(ctx *gin.Context) error {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(a.cookieName, "", -1, "/", "", a.secure, true)

	session, ok := AdminFromContext(ctx)
	if !ok {
		return nil
	}

	if err := a.revocations.Revoke(ctx.Request.Context(), session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("a.revocations.Revoke -> %w", err)
	}

	return nil
}

func (a *Authenticator) readSession(ctx *gin.Context) (AdminSession, bool) {
	cookie, err := ctx.Cookie(a.cookieName)
	if err != nil || cookie == "" {
		return AdminSession{}, false
	}

	claims, err := jwthelper.ParseToken(a.signingKey, cookie)
	if err != nil {
		zap.L().Debug("ignoring invalid session cookie", zap.Error(err))
		return AdminSession{}, false
	}

	if claims.UserAgent != ctx.Request.UserAgent() {
		return AdminSession{}, false
	}

	revoked, err := a.revocations.IsRevoked(ctx.Request.Context(), claims.ID)
	if err != nil {
		zap.L().Warn("could not check session revocation", zap.String("jti", claims.ID), zap.Error(err))
		return AdminSession{}, false
	}
	if revoked {
		return AdminSession{}, false
	}

	return AdminSession{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}

func AdminFromContext(ctx *gin.Context) (AdminSession, bool) {
	value, ok := ctx.Get(adminSessionKey)
	if !ok {
		return AdminSession{}, false
	}

	session, ok := value.(AdminSession)

	return session, ok
}
