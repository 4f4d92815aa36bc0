package response

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

const (
	flashCookieName = "flash"
	pendingFlashKey = "pendingFlashes"
	renderFlashKey  = "renderFlashes"
	secureCookieKey = "secureCookies"
)

// SecureCookies marks the flash cookie Secure for every request it wraps,
// so it follows the same setting as the session and CSRF cookies.
func SecureCookies(secure bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(secureCookieKey, secure)
		ctx.Next()
	}
}

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SetFlash queues a message for the next rendered page, usually after a redirect.
func SetFlash(ctx *gin.Context, kind, message string) {
	pending := append(queuedFlashes(ctx, pendingFlashKey), Flash{Kind: kind, Message: message})
	ctx.Set(pendingFlashKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	writeFlashCookie(ctx, base64.RawURLEncoding.EncodeToString(raw), 0)
}

// AddFlash attaches a message to the page rendered by the current request.
func AddFlash(ctx *gin.Context, kind, message string) {
	ctx.Set(renderFlashKey, append(queuedFlashes(ctx, renderFlashKey), Flash{Kind: kind, Message: message}))
}

// PopFlashes returns the messages carried in by the flash cookie followed by
// those added during this request, and clears the cookie.
func PopFlashes(ctx *gin.Context) []Flash {
	var flashes []Flash

	if cookie, err := ctx.Cookie(flashCookieName); err == nil && cookie != "" {
		flashes = append(flashes, decodeFlashes(cookie)...)
		writeFlashCookie(ctx, "", -1)
	}

	return append(flashes, queuedFlashes(ctx, renderFlashKey)...)
}

func queuedFlashes(ctx *gin.Context, key string) []Flash {
	value, ok := ctx.Get(key)
	if !ok {
		return nil
	}
	flashes, _ := value.([]Flash)

	return flashes
}

func decodeFlashes(cookie string) []Flash {
	raw, err := base64.RawURLEncoding.DecodeString(cookie)
	if err != nil {
		return nil
	}

	var decoded []Flash
	if err = json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}

	flashes := make([]Flash, 0, len(decoded))
	for _, f := range decoded {
		switch f.Kind {
		case FlashSuccess, FlashDanger, FlashInfo:
			flashes = append(flashes, f)
		}
	}

	return flashes
}

func writeFlashCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(flashCookieName, value, maxAge, "/", "", ctx.GetBool(secureCookieKey), true)
}
