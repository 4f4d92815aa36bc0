package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, domain := range allowedDomains {
		if domain == "*" {
			conf.AllowAllOrigins = true
			conf.AllowCredentials = false

			return cors.New(conf)
		}
	}

	if len(allowedDomains) == 0 {
		// cors.New panics without any allowed origin; only same-origin requests are served.
		return func(ctx *gin.Context) { ctx.Next() }
	}
	conf.AllowOrigins = allowedDomains

	return cors.New(conf)
}
