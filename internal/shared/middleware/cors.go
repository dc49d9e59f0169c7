package middleware

import (
	"log/slog"
	"time"

	"github.com/uiseong-market/form-server/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy for the form pages.
// A single "*" origin allows every origin; credentials are then turned off
// because browsers reject credentialed responses with a wildcard origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
		if corsConfig.AllowCredentials {
			slog.Warn("CORS 전체 허용 origin에서는 credentials를 사용할 수 없어 비활성화합니다")
			corsConfig.AllowCredentials = false
		}
	}

	return cors.New(corsConfig)
}
