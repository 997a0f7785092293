package middleware

import (
	"time"

	"stockviewer/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the viewer frontend configured in config.yaml.
func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.GetConfig().FrontendUrls,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
