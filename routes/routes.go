package routes

import (
	"time"

	localCache "stockviewer/cache"
	"stockviewer/client"
	"stockviewer/config"
	"stockviewer/controller"
	"stockviewer/middleware"
	"stockviewer/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.App))
	r.Use(middleware.RecoveryMiddleware)

	// --- 1. Clients ---
	avClient := client.NewAlphaVantageClient(client.DefaultBaseURL)

	// --- 2. Stores ---
	ttl := time.Duration(cfg.App.GetConfig().CacheTTLMinutes) * time.Minute
	quotes := localCache.NewQuoteStore(ttl)
	lastGood := localCache.NewLastGoodStore()

	// --- 3. Services (Dependency Injection) ---
	quoteSvc := service.NewQuoteService(avClient, quotes, lastGood, cfg.App, cfg.Env.AlphaVantageAPIKey)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(cfg.App))
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Quote Endpoints
		controller.NewQuoteController(quoteSvc).RegisterRoutes(api)

		// Cache Maintenance
		controller.NewCacheController(quoteSvc).RegisterRoutes(api)
	}

	return r
}
