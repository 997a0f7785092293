package controller

import (
	"fmt"
	"net/http"

	"stockviewer/model"
	"stockviewer/service"

	"github.com/gin-gonic/gin"
)

type CacheController struct {
	quoteService service.QuoteService
}

func NewCacheController(qs service.QuoteService) *CacheController {
	return &CacheController{
		quoteService: qs,
	}
}

// RegisterRoutes sets up the cache maintenance endpoint.
func (ctrl *CacheController) RegisterRoutes(router *gin.RouterGroup) {
	cacheGroup := router.Group("/cache")
	{
		cacheGroup.POST("/clear", ctrl.ClearCache)
	}
}

// ClearCache wipes all cached quote tables.
// @Summary      Clear Quote Cache
// @Description  Removes every cached table regardless of age, forcing fresh fetches. The last-known-good snapshots are kept for degraded display. Leaving a minute before refetching improves the provider success rate.
// @Tags         Cache
// @Produce      json
// @Success      200  {object}  model.Response
// @Router       /cache/clear [post]
func (ctrl *CacheController) ClearCache(c *gin.Context) {
	removed := ctrl.quoteService.ClearCache()

	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: fmt.Sprintf("Cache cleared (%d entries removed). Waiting a minute before refetching improves the success rate.", removed),
	})
}
