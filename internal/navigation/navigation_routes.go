package navigation

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw ...gin.HandlerFunc) {
	group := r.Group("/navigation")
	group.Use(mw...)
	{
		group.GET("/dashboards", handler.List)
		group.GET("/:dashboard", handler.Get)
	}
}
