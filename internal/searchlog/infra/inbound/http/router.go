package http

import "github.com/gin-gonic/gin"

func RegisterSearchLogRoutes(r *gin.Engine, handler *SearchLogHandler) {
	logs := r.Group("/search-logs")
	{
		logs.POST("", handler.AppendSearchLog)
		logs.GET("/recent", handler.RecentSearchLogs)
	}
}
