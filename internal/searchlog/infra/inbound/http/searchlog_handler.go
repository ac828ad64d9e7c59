package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/bizreg/internal/searchlog/application"
	"github.com/davicafu/bizreg/internal/searchlog/domain"
	"github.com/davicafu/bizreg/pkg/utils"
)

// SearchLogHandler encapsula los endpoints HTTP del log de búsquedas
type SearchLogHandler struct {
	service *application.SearchLogService
}

func NewSearchLogHandler(service *application.SearchLogService) *SearchLogHandler {
	return &SearchLogHandler{service: service}
}

// ---------------- Handlers ----------------

// AppendSearchLog endpoint POST /search-logs
func (h *SearchLogHandler) AppendSearchLog(c *gin.Context) {
	var req struct {
		SearchQuery string `json:"searchQuery" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, "searchQuery is required")
		return
	}

	timestamp, err := h.service.Append(c.Request.Context(), req.SearchQuery)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			utils.SendBadRequest(c, "searchQuery is required")
			return
		}
		utils.SendInternalServerError(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Search logged successfully",
		"timestamp": timestamp,
	})
}

// RecentSearchLogs endpoint GET /search-logs/recent
func (h *SearchLogHandler) RecentSearchLogs(c *gin.Context) {
	logs, err := h.service.Recent(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
