package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notebuddy/store"
	"notebuddy/utils"
)

// StatusHandler serves the liveness message and the store connectivity
// diagnostic.
type StatusHandler struct {
	Store        store.Store
	DatabaseName string
}

func NewStatusHandler(st store.Store, databaseName string) *StatusHandler {
	return &StatusHandler{Store: st, DatabaseName: databaseName}
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "NoteBuddy API running"})
}

func (h *StatusHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     h.DatabaseName,
		"connection_status": "not connected",
		"collections":       []string{},
		"runtime":           utils.GetRuntimeSnapshot(),
	}

	if h.Store == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		utils.TrackError("db")
		response["database"] = "error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, response)
		return
	}
	response["database"] = "available"

	names, err := h.Store.Collections(ctx)
	if err != nil {
		utils.TrackError("db")
		response["database"] = "connected but error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"
	response["collections"] = names
	c.JSON(http.StatusOK, response)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
