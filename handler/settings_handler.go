package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/utils"
)

type SettingsHandler struct {
	Settings *repository.SettingsRepo
}

func NewSettingsHandler(settings *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// Get returns the settings singleton, creating it with defaults on first
// read. GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Settings.GetOrCreate(c.Request.Context())
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update overwrites the settings singleton in place.
// PUT /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}
	if settings.FeaturedContributorIDs == nil {
		settings.FeaturedContributorIDs = []string{}
	}

	id, err := h.Settings.Update(c.Request.Context(), settings)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
