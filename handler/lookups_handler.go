package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/utils"
)

// LookupsHandler serves the Subject and College reference lists.
type LookupsHandler struct {
	Lookups *repository.LookupsRepo
}

func NewLookupsHandler(lookups *repository.LookupsRepo) *LookupsHandler {
	return &LookupsHandler{Lookups: lookups}
}

// GET /api/subjects
func (h *LookupsHandler) ListSubjects(c *gin.Context) {
	items, err := h.Lookups.ListSubjects(c.Request.Context())
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to list subjects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /api/admin/subjects
func (h *LookupsHandler) CreateSubject(c *gin.Context) {
	var subject model.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}

	id, err := h.Lookups.CreateSubject(c.Request.Context(), subject)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to save subject")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GET /api/colleges
func (h *LookupsHandler) ListColleges(c *gin.Context) {
	items, err := h.Lookups.ListColleges(c.Request.Context())
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to list colleges")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /api/admin/colleges
func (h *LookupsHandler) CreateCollege(c *gin.Context) {
	var college model.College
	if err := c.ShouldBindJSON(&college); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}

	id, err := h.Lookups.CreateCollege(c.Request.Context(), college)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to save college")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
