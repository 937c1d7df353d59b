package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/store"
	"notebuddy/utils"
)

type AdjustPointsRequest struct {
	ContributorID string  `json:"contributor_id" binding:"required"`
	Delta         *int    `json:"delta" binding:"required"`
	Note          *string `json:"note"`
}

type ContributorsHandler struct {
	Contributors *repository.ContributorsRepo
}

func NewContributorsHandler(contributors *repository.ContributorsRepo) *ContributorsHandler {
	return &ContributorsHandler{Contributors: contributors}
}

// Leaderboard returns the public points ranking.
// GET /api/leaderboard?limit=
func (h *ContributorsHandler) Leaderboard(c *gin.Context) {
	limit, ok := queryInt64(c, "limit", 20)
	if !ok {
		return
	}

	items, err := h.Contributors.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to load leaderboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// List returns all contributors for the admin view, points-descending.
// GET /api/admin/contributors?skip=&limit=
func (h *ContributorsHandler) List(c *gin.Context) {
	skip, ok := queryInt64(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt64(c, "limit", 50)
	if !ok {
		return
	}

	items, err := h.Contributors.List(c.Request.Context(), skip, limit)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to list contributors")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Upsert creates a contributor or updates an existing one matched by name.
// POST /api/admin/contributors
func (h *ContributorsHandler) Upsert(c *gin.Context) {
	var contributor model.Contributor
	if err := c.ShouldBindJSON(&contributor); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}
	if contributor.Badges == nil {
		contributor.Badges = []string{}
	}

	id, err := h.Contributors.Upsert(c.Request.Context(), contributor)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to save contributor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// AdjustPoints adds a signed delta to a contributor's points and returns the
// new total. POST /api/admin/contributors/adjust-points
func (h *ContributorsHandler) AdjustPoints(c *gin.Context) {
	var req AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}
	if !store.IsValidID(req.ContributorID) {
		utils.TrackError("validation")
		utils.BadRequest(c, "Invalid contributor id")
		return
	}

	points, err := h.Contributors.AdjustPoints(c.Request.Context(), req.ContributorID, *req.Delta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Contributor not found")
			return
		}
		utils.TrackError("db")
		utils.InternalError(c, "Failed to adjust points")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "points": points})
}
