package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/repository"
	"notebuddy/store"
	"notebuddy/usecase"
	"notebuddy/utils"
)

type AcceptRequest struct {
	AssignedPoints *int    `json:"assigned_points" binding:"required,gte=0"`
	ReviewerNote   *string `json:"reviewer_note"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReviewHandler serves the admin review queue.
type ReviewHandler struct {
	Uploads *repository.UploadsRepo
	Review  *usecase.ReviewService
}

func NewReviewHandler(uploads *repository.UploadsRepo, review *usecase.ReviewService) *ReviewHandler {
	return &ReviewHandler{Uploads: uploads, Review: review}
}

// ListUploads returns the review queue newest-first.
// GET /api/admin/uploads?status=&skip=&limit=
func (h *ReviewHandler) ListUploads(c *gin.Context) {
	skip, ok := queryInt64(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt64(c, "limit", 50)
	if !ok {
		return
	}

	items, err := h.Uploads.List(c.Request.Context(), c.Query("status"), skip, limit)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to list uploads")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Accept promotes a pending upload into the catalog.
// POST /api/admin/uploads/:id/accept
func (h *ReviewHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	if !store.IsValidID(id) {
		utils.TrackError("validation")
		utils.BadRequest(c, "Invalid upload id")
		return
	}

	var req AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}

	noteID, err := h.Review.Accept(c.Request.Context(), id, *req.AssignedPoints, req.ReviewerNote)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUploadNotFound):
			utils.NotFound(c, "Upload not found")
		case errors.Is(err, usecase.ErrAlreadyReviewed):
			utils.Conflict(c, "Upload already reviewed")
		default:
			utils.TrackError("db")
			utils.InternalError(c, "Failed to accept upload")
		}
		return
	}

	utils.TrackReviewDecision("accepted")
	c.JSON(http.StatusOK, gin.H{"ok": true, "note_id": noteID})
}

// Reject marks a pending upload rejected.
// POST /api/admin/uploads/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if !store.IsValidID(id) {
		utils.TrackError("validation")
		utils.BadRequest(c, "Invalid upload id")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.Review.Reject(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUploadNotFound):
			utils.NotFound(c, "Upload not found")
		case errors.Is(err, usecase.ErrAlreadyReviewed):
			utils.Conflict(c, "Upload already reviewed")
		default:
			utils.TrackError("db")
			utils.InternalError(c, "Failed to reject upload")
		}
		return
	}

	utils.TrackReviewDecision("rejected")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
