package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/utils"
)

type UploadsHandler struct {
	Uploads *repository.UploadsRepo
}

func NewUploadsHandler(uploads *repository.UploadsRepo) *UploadsHandler {
	return &UploadsHandler{Uploads: uploads}
}

// Submit puts a public submission into the pending review queue.
// POST /api/uploads
func (h *UploadsHandler) Submit(c *gin.Context) {
	var upload model.Upload
	if err := c.ShouldBindJSON(&upload); err != nil {
		utils.TrackError("validation")
		utils.BadRequest(c, err.Error())
		return
	}

	// Review fields are admin-only; the public cannot pre-set them.
	upload.Status = model.UploadStatusPending
	upload.ReviewerNote = nil
	upload.AssignedPoints = nil
	if upload.Chapters == nil {
		upload.Chapters = []string{}
	}

	created, err := h.Uploads.Create(c.Request.Context(), upload)
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to save upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"id":      created.ID,
		"message": "Thanks — Notes received! Your Knowledge Points will be reviewed.",
	})
}
