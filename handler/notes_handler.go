package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/repository"
	"notebuddy/store"
	"notebuddy/utils"
)

type NotesHandler struct {
	Notes *repository.NotesRepo
}

func NewNotesHandler(notes *repository.NotesRepo) *NotesHandler {
	return &NotesHandler{Notes: notes}
}

// ListNotes filters, sorts and paginates the public catalog.
// GET /api/notes?q=&subject=&class=&college=&sort=&skip=&limit=
func (h *NotesHandler) ListNotes(c *gin.Context) {
	skip, ok := queryInt64(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt64(c, "limit", 24)
	if !ok {
		return
	}

	items, err := h.Notes.List(c.Request.Context(), repository.ListNotesOptions{
		Query:      c.Query("q"),
		Subject:    c.Query("subject"),
		ClassLevel: c.Query("class"),
		College:    c.Query("college"),
		SortKey:    c.DefaultQuery("sort", "new"),
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		utils.TrackError("db")
		utils.InternalError(c, "Failed to list notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// GetNote fetches one catalog entry by id.
// GET /api/notes/:id
func (h *NotesHandler) GetNote(c *gin.Context) {
	id := c.Param("id")
	if !store.IsValidID(id) {
		utils.TrackError("validation")
		utils.BadRequest(c, "Invalid note id")
		return
	}

	note, err := h.Notes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.TrackError("db")
		utils.InternalError(c, "Failed to fetch note")
		return
	}

	c.JSON(http.StatusOK, note)
}
