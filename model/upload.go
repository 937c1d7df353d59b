package model

// Upload review states. Transitions are one-directional: pending may move to
// accepted or rejected, nothing moves out of accepted or rejected.
const (
	UploadStatusPending  = "pending"
	UploadStatusAccepted = "accepted"
	UploadStatusRejected = "rejected"
)

// Upload is a public submission waiting in the review queue.
type Upload struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title" binding:"required"`
	ClassLevel      string   `json:"class_level" binding:"required"`
	College         string   `json:"college" binding:"required"`
	Subject         string   `json:"subject" binding:"required"`
	Chapters        []string `json:"chapters"`
	Pages           *int     `json:"pages,omitempty" binding:"omitempty,gte=1"`
	DriveLink       string   `json:"drive_link" binding:"required,url"`
	ContributorName string   `json:"contributor_name,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	ThumbnailURL    *string  `json:"thumbnail_url,omitempty" binding:"omitempty,url"`
	Status          string   `json:"status" binding:"omitempty,oneof=pending accepted rejected"`
	ReviewerNote    *string  `json:"reviewer_note,omitempty"`
	SuggestedPoints *int     `json:"suggested_points,omitempty" binding:"omitempty,gte=0"`
	AssignedPoints  *int     `json:"assigned_points,omitempty" binding:"omitempty,gte=0"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}
