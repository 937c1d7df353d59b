package model

// Note is a published catalog entry. Notes are created only through the
// upload review flow, never directly by the public.
type Note struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title" binding:"required"`
	ClassLevel    string   `json:"class_level" binding:"required"`
	College       string   `json:"college" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	Chapters      []string `json:"chapters"`
	Pages         *int     `json:"pages,omitempty" binding:"omitempty,gte=1"`
	DriveLink     string   `json:"drive_link" binding:"required,url"`
	UploaderAlias string   `json:"uploader_alias"`
	ContributorID *string  `json:"contributor_id"`
	ThumbnailURL  *string  `json:"thumbnail_url,omitempty" binding:"omitempty,url"`
	Likes         int      `json:"likes" binding:"gte=0"`
	Downloads     int      `json:"downloads" binding:"gte=0"`
	Language      string   `json:"language" binding:"omitempty,sitelang"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}
