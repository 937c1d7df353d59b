package model

// Subject is a controlled vocabulary entry for note subjects.
type Subject struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Stream    string `json:"stream,omitempty"` // Science/Management/Law/Languages
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// College is a controlled vocabulary entry for colleges.
type College struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
