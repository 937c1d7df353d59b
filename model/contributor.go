package model

// Contributor earns Knowledge Points through accepted uploads and admin
// adjustments. Name is the lookup key by convention; uniqueness is not
// enforced at the store level.
type Contributor struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email,omitempty" binding:"omitempty,email"`
	AvatarURL *string  `json:"avatar_url,omitempty" binding:"omitempty,url"`
	College   string   `json:"college,omitempty"`
	Points    int      `json:"points" binding:"gte=0"`
	Streak    int      `json:"streak" binding:"gte=0"`
	Badges    []string `json:"badges"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}
