package model

// Settings is a singleton document holding site display configuration. The
// settings collection is expected to contain at most one document; the
// get-or-create path is responsible for keeping it that way.
type Settings struct {
	ID                     string   `json:"id,omitempty"`
	HeroTitleEN            string   `json:"hero_title_en"`
	HeroTitleNE            string   `json:"hero_title_ne"`
	LanguageDefault        string   `json:"language_default" binding:"omitempty,sitelang"`
	FeaturedContributorIDs []string `json:"featured_contributor_ids"`
	GoogleDriveFolderID    *string  `json:"google_drive_folder_id"`
	SEOMetaDescription     *string  `json:"seo_meta_description"`
	CreatedAt              string   `json:"created_at,omitempty"`
	UpdatedAt              string   `json:"updated_at,omitempty"`
}

// DefaultSettings returns the values used when the singleton is created
// lazily on first read.
func DefaultSettings() Settings {
	return Settings{
		HeroTitleEN:            "Share & Discover premium notes",
		HeroTitleNE:            "नोटहरू सेयर र खोज्नुहोस्",
		LanguageDefault:        "en",
		FeaturedContributorIDs: []string{},
	}
}
