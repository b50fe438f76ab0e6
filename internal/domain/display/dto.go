package display

import "time"

type CreateBannerRequest struct {
	Title     string         `json:"title" binding:"required,max=255"`
	ImageURL  string         `json:"image_url"`
	Source    SourceSelector `json:"source" binding:"required"`
	StartDate time.Time      `json:"start_date" binding:"required"`
	EndDate   time.Time      `json:"end_date" binding:"required"`
}

type UpdateBannerRequest struct {
	Title     *string         `json:"title,omitempty" binding:"omitempty,max=255"`
	ImageURL  *string         `json:"image_url,omitempty"`
	Source    *SourceSelector `json:"source,omitempty"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
}

type CreateSectionRequest struct {
	Title    string         `json:"title" binding:"required,max=255"`
	Position int            `json:"position" binding:"min=0"`
	Enabled  *bool          `json:"enabled,omitempty"`
	Source   SourceSelector `json:"source" binding:"required"`
}

type UpdateSectionRequest struct {
	Title    *string         `json:"title,omitempty" binding:"omitempty,max=255"`
	Position *int            `json:"position,omitempty" binding:"omitempty,min=0"`
	Enabled  *bool           `json:"enabled,omitempty"`
	Source   *SourceSelector `json:"source,omitempty"`
}

// BannerView pairs a banner with its resolved source for read endpoints.
type BannerView struct {
	Banner   Banner         `json:"banner"`
	Resolved ResolvedSource `json:"resolved"`
}

// SectionView pairs a section with its resolved source for read endpoints.
type SectionView struct {
	Section  HomepageSection `json:"section"`
	Resolved ResolvedSource  `json:"resolved"`
}

// HomeFeed is the public storefront payload assembled from active banners
// and enabled sections.
type HomeFeed struct {
	Banners     []BannerView  `json:"banners"`
	Sections    []SectionView `json:"sections"`
	GeneratedAt time.Time     `json:"generated_at"`
}
