package display

import (
	"database/sql"
	"time"
)

// Banner is a time-bound display entity owning a source selector. Its status
// is a derived function of (now, window) and is refreshed by the periodic
// sweep; deleting a banner never cascades onto the resolved targets.
type Banner struct {
	ID       int64          `json:"id" db:"id"`
	Title    string         `json:"title" db:"title"`
	ImageURL sql.NullString `json:"image_url,omitempty" db:"image_url"`

	Source SourceSelector `json:"source"`
	Window TimeWindow     `json:"window"`
	Status Status         `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HomepageSection is a named, ordered block on the storefront home page
// owning a source selector. Sections are not time-bound.
type HomepageSection struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Position int    `json:"position" db:"position"`
	Enabled  bool   `json:"enabled" db:"enabled"`

	Source SourceSelector `json:"source"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
