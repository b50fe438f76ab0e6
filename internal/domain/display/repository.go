package display

import "context"

type BannerRepository interface {
	Create(ctx context.Context, b *Banner) error
	FindByID(ctx context.Context, id int64) (*Banner, error)
	List(ctx context.Context) ([]Banner, error)
	ListByStatus(ctx context.Context, status Status) ([]Banner, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	// Update persists the banner including its selector; the inactive
	// variant columns are written as NULL/empty in the same statement.
	Update(ctx context.Context, b *Banner) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}

type SectionRepository interface {
	Create(ctx context.Context, s *HomepageSection) error
	FindByID(ctx context.Context, id int64) (*HomepageSection, error)
	List(ctx context.Context) ([]HomepageSection, error)
	ListEnabled(ctx context.Context) ([]HomepageSection, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	Update(ctx context.Context, s *HomepageSection) error
	Delete(ctx context.Context, id int64) error
}
