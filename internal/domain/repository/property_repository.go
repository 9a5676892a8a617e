package repository

import (
	"context"
	"time"

	"github.com/addisestates/backend/internal/domain/entity"
)

// Sort keys recognized by property listings.
const (
	SortNewest    = "createdAt"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortAreaAsc   = "area_asc"
	SortAreaDesc  = "area_desc"
	SortViews     = "views"
)

// PropertyFilter is the recognized query surface for listing searches.
// Zero values mean "not filtered". PublicOnly adds the approved+active
// visibility constraint; admin views leave it false and may pin an explicit
// Status instead.
type PropertyFilter struct {
	Category  string
	Type      string
	City      string // case-insensitive substring
	Subcity   string // case-insensitive substring
	MinPrice  *float64
	MaxPrice  *float64
	MinArea   *float64
	MaxArea   *float64
	Bedrooms  *int // minimum threshold
	Bathrooms *int // minimum threshold
	Parking   bool
	Furnished bool
	Garden    bool
	Security  bool
	Search    string // full-text over title+description
	Status    string // admin-only explicit status filter
	OwnerID   string

	PublicOnly bool
	SortBy     string
	Page       Page
}

// PropertyRepository defines the interface for listing store operations.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	// GetByID returns the listing regardless of moderation state.
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	// GetVisibleByID returns the listing only when it is publicly visible,
	// with the owner joined in.
	GetVisibleByID(ctx context.Context, id string) (*entity.Property, error)
	// IncrementViews bumps the view counter by one in a single statement.
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, f PropertyFilter) ([]entity.Property, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Property, error)
	Update(ctx context.Context, p *entity.Property) error
	// SetStatus flips an approved listing between approved/sold/rented.
	SetStatus(ctx context.Context, id string, status entity.PropertyStatus) error
	AppendImages(ctx context.Context, id string, images []entity.PropertyImage) (*entity.Property, error)
	Delete(ctx context.Context, id string) error
	// Approve stamps the moderation outcome. Re-approval re-stamps.
	Approve(ctx context.Context, id, adminID string, at time.Time) (*entity.Property, error)
	Reject(ctx context.Context, id, reason string) (*entity.Property, error)
	CountByStatus(ctx context.Context) (map[entity.PropertyStatus]int64, error)
}
