package entity

import "time"

// PropertyStatus is the moderation state of a listing.
// New listings always start pending; approved and rejected are terminal
// moderation outcomes. Sold and rented extend approved once a deal closes.
type PropertyStatus string

const (
	StatusPending  PropertyStatus = "pending"
	StatusApproved PropertyStatus = "approved"
	StatusRejected PropertyStatus = "rejected"
	StatusSold     PropertyStatus = "sold"
	StatusRented   PropertyStatus = "rented"
)

// DefaultRejectionReason is recorded when an admin rejects without a reason.
const DefaultRejectionReason = "Does not meet listing requirements"

// Location is the Ethiopian addressing scheme down to kebele level.
type Location struct {
	City      string   `json:"city"`
	Subcity   string   `json:"subcity"`
	Woreda    string   `json:"woreda,omitempty"`
	Kebele    string   `json:"kebele,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Features struct {
	Bedrooms  int  `json:"bedrooms"`
	Bathrooms int  `json:"bathrooms"`
	Parking   bool `json:"parking"`
	Furnished bool `json:"furnished"`
	Garden    bool `json:"garden"`
	Security  bool `json:"security"`
}

// PropertyImage references an object uploaded to cloud storage.
type PropertyImage struct {
	Filename  string `json:"filename"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// Property is the aggregate root for the listing domain. OwnerID is set at
// creation and never changes. A listing is publicly visible only when
// Status is approved and IsActive is true.
type Property struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // residential_land, apartment_sale, house_rent
	Type        string          `json:"type"`     // land, apartment, house, villa, condominium
	Price       float64         `json:"price"`
	Currency    string          `json:"currency"` // ETB, USD
	AreaSize    float64         `json:"areaSize"`
	AreaUnit    string          `json:"areaUnit"` // sqm, hectare
	Location    Location        `json:"location"`
	Features    Features        `json:"features"`
	Images      []PropertyImage `json:"images"`

	OwnerID string `json:"ownerId"`
	Owner   *User  `json:"owner,omitempty"` // populated on reads that join the owner

	Status          PropertyStatus `json:"status"`
	IsActive        bool           `json:"isActive"`
	Views           int64          `json:"views"`
	ApprovedBy      *string        `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time     `json:"approvedAt,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PubliclyVisible reports whether the listing may be served to
// unauthenticated clients.
func (p *Property) PubliclyVisible() bool {
	switch p.Status {
	case StatusApproved, StatusSold, StatusRented:
		return p.IsActive
	}
	return false
}
