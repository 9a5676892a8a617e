package entity

import "time"

// InquiryStatus tracks the owner-side handling of a buyer inquiry.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryResponded InquiryStatus = "responded"
	InquiryClosed    InquiryStatus = "closed"
)

// InquiryContact is the sender's contact snapshot taken at creation time, so
// the owner can reach out even if the sender later changes their profile.
type InquiryContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// InquiryResponse is filled exactly once, by the property owner.
type InquiryResponse struct {
	Message     string     `json:"message,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	RespondedBy string     `json:"respondedBy,omitempty"`
}

// Inquiry links a prospective buyer to a listing. PropertyOwnerID is
// denormalized at creation so received-inquiry queries need no join through
// the property.
type Inquiry struct {
	ID              string          `json:"id"`
	PropertyID      string          `json:"propertyId"`
	InquirerID      string          `json:"inquirerId"`
	PropertyOwnerID string          `json:"propertyOwnerId"`
	Subject         string          `json:"subject"`
	Message         string          `json:"message"`
	InquirerContact InquiryContact  `json:"inquirerContact"`
	Status          InquiryStatus   `json:"status"`
	Response        InquiryResponse `json:"response"`
	IsRead          bool            `json:"isRead"`
	Priority        string          `json:"priority"` // low, medium, high

	Property *Property `json:"property,omitempty"` // populated on list reads
	Inquirer *User     `json:"inquirer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
