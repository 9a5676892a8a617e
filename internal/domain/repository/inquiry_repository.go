package repository

import (
	"context"

	"github.com/addisestates/backend/internal/domain/entity"
)

// InquiryFilter selects either the received or the sent side of a user's
// inquiries, optionally narrowed by status.
type InquiryFilter struct {
	PropertyOwnerID string
	InquirerID      string
	Status          string
	Page            Page
}

// InquiryRepository defines the interface for inquiry store operations.
type InquiryRepository interface {
	Create(ctx context.Context, iq *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context, f InquiryFilter) ([]entity.Inquiry, int64, error)
	// Respond records the owner's reply and moves the inquiry to responded.
	Respond(ctx context.Context, id, responderID, message string) (*entity.Inquiry, error)
	MarkRead(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entity.InquiryStatus]int64, error)
}
