package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/internal/infrastructure/postgres"
)

// InquiryService handles buyer-to-owner messaging on listings. Owner and
// inquirer contact details are denormalized onto the inquiry at creation so
// the inbox views never fan out into joins on the hot path.
type InquiryService struct {
	Inquiries  repo.InquiryRepository
	Properties repo.PropertyRepository
	Notify     *Notifier
	Logger     *logrus.Logger
}

func NewInquiryService(inquiries repo.InquiryRepository, properties repo.PropertyRepository, notify *Notifier, logger *logrus.Logger) *InquiryService {
	return &InquiryService{Inquiries: inquiries, Properties: properties, Notify: notify, Logger: logger}
}

type CreateInquiryInput struct {
	PropertyID string
	Subject    string
	Message    string
	Phone      string
	Priority   string
}

// Create records an inquiry against a publicly visible listing. Owners
// cannot inquire about their own listings.
func (s *InquiryService) Create(ctx context.Context, inquirer *entity.User, in CreateInquiryInput) (*entity.Inquiry, error) {
	p, err := s.Properties.GetVisibleByID(ctx, in.PropertyID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.OwnerID == inquirer.ID {
		return nil, ErrOwnProperty
	}

	inq := &entity.Inquiry{
		PropertyID:      p.ID,
		PropertyOwnerID: p.OwnerID,
		InquirerID:      inquirer.ID,
		Subject:         strings.TrimSpace(in.Subject),
		Message:         strings.TrimSpace(in.Message),
		InquirerContact: entity.InquiryContact{
			Email: inquirer.Email,
			Phone: defaultStr(in.Phone, inquirer.Phone),
		},
		Priority: defaultStr(in.Priority, "medium"),
	}
	if err := s.Inquiries.Create(ctx, inq); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"inquiry_id": inq.ID, "property_id": p.ID}).Info("inquiry created")
	}
	if s.Notify != nil && p.Owner != nil {
		s.Notify.InquiryReceived(ctx, p.Owner, inquirer, p, inq)
	}
	return inq, nil
}

// ListReceived pages through inquiries on the caller's listings.
func (s *InquiryService) ListReceived(ctx context.Context, ownerID string, status string, page repo.Page) ([]entity.Inquiry, int64, error) {
	return s.Inquiries.List(ctx, repo.InquiryFilter{PropertyOwnerID: ownerID, Status: status, Page: page})
}

// ListSent pages through inquiries the caller has made.
func (s *InquiryService) ListSent(ctx context.Context, inquirerID string, status string, page repo.Page) ([]entity.Inquiry, int64, error) {
	return s.Inquiries.List(ctx, repo.InquiryFilter{InquirerID: inquirerID, Status: status, Page: page})
}

// Respond lets the property owner answer an inquiry. Answering marks the
// inquiry read and moves it to responded.
func (s *InquiryService) Respond(ctx context.Context, user *entity.User, inquiryID, message string) (*entity.Inquiry, error) {
	inq, err := s.Inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	if inq.PropertyOwnerID != user.ID {
		return nil, ErrNotInquiryOwner
	}

	updated, err := s.Inquiries.Respond(ctx, inquiryID, user.ID, strings.TrimSpace(message))
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	if s.Notify != nil {
		title := ""
		if updated.Property != nil {
			title = updated.Property.Title
		}
		name := ""
		if updated.Inquirer != nil {
			name = updated.Inquirer.FullName()
		}
		s.Notify.InquiryResponded(ctx, updated.InquirerContact.Email, name, title, message)
	}
	return updated, nil
}

// MarkRead flags an inquiry as seen by the property owner.
func (s *InquiryService) MarkRead(ctx context.Context, user *entity.User, inquiryID string) error {
	inq, err := s.Inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return ErrInquiryNotFound
		}
		return err
	}
	if inq.PropertyOwnerID != user.ID {
		return ErrNotInquiryOwner
	}
	return s.Inquiries.MarkRead(ctx, inquiryID)
}
