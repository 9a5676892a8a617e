package application

import (
	"context"
	"errors"
	"testing"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/internal/infrastructure/postgres"
	"github.com/addisestates/backend/internal/mocks"
)

func TestInquiryCreate_DenormalizesContact(t *testing.T) {
	// Arrange
	var created *entity.Inquiry
	props := &mocks.MockPropertyRepository{
		GetVisibleByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "owner-9", Title: "Villa in CMC"}, nil
		},
	}
	inqs := &mocks.MockInquiryRepository{
		CreateFunc: func(ctx context.Context, iq *entity.Inquiry) error {
			iq.ID = "inq-1"
			created = iq
			return nil
		},
	}
	svc := NewInquiryService(inqs, props, nil, newTestLogger())
	buyer := &entity.User{ID: "buyer-1", Email: "b@x.et", Phone: "0911000000", FirstName: "Sara", LastName: "Bekele"}

	// Act
	iq, err := svc.Create(context.Background(), buyer, CreateInquiryInput{
		PropertyID: "prop-1",
		Subject:    "Viewing request",
		Message:    "Is it still available?",
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if iq.ID != "inq-1" {
		t.Errorf("unexpected inquiry: %+v", iq)
	}
	if created.PropertyOwnerID != "owner-9" {
		t.Errorf("expected owner denormalized, got %s", created.PropertyOwnerID)
	}
	if created.InquirerContact.Email != "b@x.et" || created.InquirerContact.Phone != "0911000000" {
		t.Errorf("expected contact snapshot, got %+v", created.InquirerContact)
	}
	if created.Priority != "medium" {
		t.Errorf("expected default priority medium, got %s", created.Priority)
	}
}

func TestInquiryCreate_OwnProperty(t *testing.T) {
	props := &mocks.MockPropertyRepository{
		GetVisibleByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "owner-9"}, nil
		},
	}
	svc := NewInquiryService(&mocks.MockInquiryRepository{}, props, nil, newTestLogger())
	owner := &entity.User{ID: "owner-9"}

	_, err := svc.Create(context.Background(), owner, CreateInquiryInput{PropertyID: "prop-1", Subject: "s", Message: "m"})

	if !errors.Is(err, ErrOwnProperty) {
		t.Fatalf("expected ErrOwnProperty, got %v", err)
	}
}

func TestInquiryCreate_HiddenProperty(t *testing.T) {
	props := &mocks.MockPropertyRepository{
		GetVisibleByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return nil, postgres.ErrNotFound
		},
	}
	svc := NewInquiryService(&mocks.MockInquiryRepository{}, props, nil, newTestLogger())

	_, err := svc.Create(context.Background(), &entity.User{ID: "b"}, CreateInquiryInput{PropertyID: "x", Subject: "s", Message: "m"})

	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestInquiryRespond_OnlyPropertyOwner(t *testing.T) {
	inqs := &mocks.MockInquiryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Inquiry, error) {
			return &entity.Inquiry{ID: id, PropertyOwnerID: "owner-9"}, nil
		},
	}
	svc := NewInquiryService(inqs, &mocks.MockPropertyRepository{}, nil, newTestLogger())
	stranger := &entity.User{ID: "stranger"}

	_, err := svc.Respond(context.Background(), stranger, "inq-1", "yes")

	if !errors.Is(err, ErrNotInquiryOwner) {
		t.Fatalf("expected ErrNotInquiryOwner, got %v", err)
	}
}

func TestInquiryRespond_Success(t *testing.T) {
	// Arrange
	responded := false
	inqs := &mocks.MockInquiryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Inquiry, error) {
			return &entity.Inquiry{ID: id, PropertyOwnerID: "owner-9", Status: entity.InquiryPending}, nil
		},
		RespondFunc: func(ctx context.Context, id, responderID, message string) (*entity.Inquiry, error) {
			responded = true
			if responderID != "owner-9" {
				t.Errorf("expected responder owner-9, got %s", responderID)
			}
			return &entity.Inquiry{ID: id, PropertyOwnerID: responderID, Status: entity.InquiryResponded, IsRead: true}, nil
		},
	}
	svc := NewInquiryService(inqs, &mocks.MockPropertyRepository{}, nil, newTestLogger())
	owner := &entity.User{ID: "owner-9"}

	// Act
	iq, err := svc.Respond(context.Background(), owner, "inq-1", "  still available  ")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !responded {
		t.Fatal("expected repository Respond call")
	}
	if iq.Status != entity.InquiryResponded || !iq.IsRead {
		t.Errorf("expected responded+read inquiry, got %+v", iq)
	}
}

func TestInquiryMarkRead_NotFound(t *testing.T) {
	inqs := &mocks.MockInquiryRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Inquiry, error) {
			return nil, postgres.ErrNotFound
		},
	}
	svc := NewInquiryService(inqs, &mocks.MockPropertyRepository{}, nil, newTestLogger())

	err := svc.MarkRead(context.Background(), &entity.User{ID: "owner-9"}, "missing")

	if !errors.Is(err, ErrInquiryNotFound) {
		t.Fatalf("expected ErrInquiryNotFound, got %v", err)
	}
}
