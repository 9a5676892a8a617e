package application

import (
	"context"
	"errors"
	"testing"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/internal/infrastructure/postgres"
	"github.com/addisestates/backend/internal/mocks"
)

func newPropertySvc(repo *mocks.MockPropertyRepository) *PropertyService {
	return NewPropertyService(repo, nil, "", newTestLogger(), nil, "")
}

func TestPropertyCreate_Defaults(t *testing.T) {
	// Arrange
	var created *entity.Property
	mockRepo := &mocks.MockPropertyRepository{
		CreateFunc: func(ctx context.Context, p *entity.Property) error {
			p.ID = "prop-1"
			p.Status = entity.StatusPending
			created = p
			return nil
		},
	}
	svc := newPropertySvc(mockRepo)
	owner := &entity.User{ID: "owner-1", Role: entity.RoleSeller, IsApproved: true}

	// Act
	p, err := svc.Create(context.Background(), owner, PropertyInput{
		Title:    "  Two bedroom in Bole  ",
		Price:    4500000,
		AreaSize: 85,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Title != "Two bedroom in Bole" {
		t.Errorf("expected trimmed title, got %q", p.Title)
	}
	if created.Currency != "ETB" {
		t.Errorf("expected default currency ETB, got %s", created.Currency)
	}
	if created.AreaUnit != "sqm" {
		t.Errorf("expected default area unit sqm, got %s", created.AreaUnit)
	}
	if created.OwnerID != "owner-1" {
		t.Errorf("expected owner set, got %s", created.OwnerID)
	}
}

func TestGetPublic_IncrementsViews(t *testing.T) {
	// Arrange
	incremented := ""
	mockRepo := &mocks.MockPropertyRepository{
		GetVisibleByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, Status: entity.StatusApproved, IsActive: true, Views: 7}, nil
		},
		IncrementViewsFunc: func(ctx context.Context, id string) error {
			incremented = id
			return nil
		},
	}
	svc := newPropertySvc(mockRepo)

	// Act
	p, err := svc.GetPublic(context.Background(), "prop-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if incremented != "prop-1" {
		t.Error("expected view increment for prop-1")
	}
	if p.Views != 8 {
		t.Errorf("expected reported views 8, got %d", p.Views)
	}
}

func TestGetPublic_HiddenListingIsNotFound(t *testing.T) {
	mockRepo := &mocks.MockPropertyRepository{
		GetVisibleByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return nil, postgres.ErrNotFound
		},
	}
	svc := newPropertySvc(mockRepo)

	_, err := svc.GetPublic(context.Background(), "pending-prop")

	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyUpdate_NotOwner(t *testing.T) {
	mockRepo := &mocks.MockPropertyRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "someone-else"}, nil
		},
	}
	svc := newPropertySvc(mockRepo)
	user := &entity.User{ID: "owner-1"}

	_, err := svc.Update(context.Background(), user, "prop-1", PropertyInput{Title: "t"})

	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestPropertyUpdate_KeepsActiveFlagWhenOmitted(t *testing.T) {
	// Arrange
	var updated *entity.Property
	mockRepo := &mocks.MockPropertyRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "owner-1", Currency: "USD", AreaUnit: "sqm", IsActive: true}, nil
		},
		UpdateFunc: func(ctx context.Context, p *entity.Property) error {
			updated = p
			return nil
		},
	}
	svc := newPropertySvc(mockRepo)
	user := &entity.User{ID: "owner-1"}

	// Act
	_, err := svc.Update(context.Background(), user, "prop-1", PropertyInput{Title: "New title", Price: 100})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated.IsActive {
		t.Error("expected IsActive preserved when input omits it")
	}
	if updated.Currency != "USD" {
		t.Errorf("expected currency preserved, got %s", updated.Currency)
	}
}

func TestPropertyUpdate_MarksApprovedListingSold(t *testing.T) {
	// Arrange
	var setID string
	var setStatus entity.PropertyStatus
	mockRepo := &mocks.MockPropertyRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "owner-1", Title: "Bole apartment", Status: entity.StatusApproved}, nil
		},
		UpdateFunc: func(ctx context.Context, p *entity.Property) error { return nil },
		SetStatusFunc: func(ctx context.Context, id string, status entity.PropertyStatus) error {
			setID = id
			setStatus = status
			return nil
		},
	}
	svc := newPropertySvc(mockRepo)
	user := &entity.User{ID: "owner-1"}

	// Act
	p, err := svc.Update(context.Background(), user, "prop-1", PropertyInput{Title: "Bole apartment", Status: "sold"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if setID != "prop-1" || setStatus != entity.StatusSold {
		t.Errorf("expected status flip to sold for prop-1, got %s/%s", setID, setStatus)
	}
	if p.Status != entity.StatusSold {
		t.Errorf("expected returned status sold, got %s", p.Status)
	}
}

func TestPropertyUpdate_StatusLockedWhilePending(t *testing.T) {
	// Arrange
	updateCalls := 0
	mockRepo := &mocks.MockPropertyRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return &entity.Property{ID: id, OwnerID: "owner-1", Status: entity.StatusPending}, nil
		},
		UpdateFunc: func(ctx context.Context, p *entity.Property) error {
			updateCalls++
			return nil
		},
	}
	svc := newPropertySvc(mockRepo)
	user := &entity.User{ID: "owner-1"}

	// Act
	_, err := svc.Update(context.Background(), user, "prop-1", PropertyInput{Title: "t", Status: "sold"})

	// Assert
	if !errors.Is(err, ErrStatusLocked) {
		t.Fatalf("expected ErrStatusLocked, got %v", err)
	}
	if updateCalls != 0 {
		t.Errorf("expected no field update when the status change is rejected, got %d calls", updateCalls)
	}
}

func TestPropertyDelete_NotFound(t *testing.T) {
	mockRepo := &mocks.MockPropertyRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Property, error) {
			return nil, postgres.ErrNotFound
		},
	}
	svc := newPropertySvc(mockRepo)

	err := svc.Delete(context.Background(), &entity.User{ID: "owner-1"}, "missing")

	if !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}
