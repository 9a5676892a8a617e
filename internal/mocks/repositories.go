package mocks

import (
	"context"
	"time"

	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, u *entity.User) error
	GetByIDFunc              func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmailOrPhoneFunc func(ctx context.Context, email, phone string) (bool, error)
	ListFunc                 func(ctx context.Context, f repo.UserFilter) ([]entity.User, int64, error)
	SetApprovalFunc          func(ctx context.Context, id string, approved bool) (*entity.User, error)
	DeleteFunc               func(ctx context.Context, id string) error
	CountByRoleFunc          func(ctx context.Context) (map[entity.Role]int64, error)
	CountPendingApprovalFunc func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	if m.ExistsByEmailOrPhoneFunc != nil {
		return m.ExistsByEmailOrPhoneFunc(ctx, email, phone)
	}
	return false, nil
}

func (m *MockUserRepository) List(ctx context.Context, f repo.UserFilter) ([]entity.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []entity.User{}, 0, nil
}

func (m *MockUserRepository) SetApproval(ctx context.Context, id string, approved bool) (*entity.User, error) {
	if m.SetApprovalFunc != nil {
		return m.SetApprovalFunc(ctx, id, approved)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx)
	}
	return map[entity.Role]int64{}, nil
}

func (m *MockUserRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	if m.CountPendingApprovalFunc != nil {
		return m.CountPendingApprovalFunc(ctx)
	}
	return 0, nil
}

// MockPropertyRepository is a mock implementation of repository.PropertyRepository
type MockPropertyRepository struct {
	CreateFunc         func(ctx context.Context, p *entity.Property) error
	GetByIDFunc        func(ctx context.Context, id string) (*entity.Property, error)
	GetVisibleByIDFunc func(ctx context.Context, id string) (*entity.Property, error)
	IncrementViewsFunc func(ctx context.Context, id string) error
	ListFunc           func(ctx context.Context, f repo.PropertyFilter) ([]entity.Property, int64, error)
	ListByOwnerFunc    func(ctx context.Context, ownerID string) ([]entity.Property, error)
	UpdateFunc         func(ctx context.Context, p *entity.Property) error
	SetStatusFunc      func(ctx context.Context, id string, status entity.PropertyStatus) error
	AppendImagesFunc   func(ctx context.Context, id string, images []entity.PropertyImage) (*entity.Property, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ApproveFunc        func(ctx context.Context, id, adminID string, at time.Time) (*entity.Property, error)
	RejectFunc         func(ctx context.Context, id, reason string) (*entity.Property, error)
	CountByStatusFunc  func(ctx context.Context) (map[entity.PropertyStatus]int64, error)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPropertyRepository) GetVisibleByID(ctx context.Context, id string) (*entity.Property, error) {
	if m.GetVisibleByIDFunc != nil {
		return m.GetVisibleByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPropertyRepository) IncrementViews(ctx context.Context, id string) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

func (m *MockPropertyRepository) List(ctx context.Context, f repo.PropertyFilter) ([]entity.Property, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []entity.Property{}, 0, nil
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Property, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return []entity.Property{}, nil
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *MockPropertyRepository) SetStatus(ctx context.Context, id string, status entity.PropertyStatus) error {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockPropertyRepository) AppendImages(ctx context.Context, id string, images []entity.PropertyImage) (*entity.Property, error) {
	if m.AppendImagesFunc != nil {
		return m.AppendImagesFunc(ctx, id, images)
	}
	return nil, nil
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPropertyRepository) Approve(ctx context.Context, id, adminID string, at time.Time) (*entity.Property, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, id, adminID, at)
	}
	return nil, nil
}

func (m *MockPropertyRepository) Reject(ctx context.Context, id, reason string) (*entity.Property, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, id, reason)
	}
	return nil, nil
}

func (m *MockPropertyRepository) CountByStatus(ctx context.Context) (map[entity.PropertyStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[entity.PropertyStatus]int64{}, nil
}

// MockInquiryRepository is a mock implementation of repository.InquiryRepository
type MockInquiryRepository struct {
	CreateFunc        func(ctx context.Context, iq *entity.Inquiry) error
	GetByIDFunc       func(ctx context.Context, id string) (*entity.Inquiry, error)
	ListFunc          func(ctx context.Context, f repo.InquiryFilter) ([]entity.Inquiry, int64, error)
	RespondFunc       func(ctx context.Context, id, responderID, message string) (*entity.Inquiry, error)
	MarkReadFunc      func(ctx context.Context, id string) error
	CountByStatusFunc func(ctx context.Context) (map[entity.InquiryStatus]int64, error)
}

func (m *MockInquiryRepository) Create(ctx context.Context, iq *entity.Inquiry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, iq)
	}
	return nil
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInquiryRepository) List(ctx context.Context, f repo.InquiryFilter) ([]entity.Inquiry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []entity.Inquiry{}, 0, nil
}

func (m *MockInquiryRepository) Respond(ctx context.Context, id, responderID, message string) (*entity.Inquiry, error) {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, id, responderID, message)
	}
	return nil, nil
}

func (m *MockInquiryRepository) MarkRead(ctx context.Context, id string) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

func (m *MockInquiryRepository) CountByStatus(ctx context.Context) (map[entity.InquiryStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[entity.InquiryStatus]int64{}, nil
}
