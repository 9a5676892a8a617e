package repository

import (
	"context"

	"github.com/addisestates/backend/internal/domain/entity"
)

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role       string
	IsApproved *bool
	Page       Page
}

// UserRepository defines the interface for identity store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmailOrPhone reports whether another account already uses the
	// given email or phone.
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	List(ctx context.Context, f UserFilter) ([]entity.User, int64, error)
	// SetApproval flips the admin approval flag; approving also marks the
	// account verified.
	SetApproval(ctx context.Context, id string, approved bool) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)
	CountPendingApproval(ctx context.Context) (int64, error)
}
