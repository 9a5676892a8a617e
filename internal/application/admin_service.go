package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/internal/infrastructure/postgres"
	"github.com/addisestates/backend/pkg/helpers"
)

const (
	dashboardCacheKey = "admin:dashboard"
	dashboardCacheTTL = time.Minute
)

// AdminService implements the moderation surface: account approval, listing
// approval, and the aggregate dashboard.
type AdminService struct {
	Users      repo.UserRepository
	Properties repo.PropertyRepository
	Inquiries  repo.InquiryRepository
	Redis      *redis.Client
	Notify     *Notifier
	Logger     *logrus.Logger
}

func NewAdminService(users repo.UserRepository, properties repo.PropertyRepository, inquiries repo.InquiryRepository, rdb *redis.Client, notify *Notifier, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Properties: properties, Inquiries: inquiries, Redis: rdb, Notify: notify, Logger: logger}
}

// Dashboard aggregates platform counts for the admin landing page. The
// result is cached briefly in Redis since every admin page load hits it.
type Dashboard struct {
	UsersByRole          map[entity.Role]int64           `json:"usersByRole"`
	PendingUserApprovals int64                           `json:"pendingUserApprovals"`
	PropertiesByStatus   map[entity.PropertyStatus]int64 `json:"propertiesByStatus"`
	InquiriesByStatus    map[entity.InquiryStatus]int64  `json:"inquiriesByStatus"`
	GeneratedAt          time.Time                       `json:"generatedAt"`
}

func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	if s.Redis != nil {
		var cached Dashboard
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, dashboardCacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	usersByRole, err := s.Users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.Users.CountPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	propsByStatus, err := s.Properties.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	inqsByStatus, err := s.Inquiries.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		UsersByRole:          usersByRole,
		PendingUserApprovals: pending,
		PropertiesByStatus:   propsByStatus,
		InquiriesByStatus:    inqsByStatus,
		GeneratedAt:          time.Now().UTC(),
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, dashboardCacheKey, d, dashboardCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("dashboard cache write failed")
		}
	}
	return d, nil
}

// ListUsers pages through accounts, optionally by role or approval state.
func (s *AdminService) ListUsers(ctx context.Context, f repo.UserFilter) ([]entity.User, int64, error) {
	return s.Users.List(ctx, f)
}

// ApproveUser grants a pending seller/landlord/agent account access to
// listing operations. Approving an already approved account is a no-op.
func (s *AdminService) ApproveUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.SetApproval(ctx, id, true)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user approved")
	}
	if s.Notify != nil {
		s.Notify.AccountApproved(ctx, u)
	}
	s.invalidateDashboard(ctx)
	return u, nil
}

// RejectUser revokes or withholds approval. The account remains able to log
// in and browse; only listing operations stay gated.
func (s *AdminService) RejectUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.SetApproval(ctx, id, false)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user approval revoked")
	}
	if s.Notify != nil {
		s.Notify.AccountRejected(ctx, u)
	}
	s.invalidateDashboard(ctx)
	return u, nil
}

// DeleteUser removes an account. Admin accounts cannot be deleted through
// the API.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if postgres.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if u.Role == entity.RoleAdmin {
		return ErrAdminProtected
	}
	if err := s.Users.Delete(ctx, id); err != nil {
		if postgres.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// ListProperties pages through listings in any status for moderation.
func (s *AdminService) ListProperties(ctx context.Context, f repo.PropertyFilter) ([]entity.Property, int64, error) {
	f.PublicOnly = false
	return s.Properties.List(ctx, f)
}

// ApproveProperty publishes a listing. Re-approving an approved listing
// simply re-stamps the approval.
func (s *AdminService) ApproveProperty(ctx context.Context, adminID, propertyID string) (*entity.Property, error) {
	p, err := s.Properties.Approve(ctx, propertyID, adminID, time.Now().UTC())
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"property_id": propertyID, "admin_id": adminID}).Info("property approved")
	}
	s.notifyOwner(ctx, p, true)
	s.invalidateDashboard(ctx)
	return p, nil
}

// RejectProperty takes a listing off the moderation queue with a reason.
// An empty reason falls back to the standard one.
func (s *AdminService) RejectProperty(ctx context.Context, propertyID, reason string) (*entity.Property, error) {
	if reason == "" {
		reason = entity.DefaultRejectionReason
	}
	p, err := s.Properties.Reject(ctx, propertyID, reason)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"property_id": propertyID, "reason": reason}).Info("property rejected")
	}
	s.notifyOwner(ctx, p, false)
	s.invalidateDashboard(ctx)
	return p, nil
}

func (s *AdminService) notifyOwner(ctx context.Context, p *entity.Property, approved bool) {
	if s.Notify == nil {
		return
	}
	owner, err := s.Users.GetByID(ctx, p.OwnerID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("owner_id", p.OwnerID).Warn("owner lookup for notification failed")
		}
		return
	}
	if approved {
		s.Notify.PropertyApproved(ctx, owner, p)
	} else {
		s.Notify.PropertyRejected(ctx, owner, p)
	}
}

func (s *AdminService) invalidateDashboard(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, dashboardCacheKey).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("dashboard cache invalidation failed")
	}
}
