package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/internal/mocks"
	"github.com/addisestates/backend/pkg/helpers"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newTestJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret-key", time.Hour)
}

func TestRegister_DefaultsToBuyer(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var created *entity.User
	mockRepo := &mocks.MockUserRepository{
		CreateFunc: func(ctx context.Context, u *entity.User) error {
			u.ID = "user-123"
			u.IsApproved = true // store approves buyers at insert
			created = u
			return nil
		},
	}
	svc := NewAuthService(mockRepo, newTestJWT(), newTestLogger())

	// Act
	res, err := svc.Register(ctx, RegisterInput{
		FirstName: "Abel",
		LastName:  "Tesfaye",
		Email:     "Abel@Example.com",
		Phone:     "+251911223344",
		Password:  "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Token == "" {
		t.Error("expected token, got empty string")
	}
	if created.Role != entity.RoleBuyer {
		t.Errorf("expected default role buyer, got %s", created.Role)
	}
	if created.Email != "abel@example.com" {
		t.Errorf("expected lowercased email, got %s", created.Email)
	}
	if created.Password == "secret123" {
		t.Error("expected hashed password, got plaintext")
	}
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc := NewAuthService(&mocks.MockUserRepository{}, newTestJWT(), newTestLogger())

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "x", LastName: "y",
		Email: "x@y.et", Phone: "0911000000", Password: "secret123",
		Role: entity.RoleAdmin,
	})

	if !errors.Is(err, ErrRoleNotPermitted) {
		t.Fatalf("expected ErrRoleNotPermitted, got %v", err)
	}
}

func TestRegister_DuplicateAccount(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{
		ExistsByEmailOrPhoneFunc: func(ctx context.Context, email, phone string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(mockRepo, newTestJWT(), newTestLogger())

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "x", LastName: "y",
		Email: "taken@y.et", Phone: "0911000000", Password: "secret123",
	})

	if !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	hash, _ := helpers.HashPassword("secret123")
	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == "abel@example.com" {
				return &entity.User{ID: "user-123", Email: email, Password: hash, Role: entity.RoleBuyer}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mockRepo, newTestJWT(), newTestLogger())

	// Act
	res, err := svc.Login(context.Background(), "Abel@Example.com ", "secret123")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Token == "" {
		t.Error("expected token, got empty string")
	}
	if res.User.ID != "user-123" {
		t.Errorf("unexpected user: %+v", res.User)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := helpers.HashPassword("correct-password")
	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "user-123", Email: email, Password: hash}, nil
		},
	}
	svc := NewAuthService(mockRepo, newTestJWT(), newTestLogger())

	_, err := svc.Login(context.Background(), "abel@example.com", "wrong-password")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mocks.MockUserRepository{}, newTestJWT(), newTestLogger())

	_, err := svc.Login(context.Background(), "missing@example.com", "whatever")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			return nil, errors.New("not found")
		},
	}
	svc := NewAuthService(mockRepo, newTestJWT(), newTestLogger())

	_, err := svc.GetProfile(context.Background(), "missing")

	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
