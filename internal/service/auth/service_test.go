package auth

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/mocks"
)

const testSecret = "test-secret"

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func activeUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:       "user-1",
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: hashed(t, "s3cret"),
		Role:     domain.UserRoleUser,
		Status:   "Active",
	}
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	user := activeUser(t)
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	// Act
	access, refresh, err := svc.Login(context.Background(), "ana@example.com", "s3cret")

	// Assert
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens to be issued")
	}
	if access == refresh {
		t.Error("access and refresh tokens must differ")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser(t)
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc := NewService(&mocks.UserRepositoryMock{}, &mocks.CacheMock{}, testSecret, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_BlockedUser(t *testing.T) {
	user := activeUser(t)
	user.Status = "Blocked"
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "ana@example.com", "s3cret")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegister_HashesPasswordAndSetsDefaults(t *testing.T) {
	var saved *domain.User
	users := &mocks.UserRepositoryMock{
		SaveFunc: func(ctx context.Context, user *domain.User) error {
			saved = user
			return nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	err := svc.Register(context.Background(), &domain.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret",
	})

	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if saved == nil {
		t.Fatal("user was not saved")
	}
	if saved.Password == "s3cret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("s3cret")); err != nil {
		t.Error("stored hash does not verify against the original password")
	}
	if saved.ID == "" {
		t.Error("no id assigned")
	}
	if saved.Role != domain.UserRoleUser {
		t.Errorf("role = %q, want user default", saved.Role)
	}
	if saved.PreferredLanguage != "pt-BR" {
		t.Errorf("preferred language = %q, want pt-BR default", saved.PreferredLanguage)
	}
	if saved.Status != "Active" {
		t.Errorf("status = %q, want Active", saved.Status)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "existing"}, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	err := svc.Register(context.Background(), &domain.User{Email: "ana@example.com", Password: "x"})

	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	user := activeUser(t)
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	access, _, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	got, err := svc.ValidateToken(context.Background(), access)

	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("validated user = %q, want %q", got.ID, user.ID)
	}
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	user := activeUser(t)
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	_, refresh, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken for refresh token", err)
	}
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	user := activeUser(t)
	users := &mocks.UserRepositoryMock{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(users, &mocks.CacheMock{}, testSecret, zap.NewNop())

	_, refresh, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	access, err := svc.RefreshToken(context.Background(), refresh)

	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if _, err := svc.ValidateToken(context.Background(), access); err != nil {
		t.Errorf("refreshed access token does not validate: %v", err)
	}
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc := NewService(&mocks.UserRepositoryMock{}, &mocks.CacheMock{}, testSecret, zap.NewNop())

	if _, err := svc.RefreshToken(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
