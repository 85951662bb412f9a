package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/token"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by username
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := cloneAccount(account)
	copy.ID = "acc_" + account.Username
	r.accounts[copy.Username] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByUsernameAndRole(_ context.Context, username, role string) (*domain.Account, error) {
	a, ok := r.accounts[username]
	if !ok || a.Role != role {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// bcryptHasher runs bcrypt inline at minimum cost to keep tests fast.
type bcryptHasher struct{}

func (bcryptHasher) Hash(_ context.Context, plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	return string(h), err
}

func (bcryptHasher) Compare(_ context.Context, hashed, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
}

func newTestAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, bcryptHasher{}, token.NewCodec("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	account, err := svc.Register(context.Background(), "alice", "pw123456", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", account.Role)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	if _, err := svc.Register(context.Background(), "", "pw", domain.RoleUser); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", domain.RoleUser); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pw", "superuser"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	if _, err := svc.Register(context.Background(), "bob", "pw1", domain.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// A username collision is rejected regardless of role: identity is
	// unique per username.
	if _, err := svc.Register(context.Background(), "bob", "pw2", domain.RoleAdmin); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tkn, account, err := svc.Login(context.Background(), "carol", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.Username != "carol" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claim, err := token.NewCodec("secret", time.Hour).Verify(tkn)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claim.Subject != account.ID || claim.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claim: %+v", claim)
	}
}

func TestAuthService_Login_WrongRole(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleUser)
	if _, _, err := svc.Login(context.Background(), "dave", "goodpass", domain.RoleAdmin); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleUser)
	_, _, err := svc.Login(context.Background(), "dave", "badpass", domain.RoleUser)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	if _, _, err := svc.Login(context.Background(), "ghost", "pw", domain.RoleUser); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo())

	created, err := svc.Register(context.Background(), "erin", "pw123456", domain.RoleUser)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if account.Username != "erin" {
		t.Fatalf("unexpected account: %+v", account)
	}
}
