package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
	"github.com/gamevault/review-system/internal/core/token"
)

// AuthService implements registration and login over the account store.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	codec  *token.Codec
	log    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, log: log}
}

// Register hashes the password and creates the account. Uniqueness is
// enforced by the store; a losing concurrent insert surfaces as
// domain.ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login authenticates against the account registered under role and returns
// a bearer token scoped to that role. No side effects on the store.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	account, err := s.repo.FindByUsernameAndRole(ctx, username, role)
	if err != nil {
		return "", nil, err
	}

	if s.hasher.Compare(ctx, account.PasswordHash, password) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(account.ID, account.Username, account.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", account.Username).Str("role", account.Role).Msg("login succeeded")
	return tkn, account, nil
}

// Profile returns the account behind a verified token subject.
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}
