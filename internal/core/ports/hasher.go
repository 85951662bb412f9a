package ports

import "context"

// PasswordHasher is a one-way salted hash over passwords. Implementations
// must not short-circuit comparison on the first mismatching byte; the
// service relies on the underlying library's constant-time compare.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	// Compare returns nil iff plaintext reproduces hashed.
	Compare(ctx context.Context, hashed, plaintext string) error
}
