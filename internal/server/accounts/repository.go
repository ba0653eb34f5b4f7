package accounts

import (
	"context"
	"time"
)

// Repository stores accounts. Email lookups are case-insensitive.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
}

// TokenRepository stores emailed single-use tokens.
type TokenRepository interface {
	Create(ctx context.Context, accountID string, purpose Purpose, ttl time.Duration) (*Token, error)
	// Take returns the token and removes it. Unknown, expired and
	// wrong-purpose tokens are all reported as common.ErrInvalidToken.
	Take(ctx context.Context, value string, purpose Purpose) (*Token, error)
	DeleteForAccount(ctx context.Context, accountID string) error
}
