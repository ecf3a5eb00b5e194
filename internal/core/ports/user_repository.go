package ports

import (
	"context"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A username collision surfaces as
	// domain.ErrUserExists regardless of which concurrent writer lost.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID loads a user without its password hash. Used by the auth
	// middleware to resolve the request principal.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
