package ports

import (
	"context"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
)

// AuthResult is returned by Register and Login: the account plus a freshly
// issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
