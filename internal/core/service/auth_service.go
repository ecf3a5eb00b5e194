package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
	"github.com/inkwell-labs/notes-api/internal/core/ports"
	"github.com/inkwell-labs/notes-api/internal/core/token"
)

// MinPasswordLength is enforced before hashing.
const MinPasswordLength = 6

// LoginLimiter guards the credential check against brute force (Redis).
type LoginLimiter interface {
	// Allow reports whether another attempt for username is permitted.
	Allow(ctx context.Context, username string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	tokens  *token.Manager
	limiter LoginLimiter
	log     zerolog.Logger
}

// NewAuthService wires the auth use cases. limiter may be nil, in which case
// login attempts are not rate limited.
func NewAuthService(users ports.UserRepository, tokens *token.Manager, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}

	// Fast duplicate check. Two concurrent registrations can both pass it;
	// the unique index on username is the real arbiter and the losing insert
	// comes back as ErrUserExists from the repository.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return &ports.AuthResult{User: created, Token: tok}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Fail open: an unreachable limiter must not lock everyone out.
			s.log.Warn().Err(err).Msg("login limiter check failed, proceeding")
		} else if !ok {
			return nil, domain.ErrTooManyAttempts
		}
	}

	// Unknown username and wrong password are deliberately indistinguishable
	// to the caller.
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: tok}, nil
}
