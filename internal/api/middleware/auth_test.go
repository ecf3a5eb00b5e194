package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
	"github.com/inkwell-labs/notes-api/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func testGate(users *stubUserRepo, tm *token.Manager) echo.MiddlewareFunc {
	return Auth(tm, users, zerolog.Nop())
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tm := token.NewManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice"},
	}}

	signed, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := testGate(repo, tm)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(PrincipalKey).(*domain.User)
		if !ok || user.ID != "u1" || user.Username != "alice" {
			t.Fatalf("principal not attached: %+v", c.Get(PrincipalKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func rejectionCode(t *testing.T, authHeader string, repo *stubUserRepo, tm *token.Manager) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := testGate(repo, tm)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestAuth_MissingHeader(t *testing.T) {
	tm := token.NewManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	if code := rejectionCode(t, "", repo, tm); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tm := token.NewManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	if code := rejectionCode(t, "Token abc", repo, tm); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tm := token.NewManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	if code := rejectionCode(t, "Bearer not-a-token", repo, tm); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tm := token.NewManager("secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice"},
	}}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "u1",
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if code := rejectionCode(t, "Bearer "+signed, repo, tm); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_PrincipalDeleted(t *testing.T) {
	tm := token.NewManager("secret", time.Hour)
	// Valid token, but the account is gone.
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	signed, err := tm.Issue("u-gone")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if code := rejectionCode(t, "Bearer "+signed, repo, tm); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
