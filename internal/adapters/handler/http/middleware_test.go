package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notes/api/internal/core/domain"
	"github.com/notes/api/internal/core/ports"
)

type stubAuthService struct {
	userID      uuid.UUID
	verifyCalls int
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) VerifyToken(token string) (uuid.UUID, error) {
	s.verifyCalls++
	if token == "valid-token" {
		return s.userID, nil
	}
	return uuid.Nil, domain.ErrInvalidToken
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthService{userID: userID}

	var gotUserID uuid.UUID
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = r.Context().Value(UserIDKey).(uuid.UUID)
	})

	handler := AuthMiddleware(stub)(next)

	req := httptest.NewRequest("GET", "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, called)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	stub := &stubAuthService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	handler := AuthMiddleware(stub)(next)

	req := httptest.NewRequest("GET", "/api/notes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// No header means the verifier is never consulted.
	assert.Zero(t, stub.verifyCalls)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	stub := &stubAuthService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	handler := AuthMiddleware(stub)(next)

	req := httptest.NewRequest("GET", "/api/notes", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, stub.verifyCalls)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	stub := &stubAuthService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	handler := AuthMiddleware(stub)(next)

	req := httptest.NewRequest("GET", "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer expired-or-garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, stub.verifyCalls)
}
