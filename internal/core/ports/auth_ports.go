package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/notes/api/internal/core/domain"
)

type RegisterInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyToken(token string) (uuid.UUID, error)
}

// TokenIssuer signs and verifies the session tokens handed to clients. The
// token string is opaque to every other component.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// PasswordHasher is an adaptive one-way hash for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
