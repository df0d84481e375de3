package password

import (
	"github.com/notes/api/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

// hashCost keeps hashing slow enough to resist offline brute force.
const hashCost = 10

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
