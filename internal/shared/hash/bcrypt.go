package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes secrets one way
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(hashed, plaintext string) bool
}

// Bcrypt implements Hasher using bcrypt.
// cost controls the work factor (see bcrypt.DefaultCost).
type Bcrypt struct {
	cost int
}

var _ Hasher = (*Bcrypt)(nil)

func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (h *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
