package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPIN is assigned to newly created staff profiles.
const DefaultPIN = "0000"

var ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

// PINHasher hashes and verifies staff PINs. PINs are never stored in clear.
type PINHasher interface {
	Hash(pin string) (string, error)
	Verify(pin, hash string) bool
}

type bcryptPINHasher struct {
	cost int
}

// NewPINHasher returns a bcrypt hasher. A cost outside bcrypt's accepted
// range falls back to bcrypt.DefaultCost.
func NewPINHasher(cost int) PINHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptPINHasher{cost: cost}
}

func (h *bcryptPINHasher) Hash(pin string) (string, error) {
	if !validator.IsValidPIN(pin) {
		return "", ErrInvalidPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptPINHasher) Verify(pin, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

var pinSpace = big.NewInt(10000)

// RandomPIN returns a uniformly random 4-digit PIN.
func RandomPIN() (string, error) {
	n, err := rand.Int(rand.Reader, pinSpace)
	if err != nil {
		return "", fmt.Errorf("generate pin: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
