package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password mismatch")

// Encrypter hashes and checks passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return implEncrypter{cost: cost}
}

func (e implEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e implEncrypter) ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
