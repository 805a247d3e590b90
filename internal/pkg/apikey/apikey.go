// Package apikey checks the admin API key against either a plain secret or its bcrypt hash.
package apikey

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("api key hashing failed")
	ErrInvalidKey    = errors.New("invalid api key")
	ErrNotConfigured = errors.New("admin api key not configured")
)

const DefaultCost = bcrypt.DefaultCost

type Verifier struct {
	plain string
	hash  string
}

func NewVerifier(plain, hash string) *Verifier {
	return &Verifier{plain: plain, hash: hash}
}

func (v *Verifier) Configured() bool {
	return v.plain != "" || v.hash != ""
}

func (v *Verifier) Verify(key string) error {
	if !v.Configured() {
		return ErrNotConfigured
	}
	if key == "" {
		return ErrInvalidKey
	}

	if v.hash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(key))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ErrInvalidKey
			}
			return err
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(v.plain), []byte(key)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

func HashKey(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}
