//go:build unit

package apikey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifier(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *Verifier
		key      string
		wantErr  error
	}{
		{"plain match", NewVerifier("secret", ""), "secret", nil},
		{"plain mismatch", NewVerifier("secret", ""), "guess", ErrInvalidKey},
		{"empty key", NewVerifier("secret", ""), "", ErrInvalidKey},
		{"hash match", NewVerifier("", string(hashed)), "hashed-key", nil},
		{"hash wins over plain", NewVerifier("secret", string(hashed)), "secret", ErrInvalidKey},
		{"not configured", NewVerifier("", ""), "anything", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.verifier.Verify(tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashKey(t *testing.T) {
	hashed, err := HashKey("k3y")
	require.NoError(t, err)
	assert.NoError(t, NewVerifier("", hashed).Verify("k3y"))

	_, err = HashKey("")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
