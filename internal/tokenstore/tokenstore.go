// Package tokenstore persists the bearer token, the only durable piece of
// client state. Presence of the token file is what decides whether bootstrap
// attempts a session restore.
package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store reads and writes the bearer token at a fixed path.
type Store struct {
	path string
}

// New creates a Store persisting at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted token, or "" when none is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the token, creating the parent directory if needed.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the persisted token. Missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Expired reports whether token carries an exp claim in the past. The client
// cannot verify the signature (it has no secret); an unverified parse is
// enough to skip a restore round-trip that the server would reject anyway.
// Tokens that do not parse as JWTs or carry no exp claim are not treated as
// expired; the server stays the authority.
func Expired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
