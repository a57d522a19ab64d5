// internal/auth/token_store.go
package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore holds the single bearer token shared by every request. The
// token is read fresh on each call, never cached in memory, mirroring how
// the browser console read localStorage on every request.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileTokenStore persists the token as a plain file under the user config
// dir (the CLI's equivalent of localStorage["admin_token"]).
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Token returns the stored token, or "" when none is persisted. Read errors
// are treated as "not logged in"; unauthenticated requests simply omit the
// Authorization header.
func (s *FileTokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// TokenExpiry reports the exp claim of a JWT access token without verifying
// its signature (the backend owns validation). Opaque tokens return ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
