// Package session holds the authentication state. The session object is
// constructed once at the application root and passed explicitly to whatever
// needs the credential; there is no ambient global lookup.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type sessionFile struct {
	Token string `yaml:"token"`
}

// Session is the two-state authentication gate: a non-empty token means
// Authenticated. The token is mirrored to a YAML file so it survives
// restarts.
type Session struct {
	path  string
	token string
}

// Open reads the stored token, if any, from path. A missing file is the
// Unauthenticated state, not an error. DICTADMIN_TOKEN, when set, overrides
// the stored credential without touching the file.
func Open(path string) (*Session, error) {
	s := &Session{path: path}

	if token := os.Getenv("DICTADMIN_TOKEN"); token != "" {
		s.token = token
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var stored sessionFile
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	s.token = stored.Token
	return s, nil
}

// DefaultPath places the session file under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("os.UserConfigDir > %w", err)
	}
	return filepath.Join(configDir, "dictadmin", "session.yml"), nil
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	return s.token
}

// Authenticated reports whether a credential is present.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Store saves the token and transitions to Authenticated.
func (s *Session) Store(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	data, err := yaml.Marshal(sessionFile{Token: token})
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	// The token is a credential; keep the file owner-only.
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	s.token = token
	return nil
}

// Clear removes the stored credential and transitions to Unauthenticated.
func (s *Session) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove(%s) > %w", s.path, err)
	}
	return nil
}
