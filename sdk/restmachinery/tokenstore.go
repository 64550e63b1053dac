package restmachinery

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// TokenStore is anything that can mirror the client's cached CSRF token so it
// survives process restarts. The in-memory cache on the client remains
// authoritative; a store that fails is tolerated and never aborts a request.
type TokenStore interface {
	// Load returns the mirrored token, or an empty string if none is stored.
	Load() (string, error)
	// Save replaces the mirrored token.
	Save(token string) error
	// Clear removes the mirrored token. Clearing a store that holds no token
	// is not an error.
	Clear() error
}

type memoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore returns a TokenStore that holds the token in memory
// only. It is the degenerate store for hosts with no persistent storage.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a TokenStore that mirrors the token into a file
// at the given path. The file is created user-readable only.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (f *fileTokenStore) Load() (string, error) {
	tokenBytes, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "error reading token file at %s", f.path)
	}
	return strings.TrimSpace(string(tokenBytes)), nil
}

func (f *fileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return errors.Wrapf(
			err,
			"error creating directory for token file at %s",
			f.path,
		)
	}
	if err := os.WriteFile(f.path, []byte(token), 0600); err != nil {
		return errors.Wrapf(err, "error writing token file at %s", f.path)
	}
	return nil
}

func (f *fileTokenStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error removing token file at %s", f.path)
	}
	return nil
}
