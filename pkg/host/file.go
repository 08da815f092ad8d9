package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/observability"
)

// FileStore is a file-based settings store for CLI use.
// Each tour is one JSON file holding the flat key-value settings map.
type FileStore struct {
	mu      sync.Mutex
	path    string
	pending []pendingOp
}

// NewFileStore creates a file-backed settings store for the named tour.
// If baseDir is empty, defaults to ~/.config/spotlight/tours/
func NewFileStore(baseDir, tour string) (*FileStore, error) {
	if err := errors.ValidateTourName(tour); err != nil {
		return nil, err
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "spotlight", "tours")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create tour dir: %w", err)
	}
	return &FileStore{path: filepath.Join(baseDir, tour+".json")}, nil
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// All reads the committed settings from disk.
// A missing file is an empty tour, not an error.
func (s *FileStore) All(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	observability.Store().OnLoad(BackendFile, len(settings), err)
	return settings, err
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read settings file")
	}

	var settings map[string]string
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSettings, err, "parse settings file %s", s.path)
	}
	if settings == nil {
		settings = map[string]string{}
	}
	return settings, nil
}

// Set buffers a key-value write.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, value: value})
	return nil
}

// Erase buffers a key removal.
func (s *FileStore) Erase(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, erase: true})
	return nil
}

// Commit applies buffered mutations and rewrites the settings file.
func (s *FileStore) Commit(ctx context.Context) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	if err == nil {
		applyOps(settings, s.pending)
		err = s.write(settings)
	}
	if err == nil {
		s.pending = nil
	}
	observability.Store().OnCommit(BackendFile, len(settings), time.Since(start), err)
	return err
}

func (s *FileStore) write(settings map[string]string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeCommitFailed, err, "write settings file")
	}
	return nil
}

// Close discards pending mutations.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

var _ SettingsStore = (*FileStore)(nil)
