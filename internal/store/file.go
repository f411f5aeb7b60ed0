package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"nazhan-shop/internal/logger"
	"nazhan-shop/internal/ui"
)

// FileStore persists each key as a JSON file under a data directory.
// Writes go through a temp file + rename so a crash never leaves a
// half-written value behind.
//
// Every successful marshal is also kept in an in-memory overlay. When
// the disk becomes unwritable mid-session the overlay keeps serving
// reads, so the session stays usable; durability is lost and the user
// is warned once.
type FileStore struct {
	dir    string
	notify ui.Notifier

	mu       sync.Mutex
	overlay  map[string]json.RawMessage
	degraded bool
}

func NewFileStore(dir string, notify ui.Notifier) (*FileStore, error) {
	if notify == nil {
		notify = ui.NopNotifier{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		dir:     dir,
		notify:  notify,
		overlay: make(map[string]json.RawMessage),
	}, nil
}

func (s *FileStore) Get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.overlay[key]
	s.mu.Unlock()

	if !ok {
		data, err := os.ReadFile(s.path(key))
		if errors.Is(err, fs.ErrNotExist) {
			return false
		}
		if err != nil {
			logger.L().Warn("stored value unreadable",
				zap.String("key", key), zap.Error(err))
			return false
		}
		raw = data
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.quarantine(key, err)
		return false
	}
	return true
}

func (s *FileStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}

	s.mu.Lock()
	s.overlay[key] = raw
	s.mu.Unlock()

	if err := s.writeFile(key, raw); err != nil {
		s.noteDegraded(err)
		return fmt.Errorf("persist %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.overlay, key)
	s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.noteDegraded(err)
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) writeFile(key string, raw []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

// quarantine moves a corrupt value aside so the next write starts clean.
// Corruption is recovered locally and never surfaced as a failure.
func (s *FileStore) quarantine(key string, cause error) {
	logger.L().Warn("stored value corrupt, resetting",
		zap.String("key", key), zap.Error(cause))

	s.mu.Lock()
	delete(s.overlay, key)
	s.mu.Unlock()

	_ = os.Rename(s.path(key), s.path(key)+".corrupt")
}

func (s *FileStore) noteDegraded(cause error) {
	s.mu.Lock()
	first := !s.degraded
	s.degraded = true
	s.mu.Unlock()

	if first {
		logger.L().Warn("storage unavailable, continuing in memory", zap.Error(cause))
		s.notify.Notify("Changes can no longer be saved to disk; they will be lost when you close the app", ui.SeverityWarning)
	}
}
