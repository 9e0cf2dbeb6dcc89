package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/forgefolio/forgefolio/internal/platform/logging"
)

// FileStore persists counters as an indented JSON document, rewriting the
// whole file on every tracked event. Writes are serialized within the
// process only.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore persists counters at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (Counters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx), nil
}

// IncrementAndSave implements Store.
func (s *FileStore) IncrementAndSave(ctx context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.read(ctx)
	c.apply(ev, s.now())
	return s.write(c)
}

// read loads the stored document, starting fresh when the file is missing,
// unreadable, or corrupt.
func (s *FileStore) read(ctx context.Context) Counters {
	now := s.now()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCounters(now)
	}
	if err != nil {
		logging.LogWarn(ctx, "failed to read analytics file, starting fresh",
			zap.String("path", s.path), zap.Error(err))
		return NewCounters(now)
	}
	var c Counters
	if err := json.Unmarshal(data, &c); err != nil {
		logging.LogWarn(ctx, "corrupt analytics file, starting fresh",
			zap.String("path", s.path), zap.Error(err))
		return NewCounters(now)
	}
	c.normalize(now)
	return c
}

func (s *FileStore) write(c Counters) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding analytics counters: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing analytics file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
