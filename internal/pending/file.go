package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/baan-scheduler/internal/booking"
)

// FileStore keeps the pending list as a JSON array in one file. Saves go
// through a temp file in the same directory followed by a rename, so readers
// never observe a half-written list.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]booking.PendingBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pending: read %s: %w", s.path, err)
	}
	var entries []booking.PendingBooking
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("pending: decode %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *FileStore) Save(ctx context.Context, entries []booking.PendingBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []booking.PendingBooking{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("pending: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("pending: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("pending: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("pending: rename: %w", err)
	}
	return nil
}
