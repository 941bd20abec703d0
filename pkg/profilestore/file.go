package profilestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	referrerFile = "referrer.json"
	payoutFile   = "payout.json"
)

// FileStore keeps both slots as JSON files in a directory. It is the default
// backend for the desktop intake client.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed Store rooted at dir. The directory is
// created lazily on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) LoadReferrer(ctx context.Context) (*ReferrerProfile, error) {
	var p ReferrerProfile
	if !s.load(referrerFile, &p) {
		return nil, nil
	}
	return &p, nil
}

func (s *FileStore) SaveReferrer(ctx context.Context, p ReferrerProfile) error {
	return s.save(referrerFile, p)
}

func (s *FileStore) LoadPayout(ctx context.Context) (*PayoutAccount, error) {
	var a PayoutAccount
	if !s.load(payoutFile, &a) {
		return nil, nil
	}
	return &a, nil
}

func (s *FileStore) SavePayout(ctx context.Context, a PayoutAccount) error {
	return s.save(payoutFile, a)
}

// load reads name into v, reporting whether anything usable was found.
// Corrupt data is treated the same as absent data.
func (s *FileStore) load(name string, v any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// save writes atomically via a temp file so a crash mid-write can't corrupt
// the slot.
func (s *FileStore) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("profilestore: create dir: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("profilestore: marshal: %w", err)
	}

	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("profilestore: write: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("profilestore: rename: %w", err)
	}
	return nil
}
