package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"docboard/internal/model"
)

// diskStore keeps one file per blob in a flat directory, filename = id.
// No manifest or sidecar files exist; the directory is the database.
// The filesystem is injected so tests can run against afero.NewMemMapFs.
type diskStore struct {
	fs   afero.Fs
	root string
}

// NewDisk creates a disk-backed BlobStore rooted at root. The root directory
// is created lazily on first use.
func NewDisk(fsys afero.Fs, root string) BlobStore {
	return &diskStore{fs: fsys, root: root}
}

var _ BlobStore = (*diskStore)(nil)

// documentFromInfo derives a Document purely from filesystem attributes.
// The filesystem does not expose a portable creation time, so both
// timestamps come from the modification time.
func documentFromInfo(info os.FileInfo) model.Document {
	name, ext := SplitID(info.Name())
	return model.Document{
		ID:        info.Name(),
		Name:      name,
		Ext:       ext,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
		UpdatedAt: info.ModTime(),
	}
}

func (s *diskStore) ensureRoot() error {
	return s.fs.MkdirAll(s.root, 0o755)
}

func (s *diskStore) path(id string) string {
	return filepath.Join(s.root, id)
}

// stat maps filesystem misses to ErrNotFound; other faults propagate.
func (s *diskStore) stat(id string) (*model.Document, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	info, err := s.fs.Stat(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	doc := documentFromInfo(info)
	return &doc, nil
}

func (s *diskStore) List(ctx context.Context) ([]model.Document, error) {
	if err := s.ensureRoot(); err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, err
	}
	docs := make([]model.Document, 0, len(entries))
	for _, info := range entries {
		if info.IsDir() {
			continue
		}
		docs = append(docs, documentFromInfo(info))
	}
	return docs, nil
}

func (s *diskStore) Stat(ctx context.Context, id string) (*model.Document, error) {
	if err := s.ensureRoot(); err != nil {
		return nil, err
	}
	return s.stat(id)
}

func (s *diskStore) Get(ctx context.Context, id string) (*model.Document, []byte, error) {
	if err := s.ensureRoot(); err != nil {
		return nil, nil, err
	}
	doc, err := s.stat(id)
	if err != nil {
		return nil, nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return doc, data, nil
}

func (s *diskStore) Create(ctx context.Context, name, ext string, data []byte) (*model.Document, error) {
	if err := s.ensureRoot(); err != nil {
		return nil, err
	}
	id := ComposeID(name, ext)
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	// Silent overwrite on id collision: last write wins.
	if err := afero.WriteFile(s.fs, s.path(id), data, fs.FileMode(0o644)); err != nil {
		return nil, err
	}
	return s.stat(id)
}

func (s *diskStore) Update(ctx context.Context, id string, data []byte) (*model.Document, error) {
	if err := s.ensureRoot(); err != nil {
		return nil, err
	}
	// Existence check first: update never creates.
	if _, err := s.stat(id); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(s.fs, s.path(id), data, fs.FileMode(0o644)); err != nil {
		return nil, err
	}
	return s.stat(id)
}

func (s *diskStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureRoot(); err != nil {
		return err
	}
	if _, err := s.stat(id); err != nil {
		return err
	}
	return s.fs.Remove(s.path(id))
}
