package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"docboard/internal/model"
	"docboard/internal/onlyoffice"
	"docboard/internal/storage"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrExtRequired  = errors.New("ext is required")
	ErrNotFound     = errors.New("document not found")
	ErrReaderNil    = errors.New("reader is nil")
	ErrCallbackURL  = errors.New("callback url is required")
	ErrFetchFailed  = errors.New("fetch edited file failed")
)

// Uploads without an extension are stored as word-processing documents.
const defaultUploadExt = ".docx"

// DocumentService defines the use cases around stored documents and their
// editing sessions.
type DocumentService interface {
	// List returns metadata for every stored document.
	List(ctx context.Context) ([]model.Document, error)

	// Get returns a single document's metadata by id.
	Get(ctx context.Context, id string) (*model.Document, error)

	// GetContent returns a document's metadata together with its bytes.
	GetContent(ctx context.Context, id string) (*model.Document, []byte, error)

	// Upload stores the content of an uploaded file. Name and extension are
	// derived from originalFilename; a missing extension defaults to .docx.
	Upload(ctx context.Context, r io.Reader, originalFilename string) (*model.Document, error)

	// Create stores a new document from explicit name/ext and optional
	// pre-seeded content (nil creates an empty file).
	Create(ctx context.Context, name, ext string, content []byte) (*model.Document, error)

	// Update replaces a document's content in full.
	Update(ctx context.Context, id string, r io.Reader) (*model.Document, error)

	// Delete removes a document by id.
	Delete(ctx context.Context, id string) error

	// EditorConfig builds the editor session configuration for a document.
	EditorConfig(ctx context.Context, id string, user onlyoffice.User) (*onlyoffice.Config, error)

	// Callback processes a save event from the editor server: for statuses
	// that carry a file it downloads the edited bytes and overwrites the
	// document; every other status is acknowledged without side effects.
	Callback(ctx context.Context, id string, req onlyoffice.CallbackRequest) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store   storage.BlobStore
	fetcher FileFetcher
	editor  onlyoffice.Options
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.BlobStore, fetcher FileFetcher, editor onlyoffice.Options) DocumentService {
	return &documentService{store: store, fetcher: fetcher, editor: editor}
}

// translateStoreErr converts storage-level misses into the service miss value.
func translateStoreErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
		return ErrNotFound
	}
	return err
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.store.List(ctx)
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.store.Stat(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return doc, nil
}

func (s *documentService) GetContent(ctx context.Context, id string) (*model.Document, []byte, error) {
	if id == "" {
		return nil, nil, ErrIDRequired
	}
	doc, data, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, translateStoreErr(err)
	}
	return doc, data, nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	base := filepath.Base(originalFilename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		return nil, ErrNameRequired
	}
	if ext == "" {
		ext = defaultUploadExt
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	doc, err := s.store.Create(ctx, name, ext, data)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	return doc, nil
}

func (s *documentService) Create(ctx context.Context, name, ext string, content []byte) (*model.Document, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if ext == "" {
		return nil, ErrExtRequired
	}
	doc, err := s.store.Create(ctx, name, ext, content)
	if err != nil {
		return nil, fmt.Errorf("store create: %w", err)
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, id string, r io.Reader) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read update: %w", err)
	}
	doc, err := s.store.Update(ctx, id, data)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func (s *documentService) EditorConfig(ctx context.Context, id string, user onlyoffice.User) (*onlyoffice.Config, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return onlyoffice.BuildConfig(*doc, user, s.editor)
}

func (s *documentService) Callback(ctx context.Context, id string, req onlyoffice.CallbackRequest) error {
	if id == "" {
		return ErrIDRequired
	}
	if !req.NeedsSave() {
		// Statuses like "editing" or "closed with no changes" need no action.
		return nil
	}
	if req.URL == "" {
		return ErrCallbackURL
	}
	data, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		// Surface immediately; the editor server owns retry policy.
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if _, err := s.store.Update(ctx, id, data); err != nil {
		return translateStoreErr(err)
	}
	return nil
}
