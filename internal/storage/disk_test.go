package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() BlobStore {
	return NewDisk(afero.NewMemMapFs(), "data/documents")
}

func TestDiskStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	content := []byte{0x50, 0x4B, 0x03, 0x04}
	doc, err := store.Create(ctx, "invoice#1", "xlsx", content)
	require.NoError(t, err)

	// Sanitized id, fresh metadata
	assert.Equal(t, "invoice_1.xlsx", doc.ID)
	assert.Equal(t, "invoice_1", doc.Name)
	assert.Equal(t, ".xlsx", doc.Ext)
	assert.Equal(t, int64(len(content)), doc.Size)

	got, data, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, content, data)
}

func TestDiskStore_CreateEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	doc, err := store.Create(ctx, "report", ".docx", nil)
	require.NoError(t, err)
	assert.Equal(t, "report.docx", doc.ID)
	assert.Equal(t, int64(0), doc.Size)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "report.docx", docs[0].ID)
}

func TestDiskStore_CreateOverwritesOnCollision(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Create(ctx, "notes", "txt", []byte("first"))
	require.NoError(t, err)
	doc, err := store.Create(ctx, "notes", "txt", []byte("second"))
	require.NoError(t, err)

	// Last write wins: same id, new content.
	assert.Equal(t, "notes.txt", doc.ID)
	_, data, err := store.Get(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestDiskStore_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Create(ctx, "report", "docx", []byte("v1"))
	require.NoError(t, err)

	doc, err := store.Update(ctx, "report.docx", []byte("version two"))
	require.NoError(t, err)
	assert.Equal(t, "report.docx", doc.ID)
	assert.Equal(t, int64(len("version two")), doc.Size)

	_, data, err := store.Get(ctx, "report.docx")
	require.NoError(t, err)
	assert.Equal(t, []byte("version two"), data)
}

func TestDiskStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Update(ctx, "nonexistent.docx", []byte("data"))
	assert.ErrorIs(t, err, ErrNotFound)

	// No implicit create
	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDiskStore_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Create(ctx, "report", "docx", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "report.docx"))

	_, _, err = store.Get(ctx, "report.docx")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "report.docx"), ErrNotFound)
}

func TestDiskStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Stat(ctx, "missing.docx")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = store.Get(ctx, "missing.docx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.Stat(ctx, "../secrets.txt")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = store.Update(ctx, "a/b.docx", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDiskStore_ListIsSetOfStoredIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	ids := []string{"a.docx", "b.xlsx", "c.pptx"}
	_, err := store.Create(ctx, "a", "docx", nil)
	require.NoError(t, err)
	_, err = store.Create(ctx, "b", "xlsx", nil)
	require.NoError(t, err)
	_, err = store.Create(ctx, "c", "pptx", nil)
	require.NoError(t, err)

	docs, err := store.List(ctx)
	require.NoError(t, err)

	got := make([]string, 0, len(docs))
	for _, d := range docs {
		got = append(got, d.ID)
	}
	assert.ElementsMatch(t, ids, got)
}
