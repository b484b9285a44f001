package onlyoffice

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docboard/internal/model"
)

func testDoc() model.Document {
	return model.Document{ID: "report.docx", Name: "report", Ext: ".docx"}
}

func TestKindForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".docx", KindWord},
		{".xlsx", KindCell},
		{".pptx", KindSlide},
		{".csv", KindCell},
		{".ODP", KindSlide},
		{".unknownext", KindWord},
		{"", KindWord},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindForExt(tt.ext), "ext %q", tt.ext)
	}
}

func TestContentKeyDeterministic(t *testing.T) {
	k1 := ContentKey("report.docx")
	k2 := ContentKey("report.docx")
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 64)

	// Distinct ids get distinct keys, and the raw id does not leak.
	assert.NotEqual(t, k1, ContentKey("other.docx"))
	assert.NotContains(t, k1, "report")
}

func TestBuildConfig(t *testing.T) {
	user := User{ID: "u1", Name: "Admin"}
	cfg, err := BuildConfig(testDoc(), user, Options{BaseURL: "http://app.local:8080/"})
	require.NoError(t, err)

	assert.Equal(t, "docx", cfg.Document.FileType)
	assert.Equal(t, ContentKey("report.docx"), cfg.Document.Key)
	assert.Equal(t, "report.docx", cfg.Document.Title)
	assert.Equal(t, "http://app.local:8080/documents/file/report.docx", cfg.Document.URL)
	assert.Equal(t, KindWord, cfg.DocumentType)
	assert.Equal(t, "edit", cfg.EditorConfig.Mode)
	assert.Equal(t, "http://app.local:8080/documents/callback/report.docx", cfg.EditorConfig.CallbackURL)
	assert.Equal(t, user, cfg.EditorConfig.User)
	assert.Empty(t, cfg.Token)
}

func TestBuildConfigEscapesID(t *testing.T) {
	doc := model.Document{ID: "ré port.docx", Name: "ré port", Ext: ".docx"}
	cfg, err := BuildConfig(doc, User{}, Options{BaseURL: "http://app.local"})
	require.NoError(t, err)
	assert.Equal(t, "http://app.local/documents/file/r%C3%A9%20port.docx", cfg.Document.URL)
}

func TestBuildConfigDeterministic(t *testing.T) {
	opts := Options{BaseURL: "http://app.local"}
	a, err := BuildConfig(testDoc(), User{ID: "u1"}, opts)
	require.NoError(t, err)
	b, err := BuildConfig(testDoc(), User{ID: "u1"}, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildConfigSignsWhenSecretSet(t *testing.T) {
	cfg, err := BuildConfig(testDoc(), User{ID: "u1"}, Options{
		BaseURL:   "http://app.local",
		JWTSecret: "editor-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Token)

	parsed, err := jwt.Parse(cfg.Token, func(tok *jwt.Token) (any, error) {
		return []byte("editor-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	doc, ok := claims["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, ContentKey("report.docx"), doc["key"])
}

func TestCallbackNeedsSave(t *testing.T) {
	assert.False(t, CallbackRequest{Status: StatusEditing}.NeedsSave())
	assert.True(t, CallbackRequest{Status: StatusReadyForSaving}.NeedsSave())
	assert.True(t, CallbackRequest{Status: StatusSaving}.NeedsSave())
	assert.False(t, CallbackRequest{Status: StatusClosedNoSave}.NeedsSave())
}
