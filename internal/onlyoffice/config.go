package onlyoffice

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"docboard/internal/model"
)

// Package onlyoffice implements the configuration and callback contract of
// the external ONLYOFFICE-compatible document editing server. Nothing in
// this package performs I/O; callers pass already-loaded metadata.

// User is the minimal identity embedded in an editor session.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocumentDescriptor identifies the file to the editor server.
type DocumentDescriptor struct {
	FileType string `json:"fileType"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// EditorConfig carries the session options. Mode is always "edit": the
// dashboard has no read-only viewing flow.
type EditorConfig struct {
	Mode        string `json:"mode"`
	CallbackURL string `json:"callbackUrl"`
	User        User   `json:"user"`
}

// Config is the full payload handed to the browser editor component.
// Token is the HS256 signature over the rest of the payload, present only
// when the editor server is deployed with JWT validation enabled.
type Config struct {
	Document     DocumentDescriptor `json:"document"`
	DocumentType string             `json:"documentType"`
	EditorConfig EditorConfig       `json:"editorConfig"`
	Token        string             `json:"token,omitempty"`
}

// Options parameterize config building per deployment.
type Options struct {
	// BaseURL is the address under which the editor server reaches this
	// service. File and callback URLs are composed from it.
	BaseURL string
	// JWTSecret, when non-empty, enables signing the config.
	JWTSecret string
}

// ContentKey derives the editor's cache/version key from a document id.
// It is deterministic by design: the editor keys its internal session and
// cache state on it, and a one-way hash avoids leaking the raw id.
func ContentKey(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

// BuildConfig produces the editor session configuration for a stored
// document. It is pure given its inputs.
func BuildConfig(doc model.Document, user User, opts Options) (*Config, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	escaped := url.PathEscape(doc.ID)

	cfg := &Config{
		Document: DocumentDescriptor{
			FileType: strings.TrimPrefix(strings.ToLower(doc.Ext), "."),
			Key:      ContentKey(doc.ID),
			Title:    doc.Title(),
			URL:      base + "/documents/file/" + escaped,
		},
		DocumentType: KindForExt(doc.Ext),
		EditorConfig: EditorConfig{
			Mode:        "edit",
			CallbackURL: base + "/documents/callback/" + escaped,
			User:        user,
		},
	}

	if opts.JWTSecret != "" {
		token, err := signConfig(cfg, opts.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("sign editor config: %w", err)
		}
		cfg.Token = token
	}

	return cfg, nil
}

// signConfig signs the config payload with HS256 as the editor server
// expects when JWT validation is enabled.
func signConfig(cfg *Config, secret string) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
