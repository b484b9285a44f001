package storage

import (
	"regexp"
	"strings"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeName replaces every character outside [A-Za-z0-9_-] with "_".
// Sanitizing an already-sanitized name is a no-op.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// NormalizeExt ensures the extension starts with exactly one dot.
func NormalizeExt(ext string) string {
	return "." + strings.TrimLeft(ext, ".")
}

// ComposeID builds a blob id from a raw base name and extension.
// The id doubles as the stored filename and the document's display name,
// so the name portion is restricted to filesystem-safe characters.
func ComposeID(name, ext string) string {
	return SanitizeName(name) + NormalizeExt(ext)
}

// SplitID splits an id into its name and extension at the last dot.
// An id without a dot has an empty extension.
func SplitID(id string) (name, ext string) {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[:i], id[i:]
	}
	return id, ""
}

// ValidateID rejects ids that could escape the storage root. Ids are always
// plain filenames: no separators, no parent references, not empty.
func ValidateID(id string) error {
	if id == "" || id == "." || id == ".." {
		return ErrInvalidID
	}
	if strings.ContainsAny(id, `/\`) {
		return ErrInvalidID
	}
	return nil
}
