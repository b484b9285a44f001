package model

import "time"

// Document represents a stored office file. Its ID is the stored filename
// (sanitized base name + extension); every other field is derived from
// filesystem attributes on read, never cached in a side table.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Ext       string    `json:"ext"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Title returns the display title shown by the editor (name + extension).
func (d Document) Title() string {
	return d.Name + d.Ext
}
