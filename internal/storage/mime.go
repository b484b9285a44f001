package storage

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Fixed extension table for the office formats the dashboard serves.
// Anything else is sniffed from content.
var mimeByExt = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".odt":  "application/vnd.oasis.opendocument.text",
	".rtf":  "application/rtf",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".csv":  "text/csv",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".ppt":  "application/vnd.ms-powerpoint",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
}

// ContentTypeForExt returns the MIME type for a known document extension,
// or application/octet-stream.
func ContentTypeForExt(ext string) string {
	if mt, ok := mimeByExt[strings.ToLower(ext)]; ok {
		return mt
	}
	return "application/octet-stream"
}

// DetectContentType resolves a served document's content type: the fixed
// extension table first, content sniffing for unknown extensions.
func DetectContentType(ext string, data []byte) string {
	if mt, ok := mimeByExt[strings.ToLower(ext)]; ok {
		return mt
	}
	if len(data) > 0 {
		return mimetype.Detect(data).String()
	}
	return "application/octet-stream"
}
