package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name untouched", "report_2024-final", "report_2024-final"},
		{"spaces replaced", "my report", "my_report"},
		{"special chars replaced", "invoice#1", "invoice_1"},
		{"unicode replaced", "résumé", "r_sum_"},
		{"path chars replaced", "a/b\\c", "a_b_c"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	for _, in := range []string{"invoice#1", "my report (v2)", "ok_name"} {
		once := SanitizeName(in)
		assert.Equal(t, once, SanitizeName(once))
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".docx", NormalizeExt("docx"))
	assert.Equal(t, ".docx", NormalizeExt(".docx"))
	assert.Equal(t, ".docx", NormalizeExt("...docx"))
}

func TestComposeID(t *testing.T) {
	assert.Equal(t, "invoice_1.xlsx", ComposeID("invoice#1", "xlsx"))
	assert.Equal(t, "report.docx", ComposeID("report", ".docx"))
}

func TestSplitID(t *testing.T) {
	name, ext := SplitID("report.docx")
	assert.Equal(t, "report", name)
	assert.Equal(t, ".docx", ext)

	name, ext = SplitID("archive.tar.gz")
	assert.Equal(t, "archive.tar", name)
	assert.Equal(t, ".gz", ext)

	name, ext = SplitID("noext")
	assert.Equal(t, "noext", name)
	assert.Equal(t, "", ext)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("report.docx"))

	for _, id := range []string{"", ".", "..", "a/b.docx", `a\b.docx`, "../etc/passwd"} {
		assert.ErrorIs(t, ValidateID(id), ErrInvalidID, "id %q", id)
	}
}
