package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docmanager/internal/model"
)

func TestTypeForFilename(t *testing.T) {
	tests := []struct {
		name string
		file string
		want model.Category
	}{
		{name: "pdf", file: "Annual Report 2024.pdf", want: model.CategoryPDF},
		{name: "uppercase extension", file: "PHOTO.JPG", want: model.CategoryImage},
		{name: "video", file: "clip.mkv", want: model.CategoryVideo},
		{name: "audio", file: "song.flac", want: model.CategoryAudio},
		{name: "spreadsheet", file: "data.csv", want: model.CategorySpreadsheet},
		{name: "text", file: "README.md", want: model.CategoryText},
		{name: "last dot wins", file: "archive.tar.gz", want: model.CategoryOther},
		{name: "multiple dots known", file: "notes.v2.docx", want: model.CategoryText},
		{name: "no extension", file: "Makefile", want: model.CategoryOther},
		{name: "trailing dot", file: "weird.", want: model.CategoryOther},
		{name: "empty", file: "", want: model.CategoryOther},
		{name: "unknown", file: "binary.exe", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeForFilename(tt.file))
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "pdf", Extension("a.PDF"))
	assert.Equal(t, "", Extension("noext"))
	assert.Equal(t, "gz", Extension("a.tar.gz"))
}

func TestPlaceholderPreview(t *testing.T) {
	assert.Equal(t, "/api/placeholder/150/200?text=PDF", PlaceholderPreview(model.CategoryPDF))
	assert.Equal(t, "/api/placeholder/150/200?text=Excel", PlaceholderPreview(model.CategorySpreadsheet))
	assert.Equal(t, "/api/placeholder/150/200?text=File", PlaceholderPreview(model.CategoryOther))
	assert.Equal(t, "/api/placeholder/150/200?text=File", PlaceholderPreview(model.Category("bogus")))
}

func TestIconForType(t *testing.T) {
	for _, c := range model.Categories {
		assert.NotEmpty(t, IconForType(c), c)
	}
	assert.Equal(t, IconForType(model.CategoryOther), IconForType(model.Category("bogus")))
}

func TestIsViewableInBrowser(t *testing.T) {
	assert.True(t, IsViewableInBrowser(model.CategoryPDF))
	assert.True(t, IsViewableInBrowser(model.CategoryText))
	assert.False(t, IsViewableInBrowser(model.CategorySpreadsheet))
	assert.False(t, IsViewableInBrowser(model.CategoryOther))
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{2485760, "2.37 MB"},
		{15728640, "15 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}
