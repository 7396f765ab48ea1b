// Package classify maps filenames to document categories and provides the
// per-category presentation lookups (placeholder previews, icons) consumed
// by the store and the HTTP layer. Everything here is a pure lookup.
package classify

import (
	"math"
	"strconv"
	"strings"

	"docmanager/internal/model"
)

var extensionCategory = map[string]model.Category{
	// Images
	"jpg":  model.CategoryImage,
	"jpeg": model.CategoryImage,
	"png":  model.CategoryImage,
	"gif":  model.CategoryImage,
	"webp": model.CategoryImage,
	"svg":  model.CategoryImage,
	"bmp":  model.CategoryImage,

	// Videos
	"mp4":  model.CategoryVideo,
	"avi":  model.CategoryVideo,
	"mov":  model.CategoryVideo,
	"wmv":  model.CategoryVideo,
	"flv":  model.CategoryVideo,
	"webm": model.CategoryVideo,
	"mkv":  model.CategoryVideo,

	// Audio
	"mp3":  model.CategoryAudio,
	"wav":  model.CategoryAudio,
	"flac": model.CategoryAudio,
	"aac":  model.CategoryAudio,
	"ogg":  model.CategoryAudio,
	"wma":  model.CategoryAudio,

	"pdf": model.CategoryPDF,

	// Spreadsheets
	"xlsx": model.CategorySpreadsheet,
	"xls":  model.CategorySpreadsheet,
	"csv":  model.CategorySpreadsheet,
	"ods":  model.CategorySpreadsheet,

	// Text
	"txt":  model.CategoryText,
	"doc":  model.CategoryText,
	"docx": model.CategoryText,
	"rtf":  model.CategoryText,
	"md":   model.CategoryText,
}

var placeholderLabel = map[model.Category]string{
	model.CategoryPDF:         "PDF",
	model.CategoryImage:       "Image",
	model.CategoryVideo:       "Video",
	model.CategoryAudio:       "Audio",
	model.CategorySpreadsheet: "Excel",
	model.CategoryText:        "Text",
	model.CategoryOther:       "File",
}

var icons = map[model.Category]string{
	model.CategoryPDF:         "📄",
	model.CategoryImage:       "🖼️",
	model.CategoryVideo:       "🎥",
	model.CategoryAudio:       "🎵",
	model.CategorySpreadsheet: "📊",
	model.CategoryText:        "📝",
	model.CategoryOther:       "📁",
}

// Extension returns the lowercased substring after the last '.', or "" when
// the name has no dot.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// TypeForFilename returns the category for a filename. Unknown or missing
// extensions map to model.CategoryOther.
func TypeForFilename(name string) model.Category {
	if c, ok := extensionCategory[Extension(name)]; ok {
		return c
	}
	return model.CategoryOther
}

// PlaceholderPreview returns the placeholder preview location for a category.
func PlaceholderPreview(c model.Category) string {
	label, ok := placeholderLabel[c]
	if !ok {
		label = placeholderLabel[model.CategoryOther]
	}
	return "/api/placeholder/150/200?text=" + label
}

// IconForType returns the display icon for a category.
func IconForType(c model.Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return icons[model.CategoryOther]
}

// IsViewableInBrowser reports whether a category can be previewed inline.
func IsViewableInBrowser(c model.Category) bool {
	switch c {
	case model.CategoryPDF, model.CategoryImage, model.CategoryVideo, model.CategoryAudio, model.CategoryText:
		return true
	}
	return false
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with 1024-based units and at most two
// decimals, e.g. "2.37 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " " + sizeUnits[i]
}
