package constants

import "strings"

// Stage names as they appear in task errors and logs.
const (
	StageOCR       = "ocr"
	StageAIExtract = "ai_extract"
	StageReconcile = "reconcile"
	StageReport    = "report"
)

// Document formats the text extractor understands.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// MapExtToFormat maps a normalized file extension to a document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch ext {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp", "webp":
		return IMAGE
	default:
		return ""
	}
}

// NormalizeExt lowercases an extension and strips a leading dot.
func NormalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(ext), ".")
}
