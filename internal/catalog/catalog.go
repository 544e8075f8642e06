package catalog

import "strings"

// Extensions is the fixed set of media file extensions the scanner
// recognizes, lowercase and without a leading dot.
var Extensions = []string{
	// Video
	"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "ts", "3gp",
	// Audio
	"mp3", "wav", "flac", "aac", "ogg", "wma", "m4a", "opus",
	// Image
	"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp",
	// Other containers
	"vob", "mpg", "mpeg", "mxf", "divx", "m2ts",
}

// CommonOutputFormats is the curated list offered on the output-format
// menu. Anything else is reachable through the custom entry.
var CommonOutputFormats = []string{
	// Video
	"mp4", "avi", "mkv", "mov", "webm", "m4v",
	// Audio
	"mp3", "wav", "flac", "aac", "ogg", "m4a",
	// Image
	"jpg", "png", "gif", "webp",
}

var extensionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Extensions))
	for _, ext := range Extensions {
		set[ext] = struct{}{}
	}
	return set
}()

// IsKnownExtension reports whether ext (with or without a leading dot,
// any case) is part of the scanner catalog.
func IsKnownExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	_, ok := extensionSet[ext]
	return ok
}
