package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mediaconv/internal/catalog"
)

// Result maps a lowercase extension (no leading dot) to the media files
// discovered with that extension, in directory order.
type Result map[string][]string

// Directory lists the media files sitting directly in dir, grouped by
// catalog extension. Extensions with no matches are absent from the
// result; an empty directory yields an empty map, not an error.
func Directory(dir string) (Result, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	result := make(Result)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if ext == "" || !catalog.IsKnownExtension(ext) {
			continue
		}
		result[ext] = append(result[ext], filepath.Join(dir, entry.Name()))
	}
	return result, nil
}

// Extensions returns the result's extensions sorted lexicographically.
func (r Result) Extensions() []string {
	exts := make([]string, 0, len(r))
	for ext := range r {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// TotalFiles counts all discovered files across extensions.
func (r Result) TotalFiles() int {
	total := 0
	for _, files := range r {
		total += len(files)
	}
	return total
}
