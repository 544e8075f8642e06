package naming

import (
	"path/filepath"
	"strings"
)

// BaseWithoutExt returns the final path element with its extension removed.
func BaseWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath builds the destination path for a conversion: the input's
// base name with the new format as extension, placed in outputDir when
// one is given and next to nothing (bare relative name) otherwise.
func OutputPath(inputPath, outputDir, format string) string {
	name := BaseWithoutExt(inputPath) + "." + strings.TrimPrefix(format, ".")
	if strings.TrimSpace(outputDir) == "" {
		return name
	}
	return filepath.Join(outputDir, name)
}
