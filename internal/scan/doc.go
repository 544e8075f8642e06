// Package scan enumerates convertible media files in a single directory,
// grouped by extension. It does not recurse into subdirectories.
package scan
