// Package naming derives output paths for converted media files.
package naming
