// Package catalog holds the fixed tables of recognized media file
// extensions and curated output formats. The tables are initialized once
// and never mutated at runtime.
package catalog
