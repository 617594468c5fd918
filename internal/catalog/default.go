package catalog

import (
	_ "embed"
)

//go:embed content/java.md
var bundled []byte

// Default returns the catalog of bundled notes.
func Default() (*Catalog, error) {
	return Load(bundled)
}
