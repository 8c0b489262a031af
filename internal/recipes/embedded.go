package recipes

import (
	_ "embed"
)

//go:embed catalog/chorefile.yaml
var embeddedCatalogContent []byte

const embeddedCatalogTypeConstant = "yaml"

// EmbeddedCatalogContent exposes the embedded default catalog and its content type.
func EmbeddedCatalogContent() ([]byte, string) {
	return embeddedCatalogContent, embeddedCatalogTypeConstant
}

// EmbeddedCatalog parses the embedded default catalog into a registry.
func EmbeddedCatalog() (*Registry, error) {
	return ParseCatalog(embeddedCatalogContent)
}
