package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns file content into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser for filename, or nil when the extension is unknown.
func NewParserForFile(filename string) Parser {
	p := NewYAMLParser()
	if p.SupportsFileExtension(filepath.Ext(filename)) {
		return p
	}
	return nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
