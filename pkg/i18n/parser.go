package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns the content of a translation file into lang -> translations.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
