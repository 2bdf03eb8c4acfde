package wordbook

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns the content of a word pack file into pack documents keyed by
// language tag.
type Parser interface {
	// Parse returns one document per language found in content.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser reads files with ext.
	// The extension may or may not include the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser for the extension of filename, or nil
// when the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// parserFor picks the parser for a file: p when it reads the extension of
// name, or the parser matching the extension when p is nil.
func parserFor(p Parser, name string) Parser {
	if p == nil {
		return NewParserForFile(name)
	}
	if p.SupportsFileExtension(filepath.Ext(name)) {
		return p
	}
	return nil
}
