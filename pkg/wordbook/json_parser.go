package wordbook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser reads word packs from JSON documents.
type JSONParser struct{}

// NewJSONParser returns a parser for .json pack files.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser.
func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return packDocuments(data)
}

// SupportsFileExtension implements Parser.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// packDocuments checks that every language maps to a document.
func packDocuments(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		doc, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid word pack structure for language '%s': expected map, got %T", lang, val)
		}
		result[lang] = doc
	}
	if len(result) == 0 {
		return nil, ErrEmptyDocument
	}
	return result, nil
}
