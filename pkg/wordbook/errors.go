package wordbook

import (
	"errors"
	"fmt"
)

var (
	// Parsing
	ErrParsingCancelled  = errors.New("word pack parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrEmptyDocument     = errors.New("no word packs found in document")

	// Loading
	ErrLoadingCancelled        = errors.New("loading word packs cancelled")
	ErrFailedToReadFile        = errors.New("failed to read word pack file")
	ErrFailedToParseFile       = errors.New("failed to parse word pack file")
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoPacksFound            = errors.New("no word pack files found")

	// Packs
	ErrNilSource   = errors.New("word pack source is nil")
	ErrInvalidPack = errors.New("invalid word pack")
)

// ErrLanguageNotSupported indicates that no pack matches the requested language.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
