package wordbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// Source loads pack documents keyed by language tag.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves pack documents held in memory.
type MapSource struct {
	Data map[string]map[string]any
}

// Load implements Source.
func (s *MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.Data, nil
}

// FileSource reads a single YAML or JSON pack file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource returns a source reading path. A nil parser selects one
// from the file extension.
func NewFileSource(parser Parser, path string) *FileSource {
	return &FileSource{parser: parser, path: path}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.path == "" {
		return nil, fmt.Errorf("word pack file path is empty")
	}
	parser := s.parser
	if parser == nil {
		parser = NewParserForFile(s.path)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported word pack file '%s'", s.path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(s.path) })
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("word pack file '%s' is empty", s.path)
	}

	docs, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return docs, nil
}

// DirectorySource reads every supported pack file of a directory, skipping
// subdirectories. Files that fail to load are logged and skipped.
type DirectorySource struct {
	parser Parser
	path   string
	logger *slog.Logger
}

// NewDirectorySource returns a source reading the files of dir. A nil parser
// reads both YAML and JSON files.
func NewDirectorySource(parser Parser, dir string, logger *slog.Logger) *DirectorySource {
	if logger == nil {
		logger = discardLogger
	}
	return &DirectorySource{parser: parser, path: dir, logger: logger}
}

// Load implements Source.
func (s *DirectorySource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.path == "" {
		return nil, fmt.Errorf("word pack directory path is empty")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", s.path)
	}

	return loadTree(ctx, os.DirFS(s.path), ".", s.parser, s.logger, s.path)
}

// EmbeddedSource reads the pack files of one directory of a file system,
// typically an embed.FS.
type EmbeddedSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewEmbeddedSource returns a source reading the files of dir inside fsys.
// A nil parser reads both YAML and JSON files.
func NewEmbeddedSource(parser Parser, fsys fs.FS, dir string, logger *slog.Logger) *EmbeddedSource {
	if logger == nil {
		logger = discardLogger
	}
	return &EmbeddedSource{parser: parser, fsys: fsys, dir: dir, logger: logger}
}

// Load implements Source.
func (s *EmbeddedSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("embedded file system is nil")
	}
	dir := s.dir
	if dir == "" {
		dir = "."
	}
	return loadTree(ctx, s.fsys, dir, s.parser, s.logger, dir)
}

// loadTree merges the documents of every supported file of dir. A language
// found in several files gets its keys merged, later files winning.
func loadTree(ctx context.Context, fsys fs.FS, dir string, parser Parser, logger *slog.Logger, label string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		p := parserFor(parser, entry.Name())
		if p == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		docs, err := loadFile(ctx, fsys, name, p)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
			}
			logger.WarnContext(ctx, "skipping word pack file",
				slog.String("file", filepath.Join(label, entry.Name())),
				slog.String("error", err.Error()),
			)
			continue
		}

		for lang, doc := range docs {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(doc))
			}
			maps.Copy(all[lang], doc)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoPacksFound, label)
	}
	return all, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser) (map[string]map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(fsys, name) })
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("word pack file '%s' is empty", name)
	}

	docs, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return docs, nil
}

// readWithContext returns as soon as ctx is done. The read itself keeps
// running in its goroutine until the file system returns.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	type result struct {
		content []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		content, err := read()
		done <- result{content, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, errors.Join(ErrFailedToReadFile, r.err)
		}
		return r.content, nil
	}
}
