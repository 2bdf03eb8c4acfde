package wordbook

import (
	"context"
	"embed"
	"maps"
)

//go:embed packs/*.yaml
var builtinPacks embed.FS

// Builtin returns the packs shipped with the module: en, en-in and hi-latn.
func Builtin() Source {
	return NewEmbeddedSource(NewYAMLParser(), builtinPacks, "packs", nil)
}

// Layered combines sources. Every source is loaded in order and a language
// present in several sources gets its top-level keys merged, later sources
// winning, so a pack file may override only the options of a built-in pack.
func Layered(sources ...Source) Source {
	return layered(sources)
}

type layered []Source

// Load implements Source.
func (l layered) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, src := range l {
		if src == nil {
			continue
		}
		docs, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, doc := range docs {
			tag := normalizeTag(lang)
			if all[tag] == nil {
				all[tag] = make(map[string]any, len(doc))
			}
			maps.Copy(all[tag], doc)
		}
	}
	return all, nil
}
