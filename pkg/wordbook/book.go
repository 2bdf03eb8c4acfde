package wordbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/numwords/pkg/numwords"
)

// DefaultLanguage is the pack used when a caller does not name one. Its
// options match the library defaults.
const DefaultLanguage = "en-in"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Pack is the vocabulary and default options of one language.
type Pack struct {
	Language string
	// Words is the full vocabulary: the pack document merged over the
	// English defaults.
	Words numwords.Words
	// Defaults are the options the pack sets. Options it leaves out keep
	// the converter's values.
	Defaults numwords.Overrides
}

// ConvertOptions returns the conversion options that select this pack.
func (p Pack) ConvertOptions() []numwords.Option {
	return []numwords.Option{
		numwords.WithWords(p.Words),
		numwords.WithOverrides(p.Defaults),
	}
}

// decodePack reads a pack document of the form {"words": {...}, "options": {...}}.
func decodePack(lang string, doc map[string]any) (Pack, error) {
	words, err := numwords.DecodeWords(doc["words"])
	if err != nil {
		return Pack{}, err
	}
	p := Pack{
		Language: lang,
		Words:    numwords.DefaultWords().Merge(words),
	}
	if err := p.Words.Validate(); err != nil {
		return Pack{}, err
	}
	if p.Defaults, err = numwords.DecodeOverrides(doc["options"]); err != nil {
		return Pack{}, err
	}
	return p, nil
}

// Book holds the word packs loaded from a Source. A Book is read-only after
// New returns and is safe for concurrent use.
type Book struct {
	packs       map[string]Pack
	languages   []string
	defaultLang string
	logger      *slog.Logger
}

// Option configures a Book.
type Option func(*Book)

// WithDefaultLanguage sets the pack returned for an empty language.
func WithDefaultLanguage(lang string) Option {
	return func(b *Book) {
		if lang != "" {
			b.defaultLang = normalizeTag(lang)
		}
	}
}

// WithLogger sets the logger used while loading packs.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Book) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New loads and decodes every pack of src. It fails on the first invalid
// pack and when the default language has no pack.
func New(ctx context.Context, src Source, opts ...Option) (*Book, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	b := &Book{
		packs:       make(map[string]Pack),
		defaultLang: DefaultLanguage,
		logger:      discardLogger,
	}
	for _, opt := range opts {
		opt(b)
	}

	docs, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, doc := range docs {
		tag := normalizeTag(lang)
		if tag == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidPack)
		}
		p, err := decodePack(tag, doc)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w '%s'", ErrInvalidPack, lang), err)
		}
		if _, seen := b.packs[tag]; !seen {
			b.languages = append(b.languages, tag)
		}
		b.packs[tag] = p
	}
	slices.Sort(b.languages)

	if _, ok := b.packs[b.defaultLang]; !ok {
		return nil, &ErrLanguageNotSupported{Lang: b.defaultLang}
	}

	b.logger.InfoContext(ctx, "word packs loaded", slog.Any("languages", b.languages))
	return b, nil
}

// Pack returns the pack for lang. An empty lang selects the default
// language. A regional tag without its own pack falls back to its base
// language, so "en-GB" reads the "en" pack.
func (b *Book) Pack(lang string) (Pack, error) {
	tag := normalizeTag(lang)
	if tag == "" {
		tag = b.defaultLang
	}
	p, ok := b.packs[tag]
	if !ok {
		if base, _, found := strings.Cut(tag, "-"); found {
			p, ok = b.packs[base]
		}
	}
	if !ok {
		return Pack{}, &ErrLanguageNotSupported{Lang: lang}
	}
	p.Words = p.Words.Clone()
	return p, nil
}

// Converter returns a converter using the pack for lang over the library
// defaults, with opts applied on top.
func (b *Book) Converter(lang string, opts ...numwords.Option) (*numwords.Converter, error) {
	p, err := b.Pack(lang)
	if err != nil {
		return nil, err
	}
	options := numwords.DefaultOptions()
	p.Defaults.Apply(&options)
	return numwords.NewFromConfig(options, p.Words, opts...), nil
}

// Languages returns the sorted tags of every loaded pack.
func (b *Book) Languages() []string {
	return slices.Clone(b.languages)
}

// DefaultLanguage returns the tag used for an empty language.
func (b *Book) DefaultLanguage() string {
	return b.defaultLang
}

// Negotiate picks the best pack for an Accept-Language header, falling back
// to the default language.
func (b *Book) Negotiate(header string) string {
	return negotiate(header, b.languages, b.defaultLang)
}
