package numwords

import (
	"log/slog"
	"slices"
)

// Converter renders numbers as words from its own base options and words.
// A Converter is never modified after construction and is safe for
// concurrent use.
type Converter struct {
	options Options
	words   Words
	logger  *slog.Logger
}

// New returns a Converter based on the library defaults with opts applied.
func New(opts ...Option) *Converter {
	return NewFromConfig(DefaultOptions(), DefaultWords(), opts...)
}

// NewFromConfig returns a Converter with the given base options and words,
// then applies opts on top.
func NewFromConfig(options Options, words Words, opts ...Option) *Converter {
	s := settings{options: options, words: words.Clone()}
	s.apply(opts)
	if s.logger == nil {
		s.logger = discardLogger
	}
	return &Converter{options: s.options, words: s.words, logger: s.logger}
}

// Options returns a copy of the base options.
func (c *Converter) Options() Options {
	return c.options
}

// Words returns a deep copy of the base words.
func (c *Converter) Words() Words {
	return c.words.Clone()
}

// ToWords converts number to words. Per-call opts override the base
// configuration for this call only.
//
//	c := numwords.New()
//	s, _ := c.ToWords(1201) // "one thousand two hundred one"
func (c *Converter) ToWords(number float64, opts ...Option) (string, error) {
	s := settings{options: c.options, words: c.words, logger: c.logger}
	s.apply(opts)
	return convert(number, s)
}

// ToIndianWords converts number grouping with lakh and crore, whatever the
// options say.
func (c *Converter) ToIndianWords(number float64, opts ...Option) (string, error) {
	return c.ToWords(number, append(slices.Clip(opts), WithIndianStyle(true))...)
}

// ToInternationalWords converts number grouping with million, billion and
// trillion, whatever the options say.
func (c *Converter) ToInternationalWords(number float64, opts ...Option) (string, error) {
	return c.ToWords(number, append(slices.Clip(opts), WithIndianStyle(false))...)
}

// convert runs validation, rendering and formatting for one call.
func convert(number float64, s settings) (string, error) {
	opts := s.options
	if err := validate(number, &opts, s.words); err != nil {
		s.logger.Debug("number rejected", slog.Float64("number", number), slog.Any("error", err))
		return "", err
	}

	r := renderer{opts: opts, words: s.words}
	var result string
	if opts.UseCurrency {
		result = r.currency(number)
	} else {
		result = r.number(number)
	}
	result = finish(result, opts, s.words)

	s.logger.Debug("number converted",
		slog.Float64("number", number),
		slog.String("style", styleName(opts)),
		slog.String("mode", modeName(opts)),
	)
	return result, nil
}

// Style names used in logs and metrics.
const (
	StyleIndian        = "indian"
	StyleInternational = "international"
)

// Mode names used in logs and metrics.
const (
	ModeInteger  = "integer"
	ModeDecimal  = "decimal"
	ModeCurrency = "currency"
)

func styleName(o Options) string {
	if o.UseIndianStyle {
		return StyleIndian
	}
	return StyleInternational
}

func modeName(o Options) string {
	switch {
	case o.UseCurrency:
		return ModeCurrency
	case o.IntegerOnly:
		return ModeInteger
	}
	return ModeDecimal
}

// Describe returns the style and mode names of opts as they would be used
// for a conversion.
func Describe(o Options) (style, mode string) {
	if o.DecimalPlaces == 0 {
		o.IntegerOnly = true
	}
	return styleName(o), modeName(o)
}
