package numwords

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// settings is the configuration of a single Converter or conversion call.
type settings struct {
	options Options
	words   Words
	logger  *slog.Logger
}

func (s *settings) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}

// Option overrides one piece of configuration. Options passed to New set the
// base of a Converter; options passed to a conversion apply to that call only.
type Option func(*settings)

// WithOptions replaces every option with o.
func WithOptions(o Options) Option {
	return func(s *settings) { s.options = o }
}

// WithOverrides applies the fields set in o.
func WithOverrides(o Overrides) Option {
	return func(s *settings) { o.Apply(&s.options) }
}

// WithIntegerOnly drops the fractional part of the number.
func WithIntegerOnly(v bool) Option {
	return func(s *settings) { s.options.IntegerOnly = v }
}

// WithDecimalPlaces sets how many fractional digits are spoken. Values
// outside 0 to 10 make the conversion fail with ErrInvalidInput.
func WithDecimalPlaces(n int) Option {
	return func(s *settings) { s.options.DecimalPlaces = n }
}

// WithComma separates digit groups with commas.
func WithComma(v bool) Option {
	return func(s *settings) { s.options.UseComma = v }
}

// WithAnd puts the and-word before the last tens and units of a group.
func WithAnd(v bool) Option {
	return func(s *settings) { s.options.UseAnd = v }
}

// WithOnly appends the only-word to every non-empty result.
func WithOnly(v bool) Option {
	return func(s *settings) { s.options.UseOnlyWord = v }
}

// WithIndianStyle selects lakh and crore grouping. False selects million, billion and trillion.
func WithIndianStyle(v bool) Option {
	return func(s *settings) { s.options.UseIndianStyle = v }
}

// WithCurrency renders the number as a major and minor currency amount.
func WithCurrency(v bool) Option {
	return func(s *settings) { s.options.UseCurrency = v }
}

// WithMajorCurrencySymbol sets the major currency name, e.g. "rupees".
func WithMajorCurrencySymbol(symbol string) Option {
	return func(s *settings) { s.options.MajorCurrencySymbol = symbol }
}

// WithMinorCurrencySymbol sets the minor currency name, e.g. "paise".
func WithMinorCurrencySymbol(symbol string) Option {
	return func(s *settings) { s.options.MinorCurrencySymbol = symbol }
}

// WithMajorCurrencyAtEnd places the major currency name after the amount.
func WithMajorCurrencyAtEnd(v bool) Option {
	return func(s *settings) { s.options.MajorCurrencyAtEnd = v }
}

// WithMinorCurrencyAtEnd places the minor currency name after the amount.
func WithMinorCurrencyAtEnd(v bool) Option {
	return func(s *settings) { s.options.MinorCurrencyAtEnd = v }
}

// WithSuppressMajorIfZero omits a zero major amount.
func WithSuppressMajorIfZero(v bool) Option {
	return func(s *settings) { s.options.SuppressMajorIfZero = v }
}

// WithSuppressMinorIfZero omits a zero minor amount.
func WithSuppressMinorIfZero(v bool) Option {
	return func(s *settings) { s.options.SuppressMinorIfZero = v }
}

// WithCase sets the letter case of the result. Matching is case-insensitive.
func WithCase(c Case) Option {
	return func(s *settings) { s.options.UseCase = c }
}

// WithWords shallow-merges w over the current words. See Words.Merge.
func WithWords(w Words) Option {
	return func(s *settings) { s.words = s.words.Merge(w) }
}

// WithUnitWords replaces the words for zero to nineteen. It must hold 20 entries.
func WithUnitWords(words []string) Option {
	return func(s *settings) { s.words.UnitWords = words }
}

// WithTenWords replaces the words for twenty to ninety. It must hold 10 entries.
func WithTenWords(words []string) Option {
	return func(s *settings) { s.words.TenWords = words }
}

// WithSmallAmountWords replaces the hundred and thousand words.
func WithSmallAmountWords(words map[string]string) Option {
	return func(s *settings) { s.words.SmallAmountWords = words }
}

// WithBigAmountWords replaces the whole big amount mapping.
func WithBigAmountWords(words map[string]string) Option {
	return func(s *settings) { s.words.BigAmountWords = words }
}

// WithAndWord sets the and-word, including an empty one.
func WithAndWord(word string) Option {
	return func(s *settings) { s.words.AndWord = word }
}

// WithPointWord sets the word read before decimal digits.
func WithPointWord(word string) Option {
	return func(s *settings) { s.words.PointWord = word }
}

// WithOnlyWord sets the word appended by WithOnly.
func WithOnlyWord(word string) Option {
	return func(s *settings) { s.words.OnlyWord = word }
}

// WithNegativeWord sets the word read before negative numbers.
func WithNegativeWord(word string) Option {
	return func(s *settings) { s.words.NegativeWord = word }
}

// WithLogger sets the logger conversions report to at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
