package numwords

import "strings"

// Case selects the letter case of the rendered words.
type Case string

const (
	// CaseLower leaves the words as they are in the word table.
	CaseLower Case = "lower"
	// CaseUpper uppercases the whole result.
	CaseUpper Case = "upper"
	// CaseProper uppercases the first letter of every word.
	CaseProper Case = "proper"
	// CaseSentence uppercases the first letter of the result.
	CaseSentence Case = "sentence"
)

// Normalize returns the lowercase form of c. The empty case normalizes to CaseLower.
func (c Case) Normalize() Case {
	if c == "" {
		return CaseLower
	}
	return Case(strings.ToLower(string(c)))
}

// IsValid reports whether c names one of the supported cases, ignoring letter case.
func (c Case) IsValid() bool {
	switch c.Normalize() {
	case CaseLower, CaseUpper, CaseProper, CaseSentence:
		return true
	}
	return false
}

// MaxDecimalPlaces is the largest supported decimal precision.
const MaxDecimalPlaces = 10

// Options controls how a number is rendered.
type Options struct {
	// IntegerOnly drops the fractional part. Forced on when DecimalPlaces is 0.
	IntegerOnly bool `json:"integerOnly" yaml:"integerOnly"`
	// DecimalPlaces is the number of fractional digits spoken, 0 to 10.
	// Currency mode always uses 2.
	DecimalPlaces int  `json:"decimalPlaces" yaml:"decimalPlaces"`
	UseComma      bool `json:"useComma" yaml:"useComma"`
	UseAnd        bool `json:"useAnd" yaml:"useAnd"`
	UseOnlyWord   bool `json:"useOnlyWord" yaml:"useOnlyWord"`
	// UseIndianStyle groups with lakh and crore instead of million, billion and trillion.
	UseIndianStyle      bool   `json:"useIndianStyle" yaml:"useIndianStyle"`
	UseCurrency         bool   `json:"useCurrency" yaml:"useCurrency"`
	MajorCurrencySymbol string `json:"majorCurrencySymbol" yaml:"majorCurrencySymbol"`
	MinorCurrencySymbol string `json:"minorCurrencySymbol" yaml:"minorCurrencySymbol"`
	MajorCurrencyAtEnd  bool   `json:"majorCurrencyAtEnd" yaml:"majorCurrencyAtEnd"`
	MinorCurrencyAtEnd  bool   `json:"minorCurrencyAtEnd" yaml:"minorCurrencyAtEnd"`
	SuppressMajorIfZero bool   `json:"suppressMajorIfZero" yaml:"suppressMajorIfZero"`
	SuppressMinorIfZero bool   `json:"suppressMinorIfZero" yaml:"suppressMinorIfZero"`
	UseCase             Case   `json:"useCase" yaml:"useCase"`
}

// DefaultOptions returns the library defaults.
func DefaultOptions() Options {
	return Options{
		IntegerOnly:         true,
		DecimalPlaces:       2,
		UseIndianStyle:      true,
		MajorCurrencySymbol: "rupees",
		MinorCurrencySymbol: "paise",
		MinorCurrencyAtEnd:  true,
		UseCase:             CaseLower,
	}
}

// Overrides is a sparse set of option values. Nil fields keep whatever the
// base options already hold, so applying Overrides is a shallow merge where
// the override wins on every field it sets.
type Overrides struct {
	IntegerOnly         *bool   `json:"integerOnly,omitempty" yaml:"integerOnly,omitempty" env:"INTEGER_ONLY"`
	DecimalPlaces       *int    `json:"decimalPlaces,omitempty" yaml:"decimalPlaces,omitempty" env:"DECIMAL_PLACES"`
	UseComma            *bool   `json:"useComma,omitempty" yaml:"useComma,omitempty" env:"USE_COMMA"`
	UseAnd              *bool   `json:"useAnd,omitempty" yaml:"useAnd,omitempty" env:"USE_AND"`
	UseOnlyWord         *bool   `json:"useOnlyWord,omitempty" yaml:"useOnlyWord,omitempty" env:"USE_ONLY_WORD"`
	UseIndianStyle      *bool   `json:"useIndianStyle,omitempty" yaml:"useIndianStyle,omitempty" env:"USE_INDIAN_STYLE"`
	UseCurrency         *bool   `json:"useCurrency,omitempty" yaml:"useCurrency,omitempty" env:"USE_CURRENCY"`
	MajorCurrencySymbol *string `json:"majorCurrencySymbol,omitempty" yaml:"majorCurrencySymbol,omitempty" env:"MAJOR_CURRENCY_SYMBOL"`
	MinorCurrencySymbol *string `json:"minorCurrencySymbol,omitempty" yaml:"minorCurrencySymbol,omitempty" env:"MINOR_CURRENCY_SYMBOL"`
	MajorCurrencyAtEnd  *bool   `json:"majorCurrencyAtEnd,omitempty" yaml:"majorCurrencyAtEnd,omitempty" env:"MAJOR_CURRENCY_AT_END"`
	MinorCurrencyAtEnd  *bool   `json:"minorCurrencyAtEnd,omitempty" yaml:"minorCurrencyAtEnd,omitempty" env:"MINOR_CURRENCY_AT_END"`
	SuppressMajorIfZero *bool   `json:"suppressMajorIfZero,omitempty" yaml:"suppressMajorIfZero,omitempty" env:"SUPPRESS_MAJOR_IF_ZERO"`
	SuppressMinorIfZero *bool   `json:"suppressMinorIfZero,omitempty" yaml:"suppressMinorIfZero,omitempty" env:"SUPPRESS_MINOR_IF_ZERO"`
	UseCase             *Case   `json:"useCase,omitempty" yaml:"useCase,omitempty" env:"USE_CASE"`
}

// IsZero reports whether no field is set.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Apply copies every set field onto opts.
func (o Overrides) Apply(opts *Options) {
	setBool(&opts.IntegerOnly, o.IntegerOnly)
	if o.DecimalPlaces != nil {
		opts.DecimalPlaces = *o.DecimalPlaces
	}
	setBool(&opts.UseComma, o.UseComma)
	setBool(&opts.UseAnd, o.UseAnd)
	setBool(&opts.UseOnlyWord, o.UseOnlyWord)
	setBool(&opts.UseIndianStyle, o.UseIndianStyle)
	setBool(&opts.UseCurrency, o.UseCurrency)
	if o.MajorCurrencySymbol != nil {
		opts.MajorCurrencySymbol = *o.MajorCurrencySymbol
	}
	if o.MinorCurrencySymbol != nil {
		opts.MinorCurrencySymbol = *o.MinorCurrencySymbol
	}
	setBool(&opts.MajorCurrencyAtEnd, o.MajorCurrencyAtEnd)
	setBool(&opts.MinorCurrencyAtEnd, o.MinorCurrencyAtEnd)
	setBool(&opts.SuppressMajorIfZero, o.SuppressMajorIfZero)
	setBool(&opts.SuppressMinorIfZero, o.SuppressMinorIfZero)
	if o.UseCase != nil {
		opts.UseCase = *o.UseCase
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
