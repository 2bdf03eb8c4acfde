package numwords_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numwords/pkg/numwords"
)

func TestConverter_Integers(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		number float64
		want   string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{19, "nineteen"},
		{20, "twenty"},
		{21, "twenty one"},
		{99, "ninety nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{110, "one hundred ten"},
		{999, "nine hundred ninety nine"},
		{1000, "one thousand"},
		{1201, "one thousand two hundred one"},
		{12345, "twelve thousand three hundred forty five"},
		{99999, "ninety nine thousand nine hundred ninety nine"},
		{42.99, "forty two"},
	}

	for _, tt := range tests {
		got, err := c.ToWords(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_IndianGrouping(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		number float64
		want   string
	}{
		{100000, "one lakh"},
		{1200000, "twelve lakh"},
		{10000000, "one crore"},
		{21200000, "two crore twelve lakh"},
		{123456789, "twelve crore thirty four lakh fifty six thousand seven hundred eighty nine"},
		{1e15, "ten crore crore"},
	}

	for _, tt := range tests {
		got, err := c.ToIndianWords(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_InternationalGrouping(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		number float64
		want   string
	}{
		{1000100, "one million one hundred"},
		{1200000, "one million two hundred thousand"},
		{1000000000, "one billion"},
		{1234567890123, "one trillion two hundred thirty four billion five hundred sixty seven million eight hundred ninety thousand one hundred twenty three"},
		{1e20, "one hundred million trillion"},
	}

	for _, tt := range tests {
		got, err := c.ToInternationalWords(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_StyleIsForced(t *testing.T) {
	t.Parallel()

	c := numwords.New()

	got, err := c.ToIndianWords(1200000, numwords.WithIndianStyle(false))
	require.NoError(t, err)
	assert.Equal(t, "twelve lakh", got)

	got, err = c.ToInternationalWords(1200000, numwords.WithIndianStyle(true))
	require.NoError(t, err)
	assert.Equal(t, "one million two hundred thousand", got)

	got, err = c.ToWords(1200000, numwords.WithIndianStyle(false))
	require.NoError(t, err)
	assert.Equal(t, "one million two hundred thousand", got)
}

func TestConverter_CommaAndAnd(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		name   string
		number float64
		opts   []numwords.Option
		want   string
	}{
		{
			name:   "comma before hundreds",
			number: 1101,
			opts:   []numwords.Option{numwords.WithComma(true)},
			want:   "one thousand, one hundred one",
		},
		{
			name:   "comma and and",
			number: 1101,
			opts:   []numwords.Option{numwords.WithComma(true), numwords.WithAnd(true)},
			want:   "one thousand, one hundred and one",
		},
		{
			name:   "no comma before round hundreds",
			number: 1200,
			opts:   []numwords.Option{numwords.WithComma(true)},
			want:   "one thousand two hundred",
		},
		{
			name:   "no comma before tens",
			number: 1050,
			opts:   []numwords.Option{numwords.WithComma(true), numwords.WithAnd(true)},
			want:   "one thousand and fifty",
		},
		{
			name:   "comma between every indian group",
			number: 12345678,
			opts:   []numwords.Option{numwords.WithComma(true)},
			want:   "one crore, twenty three lakh, forty five thousand, six hundred seventy eight",
		},
		{
			name:   "comma between international groups",
			number: 1200000,
			opts:   []numwords.Option{numwords.WithComma(true), numwords.WithIndianStyle(false)},
			want:   "one million, two hundred thousand",
		},
		{
			name:   "and inside a single group",
			number: 105,
			opts:   []numwords.Option{numwords.WithAnd(true)},
			want:   "one hundred and five",
		},
		{
			name:   "no and without a remainder",
			number: 100,
			opts:   []numwords.Option{numwords.WithAnd(true)},
			want:   "one hundred",
		},
		{
			name:   "and after thousands",
			number: 12001,
			opts:   []numwords.Option{numwords.WithAnd(true)},
			want:   "twelve thousand and one",
		},
		{
			name:   "and once per hundreds group",
			number: 1234,
			opts:   []numwords.Option{numwords.WithAnd(true)},
			want:   "one thousand two hundred and thirty four",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ToWords(tt.number, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_Decimals(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithIntegerOnly(false))
	tests := []struct {
		number        float64
		suppressMajor bool
		suppressMinor bool
		want          string
	}{
		{12345.67, false, false, "twelve thousand three hundred forty five point six seven"},
		{12345.6785, false, false, "twelve thousand three hundred forty five point six eight"},
		{0.6785, false, false, "zero point six eight"},
		{0.6, false, false, "zero point six zero"},
		{0.06, false, false, "zero point zero six"},
		{12, false, false, "twelve point zero zero"},
		{0, false, false, "zero point zero zero"},
		{0.6785, true, true, "point six eight"},
		{12.0001, true, true, "twelve"},
		{0, true, true, ""},
	}

	for _, tt := range tests {
		got, err := c.ToWords(tt.number,
			numwords.WithSuppressMajorIfZero(tt.suppressMajor),
			numwords.WithSuppressMinorIfZero(tt.suppressMinor),
		)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_DecimalPlaces(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithIntegerOnly(false))
	tests := []struct {
		number float64
		places int
		want   string
	}{
		{42.99, 0, "forty two"},
		{0.75, 0, "zero"},
		{1.5, 1, "one point five"},
		{1.234, 2, "one point two three"},
		{0.004, 2, "zero point zero zero"},
		{0.007, 2, "zero point zero one"},
		{1.5, 2, "one point five zero"},
		{1, 2, "one point zero zero"},
		{1.234, 3, "one point two three four"},
		{0.007, 3, "zero point zero zero seven"},
		{3.141593, 6, "three point one four one five nine three"},
		{0.000001, 6, "zero point zero zero zero zero zero one"},
	}

	for _, tt := range tests {
		got, err := c.ToWords(tt.number, numwords.WithDecimalPlaces(tt.places))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v at %d places", tt.number, tt.places)
	}
}

func TestConverter_Currency(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithCurrency(true))
	tests := []struct {
		name   string
		number float64
		opts   []numwords.Option
		want   string
	}{
		{"major only", 12345.67, nil, "rupees twelve thousand three hundred forty five"},
		{"major and minor", 12345.67, []numwords.Option{numwords.WithIntegerOnly(false)}, "rupees twelve thousand three hundred forty five and sixty seven paise"},
		{"major at end", 12345.67, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithMajorCurrencyAtEnd(true)}, "twelve thousand three hundred forty five rupees and sixty seven paise"},
		{"minor in front", 12345.67, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithMajorCurrencyAtEnd(true), numwords.WithMinorCurrencyAtEnd(false)}, "twelve thousand three hundred forty five rupees and paise sixty seven"},
		{"minor rounded", 12345.6785, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithMajorCurrencyAtEnd(true), numwords.WithMinorCurrencyAtEnd(false)}, "twelve thousand three hundred forty five rupees and paise sixty eight"},
		{"zero minor", 12345, []numwords.Option{numwords.WithIntegerOnly(false)}, "rupees twelve thousand three hundred forty five and zero paise"},
		{"zero major only", 0, nil, "rupees zero"},
		{"zero both", 0, []numwords.Option{numwords.WithIntegerOnly(false)}, "rupees zero and zero paise"},
		{"minor only amount", 0.15, []numwords.Option{numwords.WithIntegerOnly(false)}, "rupees zero and fifteen paise"},
		{"all suppressed", 0, []numwords.Option{numwords.WithSuppressMajorIfZero(true), numwords.WithSuppressMinorIfZero(true)}, ""},
		{"major suppressed", 0, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithSuppressMajorIfZero(true)}, "zero paise"},
		{"both suppressed", 0, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithSuppressMajorIfZero(true), numwords.WithSuppressMinorIfZero(true)}, ""},
		{"major suppressed with minor", 0.15, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithSuppressMajorIfZero(true), numwords.WithSuppressMinorIfZero(true)}, "fifteen paise"},
		{"decimal places ignored", 42.756, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithDecimalPlaces(5)}, "rupees forty two and seventy six paise"},
		{"custom symbols", 42.75, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithMajorCurrencySymbol("euros"), numwords.WithMinorCurrencySymbol("cents")}, "euros forty two and seventy five cents"},
		{"custom symbols below one", 0.5, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithMajorCurrencySymbol("euros"), numwords.WithMinorCurrencySymbol("cents")}, "euros zero and fifty cents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ToWords(tt.number, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_Negative(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		number float64
		opts   []numwords.Option
		want   string
	}{
		{-1, nil, "minus one"},
		{-19, nil, "minus nineteen"},
		{-99, nil, "minus ninety nine"},
		{-100, nil, "minus one hundred"},
		{-101, nil, "minus one hundred one"},
		{-999, nil, "minus nine hundred ninety nine"},
		{-1000, nil, "minus one thousand"},
		{-1101, nil, "minus one thousand one hundred one"},
		{-1.23, []numwords.Option{numwords.WithIntegerOnly(false)}, "minus one point two three"},
		{-0.5, []numwords.Option{numwords.WithIntegerOnly(false)}, "minus zero point five zero"},
		{-2.25, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithCurrency(true)}, "rupees minus two and twenty five paise"},
		{-0.75, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithCurrency(true)}, "rupees minus zero and seventy five paise"},
		{-0.75, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithCurrency(true), numwords.WithSuppressMajorIfZero(true)}, "minus seventy five paise"},
		{-2.25, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithCurrency(true), numwords.WithMajorCurrencyAtEnd(true)}, "minus two rupees and twenty five paise"},
	}

	for _, tt := range tests {
		got, err := c.ToWords(tt.number, tt.opts...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_NegativeMirrorsPositive(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	for n := 1.0; n < 1e13; n = n*7 + 3 {
		pos, err := c.ToWords(n)
		require.NoError(t, err)
		neg, err := c.ToWords(-n)
		require.NoError(t, err)
		assert.Equal(t, "minus "+pos, neg)
	}
}

func TestConverter_OnlyWord(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithOnly(true))
	tests := []struct {
		number float64
		opts   []numwords.Option
		want   string
	}{
		{1234, nil, "one thousand two hundred thirty four only"},
		{1234, []numwords.Option{numwords.WithAnd(true)}, "one thousand two hundred and thirty four only"},
		{1234, []numwords.Option{numwords.WithAnd(true), numwords.WithIntegerOnly(false)}, "one thousand two hundred and thirty four point zero zero only"},
		{1234.25, []numwords.Option{numwords.WithAnd(true), numwords.WithIntegerOnly(false)}, "one thousand two hundred and thirty four point two five only"},
		{12.25, []numwords.Option{numwords.WithAnd(true), numwords.WithIntegerOnly(false), numwords.WithCurrency(true)}, "rupees twelve and twenty five paise only"},
		{0, nil, "zero only"},
		{0, []numwords.Option{numwords.WithIntegerOnly(false)}, "zero point zero zero only"},
		{0, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithSuppressMajorIfZero(true)}, "point zero zero only"},
		{0, []numwords.Option{numwords.WithIntegerOnly(false), numwords.WithSuppressMajorIfZero(true), numwords.WithSuppressMinorIfZero(true)}, ""},
	}

	for _, tt := range tests {
		got, err := c.ToWords(tt.number, tt.opts...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number %v", tt.number)
	}
}

func TestConverter_Case(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		useCase numwords.Case
		want    string
	}{
		{numwords.CaseLower, "one thousand two hundred one only"},
		{numwords.CaseUpper, "ONE THOUSAND TWO HUNDRED ONE ONLY"},
		{numwords.CaseProper, "One Thousand Two Hundred One Only"},
		{numwords.CaseSentence, "One thousand two hundred one only"},
		{"UPPER", "ONE THOUSAND TWO HUNDRED ONE ONLY"},
		{"Proper", "One Thousand Two Hundred One Only"},
		{"", "one thousand two hundred one only"},
	}

	for _, tt := range tests {
		got, err := c.ToWords(1201, numwords.WithCase(tt.useCase), numwords.WithOnly(true))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "case %q", tt.useCase)
	}
}

func TestConverter_CustomWords(t *testing.T) {
	t.Parallel()

	c := numwords.New()

	t.Run("and word", func(t *testing.T) {
		got, err := c.ToWords(101, numwords.WithAnd(true), numwords.WithAndWord("plus"))
		require.NoError(t, err)
		assert.Equal(t, "one hundred plus one", got)
	})

	t.Run("point word", func(t *testing.T) {
		got, err := c.ToWords(1.5, numwords.WithIntegerOnly(false), numwords.WithDecimalPlaces(1), numwords.WithPointWord("dot"))
		require.NoError(t, err)
		assert.Equal(t, "one dot five", got)
	})

	t.Run("only word", func(t *testing.T) {
		got, err := c.ToWords(42, numwords.WithOnly(true), numwords.WithOnlyWord("exclusively"))
		require.NoError(t, err)
		assert.Equal(t, "forty two exclusively", got)
	})

	t.Run("negative word", func(t *testing.T) {
		got, err := c.ToWords(-3, numwords.WithNegativeWord("negativo"))
		require.NoError(t, err)
		assert.Equal(t, "negativo three", got)
	})

	t.Run("unit words", func(t *testing.T) {
		spanish := []string{
			"cero", "uno", "dos", "tres", "cuatro", "cinco",
			"seis", "siete", "ocho", "nueve", "diez",
			"once", "doce", "trece", "catorce", "quince",
			"dieciséis", "diecisiete", "dieciocho", "diecinueve",
		}
		got, err := c.ToWords(3, numwords.WithUnitWords(spanish))
		require.NoError(t, err)
		assert.Equal(t, "tres", got)

		got, err = c.ToWords(13, numwords.WithWords(numwords.Words{UnitWords: spanish}))
		require.NoError(t, err)
		assert.Equal(t, "trece", got)
	})

	t.Run("ten words", func(t *testing.T) {
		french := []string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix"}
		for number, want := range map[float64]string{
			20: "vingt",
			21: "vingt one",
			99: "quatre-vingt-dix nine",
		} {
			got, err := c.ToWords(number, numwords.WithTenWords(french))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("big amount words international", func(t *testing.T) {
		german := map[string]string{
			numwords.Million:  "Millionen",
			numwords.Billion:  "Milliarden",
			numwords.Trillion: "Billionen",
		}
		got, err := c.ToInternationalWords(1000000, numwords.WithBigAmountWords(german))
		require.NoError(t, err)
		assert.Equal(t, "one Millionen", got)

		got, err = c.ToInternationalWords(1000000000, numwords.WithBigAmountWords(german))
		require.NoError(t, err)
		assert.Equal(t, "one Milliarden", got)
	})

	t.Run("big amount words indian", func(t *testing.T) {
		hindi := map[string]string{numwords.Lakh: "लाख", numwords.Crore: "करोड़"}
		got, err := c.ToWords(100000, numwords.WithBigAmountWords(hindi))
		require.NoError(t, err)
		assert.Equal(t, "one लाख", got)

		got, err = c.ToWords(10000000, numwords.WithBigAmountWords(hindi))
		require.NoError(t, err)
		assert.Equal(t, "one करोड़", got)
	})

	t.Run("big amount words are replaced as a whole", func(t *testing.T) {
		got, err := c.ToWords(1200000, numwords.WithWords(numwords.Words{
			BigAmountWords: map[string]string{numwords.Million: "Millionen"},
		}))
		require.NoError(t, err)
		assert.Equal(t, "twelve", got)
	})
}

func TestConverter_CallsDoNotLeak(t *testing.T) {
	t.Parallel()

	c := numwords.New()

	got, err := c.ToWords(1101, numwords.WithComma(true), numwords.WithUnitWords(make([]string, 20)))
	require.NoError(t, err)
	assert.Equal(t, "thousand, hundred", got)

	got, err = c.ToWords(1101)
	require.NoError(t, err)
	assert.Equal(t, "one thousand one hundred one", got)

	assert.Equal(t, numwords.DefaultOptions(), c.Options())
	assert.Equal(t, numwords.DefaultWords(), c.Words())
}

func TestConverter_BaseConfiguration(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithIndianStyle(false), numwords.WithOnly(true), numwords.WithOnlyWord("exactly"))
	got, err := c.ToWords(1200000)
	require.NoError(t, err)
	assert.Equal(t, "one million two hundred thousand exactly", got)

	got, err = c.ToWords(1200000, numwords.WithOnly(false))
	require.NoError(t, err)
	assert.Equal(t, "one million two hundred thousand", got)

	words := c.Words()
	words.UnitWords[1] = "uno"
	got, err = c.ToWords(1)
	require.NoError(t, err)
	assert.Equal(t, "one exactly", got)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	opts := numwords.DefaultOptions()
	opts.UseCurrency = true
	opts.IntegerOnly = false
	opts.MajorCurrencySymbol = "dollars"
	opts.MinorCurrencySymbol = "cents"

	words := numwords.DefaultWords()
	c := numwords.NewFromConfig(opts, words)

	words.AndWord = "plus"
	got, err := c.ToWords(12.25)
	require.NoError(t, err)
	assert.Equal(t, "dollars twelve and twenty five cents", got)
}

func TestConverter_DigitGroupingProperties(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	for n := 0.0; n < 1e15; n = n*3 + 7 {
		for _, convert := range []func(float64, ...numwords.Option) (string, error){c.ToIndianWords, c.ToInternationalWords} {
			got, err := convert(n)
			require.NoError(t, err)
			assert.NotEmpty(t, got)
			assert.NotRegexp(t, `[0-9]`, got, "number %v", n)
		}
	}
}

func TestConverter_DecimalDigitCount(t *testing.T) {
	t.Parallel()

	c := numwords.New(numwords.WithIntegerOnly(false))
	for places := 1; places <= numwords.MaxDecimalPlaces; places++ {
		for _, v := range []float64{0.5, 1.25, 3.14159265358979, 12345.000001, 7} {
			got, err := c.ToWords(v, numwords.WithDecimalPlaces(places), numwords.WithPointWord("point"))
			require.NoError(t, err)

			_, fraction, found := strings.Cut(got, " point ")
			require.True(t, found, "%q", got)
			assert.Len(t, strings.Fields(fraction), places, "%v at %d places: %q", v, places, got)
		}
	}
}

func TestConverter_InvalidInput(t *testing.T) {
	t.Parallel()

	c := numwords.New()
	tests := []struct {
		name    string
		number  float64
		opts    []numwords.Option
		message string
	}{
		{"NaN", math.NaN(), nil, "Invalid number: NaN"},
		{"positive infinity", math.Inf(1), nil, "Invalid number: Infinity"},
		{"negative infinity", math.Inf(-1), nil, "Invalid number: -Infinity"},
		{"unknown case", 42, []numwords.Option{numwords.WithCase("camel")}, "Invalid useCase: camel"},
		{"unknown case with valid prefix", 42, []numwords.Option{numwords.WithCase("LOWERCASE")}, "Invalid useCase: LOWERCASE"},
		{"too many decimal places", 42, []numwords.Option{numwords.WithDecimalPlaces(11)}, "decimalPlaces must be an integer between 0 and 10"},
		{"negative decimal places", 42, []numwords.Option{numwords.WithDecimalPlaces(-1)}, "decimalPlaces must be an integer between 0 and 10"},
		{"short unit words", 42, []numwords.Option{numwords.WithUnitWords([]string{"zero"})}, "unitWords must have exactly 20 entries"},
		{"short ten words", 42, []numwords.Option{numwords.WithTenWords([]string{"", ""})}, "tenWords must have exactly 10 entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.ToWords(tt.number, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, numwords.ErrInvalidInput)
			assert.EqualError(t, err, tt.message)
			assert.Empty(t, got)
		})
	}
}
