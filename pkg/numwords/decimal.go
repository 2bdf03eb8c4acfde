package numwords

import (
	"math"
	"strconv"
	"strings"
)

// currencyPlaces is the fixed precision of the minor currency unit.
const currencyPlaces = 2

// number renders a plain number: integer part, then the fractional part
// spoken digit by digit after the point word.
func (r renderer) number(value float64) string {
	if value < 0 {
		return joinWords(r.words.NegativeWord, r.number(-value))
	}

	var result string
	integerPart := math.Trunc(value)
	if !(integerPart == 0 && r.opts.SuppressMajorIfZero) {
		result = r.integer(integerPart)
	}
	if r.opts.IntegerOnly {
		return result
	}

	places := min(max(r.opts.DecimalPlaces, 0), MaxDecimalPlaces)
	scale := math.Pow10(places)
	fraction := math.Round((value-integerPart)*scale) / scale
	if fraction == 0 && r.opts.SuppressMinorIfZero {
		return result
	}

	if result != "" {
		result += " "
	}
	return result + r.words.PointWord + " " + r.digits(fraction, places)
}

// digits speaks the first places digits after the separator of fraction,
// keeping trailing zeros: 0.5 at two places reads "five zero". A fraction
// that rounded up to 1 reads as zeros.
func (r renderer) digits(fraction float64, places int) string {
	text := strconv.FormatFloat(fraction, 'f', places, 64)
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return ""
	}

	words := make([]string, 0, places)
	for _, d := range text[dot+1:] {
		words = append(words, r.words.unit(int(d-'0')))
	}
	return strings.Join(words, " ")
}

// currency renders value as major and minor currency amounts. The minor
// amount is a quantity, so 0.67 reads "sixty seven". The negative word is
// written once, next to the first amount that is rendered.
func (r renderer) currency(value float64) string {
	var negative string
	if value < 0 {
		negative = r.words.NegativeWord
		value = -value
	}

	var result string
	integerPart := math.Trunc(value)
	if !(integerPart == 0 && r.opts.SuppressMajorIfZero) {
		result = r.amount(joinWords(negative, r.integer(integerPart)), r.opts.MajorCurrencySymbol, r.opts.MajorCurrencyAtEnd)
		negative = ""
	}
	if r.opts.IntegerOnly {
		return result
	}

	minor := math.Round((value - integerPart) * math.Pow10(currencyPlaces))
	if minor == 0 && r.opts.SuppressMinorIfZero {
		return result
	}

	if result != "" {
		result += " " + r.words.AndWord + " "
	}
	return result + r.amount(joinWords(negative, r.integer(minor)), r.opts.MinorCurrencySymbol, r.opts.MinorCurrencyAtEnd)
}

func (r renderer) amount(words, symbol string, symbolAtEnd bool) string {
	if symbolAtEnd {
		return joinWords(words, symbol)
	}
	return joinWords(symbol, words)
}
