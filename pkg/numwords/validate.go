package numwords

import (
	"fmt"
	"math"
	"strconv"
)

const (
	unitWordCount = 20
	tenWordCount  = 10
)

// validate rejects a number or configuration the engine cannot render.
// On success it normalizes opts for the current call: zero decimal places
// means integer only.
func validate(number float64, opts *Options, words Words) error {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return invalidInput("Invalid number: " + formatNumber(number))
	}
	if !opts.UseCase.IsValid() {
		return invalidInput(fmt.Sprintf("Invalid useCase: %s", opts.UseCase))
	}
	if opts.DecimalPlaces < 0 || opts.DecimalPlaces > MaxDecimalPlaces {
		return invalidInput(errDecimalPlaces)
	}
	if err := words.Validate(); err != nil {
		return err
	}

	if opts.DecimalPlaces == 0 {
		opts.IntegerOnly = true
	}
	return nil
}

// Validate reports whether the word tables have the shape the renderer
// indexes into. Missing scale words are allowed and render as nothing.
func (w Words) Validate() error {
	if len(w.UnitWords) != unitWordCount {
		return invalidInput(fmt.Sprintf("unitWords must have exactly %d entries", unitWordCount))
	}
	if len(w.TenWords) != tenWordCount {
		return invalidInput(fmt.Sprintf("tenWords must have exactly %d entries", tenWordCount))
	}
	return nil
}

const errDecimalPlaces = "decimalPlaces must be an integer between 0 and 10"

// formatNumber prints n the way it reads in error messages: NaN, Infinity, 12.5.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
