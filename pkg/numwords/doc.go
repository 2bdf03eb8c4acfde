// Package numwords converts numbers into words, for example 1201 into
// "one thousand two hundred one".
//
// Two grouping styles are supported: Indian (thousand, lakh, crore) and
// international (thousand, million, billion, trillion). On top of the integer
// words the package can speak a decimal fraction digit by digit ("point one
// two"), render an amount as major and minor currency units ("rupees twelve
// and twenty five paise"), place commas between groups, insert "and" before
// the last part of a hundreds group, append an "only" marker and change the
// letter case of the result.
//
// # Architecture
//
// Every conversion runs the same pipeline:
//
//   - validation rejects non-finite numbers and malformed options with an
//     error matching ErrInvalidInput;
//   - the grouper walks a descending table of magnitudes for the selected
//     style and renders each group, the remainder below one thousand going
//     through the hundreds renderer;
//   - the decimal or currency renderer adds the fractional part;
//   - the formatter appends the only-word and applies the case.
//
// Configuration is split into Options (behaviour) and Words (vocabulary).
// Both are plain values. A Converter holds a base configuration and each call
// may override parts of it with Option values, so nothing leaks between calls.
//
// # Usage
//
//	c := numwords.New(numwords.WithIndianStyle(false))
//
//	s, err := c.ToWords(1200000)
//	// s == "one million two hundred thousand"
//
//	s, err = c.ToWords(12.25,
//		numwords.WithCurrency(true),
//		numwords.WithIntegerOnly(false),
//		numwords.WithMajorCurrencySymbol("dollars"),
//		numwords.WithMinorCurrencySymbol("cents"),
//	)
//	// s == "dollars twelve and twenty five cents"
//
// Words are merged shallowly: WithWords replaces each field it sets as a whole.
// Overriding BigAmountWords with a map holding only "million" drops the other
// big amount words for that call.
//
// # Dynamic input
//
// ParseNumber, DecodeOverrides and DecodeWords accept values decoded from JSON
// or YAML documents and apply the same checks the library applies to loosely
// typed callers, such as "majorCurrencySymbol must be a string".
//
// # Legacy globals
//
// The package-level ToWords, ToIndianWords and ToInternationalWords read the
// mutable GlobalOptions and GlobalWords, which ResetOptions restores. They
// exist for callers written against process-wide defaults and are not
// synchronized. New code should build a Converter.
//
// # Error Handling
//
//	if errors.Is(err, numwords.ErrInvalidInput) {
//	    // err.Error() names the offending value or option
//	}
package numwords
