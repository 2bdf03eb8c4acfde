package numwords

import "slices"

// Process-wide defaults read by the package-level ToWords, ToIndianWords and
// ToInternationalWords. Callers may modify them in place; every later
// package-level call sees the change until ResetOptions runs. Access is not
// synchronized.
//
// Deprecated: build a Converter with New, or pass options per call.
var (
	GlobalOptions = DefaultOptions()
	GlobalWords   = DefaultWords()
)

// ResetOptions restores GlobalOptions and GlobalWords to the library defaults.
//
// Deprecated: build a Converter with New, or pass options per call.
func ResetOptions() {
	GlobalOptions = DefaultOptions()
	GlobalWords = DefaultWords()
}

// ToWords converts number using GlobalOptions and GlobalWords as the base
// configuration, with opts applied for this call only.
func ToWords(number float64, opts ...Option) (string, error) {
	s := settings{options: GlobalOptions, words: GlobalWords, logger: discardLogger}
	s.apply(opts)
	return convert(number, s)
}

// ToIndianWords is ToWords with Indian grouping forced on.
func ToIndianWords(number float64, opts ...Option) (string, error) {
	return ToWords(number, append(slices.Clip(opts), WithIndianStyle(true))...)
}

// ToInternationalWords is ToWords with international grouping forced on.
func ToInternationalWords(number float64, opts ...Option) (string, error) {
	return ToWords(number, append(slices.Clip(opts), WithIndianStyle(false))...)
}
