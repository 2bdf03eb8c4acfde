package numwords

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// toUpper builds a fresh Caser per call; a Caser must not be shared between goroutines.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// finish appends the only-word to a non-empty result and applies the case.
func finish(result string, opts Options, words Words) string {
	if opts.UseOnlyWord && result != "" {
		result += " " + words.OnlyWord
	}
	return ApplyCase(result, opts.UseCase)
}

// ApplyCase changes the letter case of s. Unknown cases leave s unchanged.
// Applying the same case twice gives the same result as applying it once.
func ApplyCase(s string, c Case) string {
	switch c.Normalize() {
	case CaseUpper:
		return toUpper(s)
	case CaseProper:
		tokens := strings.Split(s, " ")
		for i, t := range tokens {
			tokens[i] = upperFirst(t)
		}
		return strings.Join(tokens, " ")
	case CaseSentence:
		return upperFirst(s)
	}
	return s
}

// upperFirst uppercases the first letter of s and keeps the rest as is.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return toUpper(string(r)) + s[size:]
}
