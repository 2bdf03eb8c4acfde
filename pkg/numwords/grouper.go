package numwords

import (
	"math"
	"strings"
)

// magnitude is one named place-value group.
type magnitude struct {
	value float64
	key   string
	small bool // looked up in SmallAmountWords instead of BigAmountWords
}

// Magnitudes are listed from largest to smallest. Hundreds are handled by
// the hundreds renderer and are not listed.
var (
	indianMagnitudes = []magnitude{
		{value: 1e7, key: Crore},
		{value: 1e5, key: Lakh},
		{value: 1e3, key: Thousand, small: true},
	}
	internationalMagnitudes = []magnitude{
		{value: 1e12, key: Trillion},
		{value: 1e9, key: Billion},
		{value: 1e6, key: Million},
		{value: 1e3, key: Thousand, small: true},
	}
)

// renderer turns non-negative integers into words for a single call.
type renderer struct {
	opts  Options
	words Words
}

func (r renderer) magnitudes() []magnitude {
	if r.opts.UseIndianStyle {
		return indianMagnitudes
	}
	return internationalMagnitudes
}

func (r renderer) scaleWord(m magnitude) string {
	if m.small {
		return r.words.SmallAmountWords[m.key]
	}
	return r.words.BigAmountWords[m.key]
}

// integer renders a whole number, prefixing the negative word when needed.
func (r renderer) integer(value float64) string {
	if value < 0 {
		return joinWords(r.words.NegativeWord, r.integer(-value))
	}
	if value == 0 {
		return r.words.unit(0)
	}
	return r.groups(value)
}

// groups renders value > 0 group by group, largest magnitude first. The
// multiplier of each group is rendered by groups itself, so 10^15 in Indian
// style reads "ten crore crore".
func (r renderer) groups(value float64) string {
	var b strings.Builder
	// "and" before the last hundreds group only when there was more than one group.
	needsAnd := value > 999
	needsComma := false

	for _, m := range r.magnitudes() {
		if value < m.value {
			continue
		}
		if r.opts.UseComma && needsComma {
			trimTrailing(&b)
			b.WriteString(", ")
		}
		writeWords(&b, r.groups(math.Trunc(value/m.value)), r.scaleWord(m))
		value = math.Mod(value, m.value)
		needsComma = true
	}

	if value != 0 {
		if r.opts.UseComma && needsComma && value > 99 && math.Mod(value, 100) != 0 {
			trimTrailing(&b)
			b.WriteString(", ")
		}
		writeWords(&b, r.hundreds(int(value), needsAnd))
	}
	return strings.TrimSpace(b.String())
}

// hundreds renders n in [0, 999]. The and-word is written at most once,
// right before the first word below one hundred, and only when a hundreds
// part precedes it or the caller asks for it.
func (r renderer) hundreds(n int, needsAnd bool) string {
	var parts []string
	and := func() {
		if r.opts.UseAnd && needsAnd {
			parts = append(parts, r.words.AndWord)
			needsAnd = false
		}
	}

	if h := n / 100; h > 0 {
		parts = append(parts, r.hundreds(h, false), r.words.SmallAmountWords[Hundred])
		n %= 100
		needsAnd = true
	}
	if n > 19 {
		and()
		parts = append(parts, r.words.ten(n/10))
		n %= 10
	}
	if n > 0 {
		and()
		parts = append(parts, r.words.unit(n))
	}
	return joinWords(parts...)
}

// joinWords joins the non-empty words with single spaces.
func joinWords(words ...string) string {
	var b strings.Builder
	writeWords(&b, words...)
	return strings.TrimSpace(b.String())
}

// writeWords appends each non-empty word followed by a space.
func writeWords(b *strings.Builder, words ...string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(w)
		b.WriteByte(' ')
	}
}

func trimTrailing(b *strings.Builder) {
	s := strings.TrimSpace(b.String())
	b.Reset()
	b.WriteString(s)
}
