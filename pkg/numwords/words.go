package numwords

import (
	"maps"
	"slices"
)

// Keys of Words.SmallAmountWords.
const (
	Hundred  = "hundred"
	Thousand = "thousand"
)

// Keys of Words.BigAmountWords. Lakh and crore are read in Indian style only,
// million, billion and trillion in international style only.
const (
	Lakh     = "lakh"
	Crore    = "crore"
	Million  = "million"
	Billion  = "billion"
	Trillion = "trillion"
)

// Words is the vocabulary used to render numbers.
type Words struct {
	// UnitWords holds zero to nineteen, indexed by value.
	UnitWords []string `json:"unitWords,omitempty" yaml:"unitWords,omitempty"`
	// TenWords holds twenty to ninety at indices 2 to 9. Indices 0 and 1 are never read.
	TenWords         []string          `json:"tenWords,omitempty" yaml:"tenWords,omitempty"`
	SmallAmountWords map[string]string `json:"smallAmountWords,omitempty" yaml:"smallAmountWords,omitempty"`
	BigAmountWords   map[string]string `json:"bigAmountWords,omitempty" yaml:"bigAmountWords,omitempty"`
	// AndWord joins hundreds with the rest of a group and major with minor currency.
	AndWord      string `json:"andWord,omitempty" yaml:"andWord,omitempty"`
	PointWord    string `json:"pointWord,omitempty" yaml:"pointWord,omitempty"`
	OnlyWord     string `json:"onlyWord,omitempty" yaml:"onlyWord,omitempty"`
	NegativeWord string `json:"negativeWord,omitempty" yaml:"negativeWord,omitempty"`

	// explicit marks scalar words a decoded document set, so Merge applies
	// them even when empty.
	explicit wordField
}

type wordField uint8

const (
	andWordSet wordField = 1 << iota
	pointWordSet
	onlyWordSet
	negativeWordSet
)

// DefaultWords returns a fresh copy of the English vocabulary.
func DefaultWords() Words {
	return Words{
		UnitWords: []string{
			"zero", "one", "two", "three", "four",
			"five", "six", "seven", "eight", "nine",
			"ten", "eleven", "twelve", "thirteen", "fourteen",
			"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
		},
		TenWords: []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
		SmallAmountWords: map[string]string{
			Hundred:  "hundred",
			Thousand: "thousand",
		},
		BigAmountWords: map[string]string{
			Lakh:     "lakh",
			Crore:    "crore",
			Million:  "million",
			Billion:  "billion",
			Trillion: "trillion",
		},
		AndWord:      "and",
		PointWord:    "point",
		OnlyWord:     "only",
		NegativeWord: "minus",
	}
}

// Merge returns w with every non-zero field of override replacing the whole
// field. Maps and slices are replaced, never merged key by key: an override
// BigAmountWords holding only "million" leaves "lakh" and "crore" unset.
// Scalar words read by DecodeWords replace w even when empty, so a document
// holding andWord: "" drops the word. The result keeps those marks and can
// be merged again.
func (w Words) Merge(override Words) Words {
	if override.UnitWords != nil {
		w.UnitWords = override.UnitWords
	}
	if override.TenWords != nil {
		w.TenWords = override.TenWords
	}
	if override.SmallAmountWords != nil {
		w.SmallAmountWords = override.SmallAmountWords
	}
	if override.BigAmountWords != nil {
		w.BigAmountWords = override.BigAmountWords
	}
	mergeWord(&w.AndWord, override.AndWord, override.explicit&andWordSet != 0)
	mergeWord(&w.PointWord, override.PointWord, override.explicit&pointWordSet != 0)
	mergeWord(&w.OnlyWord, override.OnlyWord, override.explicit&onlyWordSet != 0)
	mergeWord(&w.NegativeWord, override.NegativeWord, override.explicit&negativeWordSet != 0)
	w.explicit |= override.explicit
	return w
}

func mergeWord(dst *string, src string, explicit bool) {
	if src != "" || explicit {
		*dst = src
	}
}

// Clone returns a deep copy of w.
func (w Words) Clone() Words {
	w.UnitWords = slices.Clone(w.UnitWords)
	w.TenWords = slices.Clone(w.TenWords)
	w.SmallAmountWords = maps.Clone(w.SmallAmountWords)
	w.BigAmountWords = maps.Clone(w.BigAmountWords)
	return w
}

func (w Words) unit(n int) string {
	if n < 0 || n >= len(w.UnitWords) {
		return ""
	}
	return w.UnitWords[n]
}

func (w Words) ten(n int) string {
	if n < 2 || n >= len(w.TenWords) {
		return ""
	}
	return w.TenWords[n]
}
