package numwords

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a dynamically typed value, such as a decoded JSON
// field or a command line argument, into a number. Numeric strings are
// accepted. Anything else fails with ErrInvalidInput.
func ParseNumber(v any) (float64, error) {
	var (
		n  float64
		ok = true
	)
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case int32:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint64:
		n = float64(x)
	case uint32:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		n, ok = f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		n, ok = f, err == nil
	default:
		ok = false
	}

	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, invalidInput("Invalid number: " + describe(v))
	}
	return n, nil
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return formatNumber(x)
	}
	return fmt.Sprint(v)
}

// DecodeOverrides reads option overrides from a decoded JSON or YAML
// document. A nil document yields no overrides. Unknown keys are ignored.
func DecodeOverrides(v any) (Overrides, error) {
	var o Overrides
	if v == nil {
		return o, nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return o, invalidInput("Options must be an object")
	}

	if raw, present := doc["useCase"]; present {
		s, ok := raw.(string)
		c := Case(s)
		if !ok || !c.IsValid() {
			return Overrides{}, invalidInput(fmt.Sprintf("Invalid useCase: %v", raw))
		}
		o.UseCase = &c
	}

	for _, f := range []struct {
		key string
		dst **string
	}{
		{"majorCurrencySymbol", &o.MajorCurrencySymbol},
		{"minorCurrencySymbol", &o.MinorCurrencySymbol},
	} {
		raw, present := doc[f.key]
		if !present {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return Overrides{}, invalidInput(f.key + " must be a string")
		}
		*f.dst = &s
	}

	if raw, present := doc["decimalPlaces"]; present {
		n, ok := integer(raw)
		if !ok || n < 0 || n > MaxDecimalPlaces {
			return Overrides{}, invalidInput(errDecimalPlaces)
		}
		o.DecimalPlaces = &n
	}

	for _, f := range []struct {
		key string
		dst **bool
	}{
		{"integerOnly", &o.IntegerOnly},
		{"useComma", &o.UseComma},
		{"useAnd", &o.UseAnd},
		{"useOnlyWord", &o.UseOnlyWord},
		{"useIndianStyle", &o.UseIndianStyle},
		{"useCurrency", &o.UseCurrency},
		{"majorCurrencyAtEnd", &o.MajorCurrencyAtEnd},
		{"minorCurrencyAtEnd", &o.MinorCurrencyAtEnd},
		{"suppressMajorIfZero", &o.SuppressMajorIfZero},
		{"suppressMinorIfZero", &o.SuppressMinorIfZero},
	} {
		raw, present := doc[f.key]
		if !present {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			return Overrides{}, invalidInput(f.key + " must be a boolean")
		}
		*f.dst = &b
	}
	return o, nil
}

// integer reports v as an int when it holds a whole number.
func integer(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case uint64:
		return int(x), true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case json.Number:
		n, err := x.Int64()
		return int(n), err == nil
	}
	return 0, false
}

// DecodeWords reads word overrides from a decoded JSON or YAML document.
// A nil document yields no overrides. Unknown keys are ignored. Null list
// entries decode as empty words, which suits the unused tenWords slots.
func DecodeWords(v any) (Words, error) {
	var w Words
	if v == nil {
		return w, nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return w, invalidInput("Words must be an object")
	}

	var err error
	if w.UnitWords, err = stringList(doc, "unitWords"); err != nil {
		return Words{}, err
	}
	if w.TenWords, err = stringList(doc, "tenWords"); err != nil {
		return Words{}, err
	}
	if w.SmallAmountWords, err = stringMap(doc, "smallAmountWords"); err != nil {
		return Words{}, err
	}
	if w.BigAmountWords, err = stringMap(doc, "bigAmountWords"); err != nil {
		return Words{}, err
	}
	for _, f := range []struct {
		key  string
		dst  *string
		flag wordField
	}{
		{"andWord", &w.AndWord, andWordSet},
		{"pointWord", &w.PointWord, pointWordSet},
		{"onlyWord", &w.OnlyWord, onlyWordSet},
		{"negativeWord", &w.NegativeWord, negativeWordSet},
	} {
		raw, present := doc[f.key]
		if !present {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return Words{}, invalidInput(f.key + " must be a string")
		}
		*f.dst = s
		w.explicit |= f.flag
	}
	return w, nil
}

func stringList(doc map[string]any, key string) ([]string, error) {
	raw, present := doc[key]
	if !present || raw == nil {
		return nil, nil
	}
	if list, ok := raw.([]string); ok {
		return list, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, invalidInput(key + " must be a list of strings")
	}
	list := make([]string, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		s, ok := item.(string)
		if !ok {
			return nil, invalidInput(key + " must be a list of strings")
		}
		list[i] = s
	}
	return list, nil
}

func stringMap(doc map[string]any, key string) (map[string]string, error) {
	raw, present := doc[key]
	if !present || raw == nil {
		return nil, nil
	}
	if m, ok := raw.(map[string]string); ok {
		return m, nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidInput(key + " must be a map of strings")
	}
	m := make(map[string]string, len(entries))
	for k, item := range entries {
		s, ok := item.(string)
		if !ok {
			return nil, invalidInput(key + " must be a map of strings")
		}
		m[k] = s
	}
	return m, nil
}
