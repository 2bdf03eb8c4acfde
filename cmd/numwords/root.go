package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/numwords/pkg/numwords"
)

// convertFlags mirror the conversion options. Only flags set on the command
// line override the configured options.
type convertFlags struct {
	indian        bool
	international bool
	comma         bool
	and           bool
	only          bool
	decimals      bool
	places        int
	currency      bool
	major         string
	minor         string
	majorAtEnd    bool
	minorAtEnd    bool
	suppressMajor bool
	suppressMinor bool
	useCase       string
	lang          string
	wordsFile     string
	options       string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "numwords <number>...",
		Short: "Convert numbers to words",
		Long: `Convert numbers to words using Indian (lakh, crore) or international
(million, billion) grouping, with optional decimals and currency.

Examples:
  numwords 123456789
  numwords --international --comma 1200000
  numwords --currency --decimals --lang en 12.25
  numwords --case sentence --only -- -42
  numwords --options '{"useAnd": true}' 1101`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, f, args)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Read environment variables from these .env files")

	fl := cmd.Flags()
	fl.BoolVar(&f.indian, "indian", false, "Group with lakh and crore")
	fl.BoolVar(&f.international, "international", false, "Group with million, billion and trillion")
	fl.BoolVar(&f.comma, "comma", false, "Separate groups with commas")
	fl.BoolVar(&f.and, "and", false, "Insert the and word before the last tens")
	fl.BoolVar(&f.only, "only", false, "Append the only word")
	fl.BoolVar(&f.decimals, "decimals", false, "Render the fractional part")
	fl.IntVar(&f.places, "places", 2, "Number of decimal places, 0 to 10")
	fl.BoolVar(&f.currency, "currency", false, "Render as a currency amount")
	fl.StringVar(&f.major, "major", "", "Major currency name")
	fl.StringVar(&f.minor, "minor", "", "Minor currency name")
	fl.BoolVar(&f.majorAtEnd, "major-at-end", false, "Put the major currency name after the amount")
	fl.BoolVar(&f.minorAtEnd, "minor-at-end", true, "Put the minor currency name after the amount")
	fl.BoolVar(&f.suppressMajor, "suppress-major", false, "Omit a zero major part")
	fl.BoolVar(&f.suppressMinor, "suppress-minor", false, "Omit a zero minor part")
	fl.StringVar(&f.useCase, "case", "", "Letter case: lower, upper, proper or sentence")
	fl.StringVarP(&f.lang, "lang", "l", "", "Word pack language, defaults to NUMWORDS_LANGUAGE")
	fl.StringVar(&f.wordsFile, "words-file", "", "YAML or JSON file with word overrides")
	fl.StringVar(&f.options, "options", "", "JSON document with option overrides")
	cmd.MarkFlagsMutuallyExclusive("indian", "international")

	cmd.AddCommand(newLanguagesCmd(a), newServeCmd(a))
	return cmd
}

func runConvert(cmd *cobra.Command, a *app, f *convertFlags, args []string) error {
	book, err := a.book(cmd.Context())
	if err != nil {
		return err
	}
	conv, err := book.Converter(f.lang,
		numwords.WithOverrides(a.cfg.Options),
		numwords.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	opts, err := f.convertOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := numwords.ParseNumber(arg)
		if err != nil {
			return err
		}
		s, err := conv.ToWords(n, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}
	return nil
}

// convertOptions builds an option document from --options and the flags set
// on the command line, and decodes it like any other option document.
func (f *convertFlags) convertOptions(cmd *cobra.Command) ([]numwords.Option, error) {
	doc := make(map[string]any)
	if f.options != "" {
		var parsed any
		if err := json.Unmarshal([]byte(f.options), &parsed); err != nil {
			return nil, fmt.Errorf("--options: %w", err)
		}
		m, ok := parsed.(map[string]any)
		if !ok {
			return nil, &numwords.InvalidInputError{Message: "Options must be an object"}
		}
		doc = m
	}

	changed := cmd.Flags().Changed
	set := func(flag, key string, v any) {
		if changed(flag) {
			doc[key] = v
		}
	}
	set("indian", "useIndianStyle", f.indian)
	set("international", "useIndianStyle", !f.international)
	set("comma", "useComma", f.comma)
	set("and", "useAnd", f.and)
	set("only", "useOnlyWord", f.only)
	set("decimals", "integerOnly", !f.decimals)
	set("places", "decimalPlaces", f.places)
	set("currency", "useCurrency", f.currency)
	set("major", "majorCurrencySymbol", f.major)
	set("minor", "minorCurrencySymbol", f.minor)
	set("major-at-end", "majorCurrencyAtEnd", f.majorAtEnd)
	set("minor-at-end", "minorCurrencyAtEnd", f.minorAtEnd)
	set("suppress-major", "suppressMajorIfZero", f.suppressMajor)
	set("suppress-minor", "suppressMinorIfZero", f.suppressMinor)
	set("case", "useCase", f.useCase)

	overrides, err := numwords.DecodeOverrides(doc)
	if err != nil {
		return nil, err
	}
	opts := []numwords.Option{numwords.WithOverrides(overrides)}

	if f.wordsFile != "" {
		words, err := readWordsFile(f.wordsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, numwords.WithWords(words))
	}
	return opts, nil
}

// readWordsFile decodes a words document. YAML is a superset of JSON, so
// one decoder reads both.
func readWordsFile(path string) (numwords.Words, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return numwords.Words{}, fmt.Errorf("--words-file: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return numwords.Words{}, fmt.Errorf("--words-file %s: %w", path, err)
	}
	return numwords.DecodeWords(doc)
}
