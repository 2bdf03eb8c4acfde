package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numwords/pkg/config"
	"github.com/dmitrymomot/numwords/pkg/numwords"
)

// run executes the CLI with args. The configuration cache is process wide,
// so these tests run serially.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default pack", []string{"1201"}, "one thousand two hundred one\n"},
		{"several numbers", []string{"1", "1200000"}, "one\ntwelve lakh\n"},
		{"international", []string{"--international", "--comma", "1200000"}, "one million, two hundred thousand\n"},
		{"indian over pack", []string{"--lang", "en", "--indian", "1200000"}, "twelve lakh\n"},
		{"language", []string{"--lang", "hi-latn", "--and", "1201"}, "ek hazaar do sau aur ek\n"},
		{"currency", []string{"--currency", "--decimals", "-l", "en", "12.25"}, "dollars twelve and twenty five cents\n"},
		{"currency names", []string{"--currency", "--decimals", "--major", "euros", "--minor", "cents", "--major-at-end", "3.5"}, "three euros and fifty cents\n"},
		{"case and only", []string{"--case", "sentence", "--only", "--", "-42"}, "Minus forty two only\n"},
		{"decimal places", []string{"--decimals", "--places", "3", "0.125"}, "zero point one two five\n"},
		{"options document", []string{"--options", `{"useAnd": true}`, "1101"}, "one thousand one hundred and one\n"},
		{"flags win over options document", []string{"--options", `{"useAnd": true}`, "--and=false", "1101"}, "one thousand one hundred one\n"},
		{"words file", []string{"--and", "--only", "--words-file", "testdata/words.yaml", "1201"}, "one thousand two hundred & one exactly\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
		invalid bool
	}{
		{"not a number", []string{"abc"}, "Invalid number: abc", true},
		{"places out of range", []string{"--places", "11", "1"}, "decimalPlaces must be an integer between 0 and 10", true},
		{"unknown case", []string{"--case", "camel", "1"}, "Invalid useCase: camel", true},
		{"options not an object", []string{"--options", "[1]", "1"}, "Options must be an object", true},
		{"unknown language", []string{"--lang", "fr", "1"}, "language not supported: fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.EqualError(t, err, tt.message)
			assert.Equal(t, tt.invalid, errors.Is(err, numwords.ErrInvalidInput))
		})
	}

	t.Run("exclusive styles", func(t *testing.T) {
		_, err := run(t, "--indian", "--international", "1")
		assert.Error(t, err)
	})

	t.Run("missing number", func(t *testing.T) {
		_, err := run(t)
		assert.Error(t, err)
	})

	t.Run("missing words file", func(t *testing.T) {
		_, err := run(t, "--words-file", "testdata/missing.yaml", "1")
		assert.ErrorContains(t, err, "--words-file")
	})
}

func TestConvert_Environment(t *testing.T) {
	t.Setenv("NUMWORDS_OPT_USE_COMMA", "true")
	t.Setenv("NUMWORDS_LANGUAGE", "en")

	got, err := run(t, "1200000")
	require.NoError(t, err)
	assert.Equal(t, "one million, two hundred thousand\n", got)

	got, err = run(t, "--comma=false", "1200000")
	require.NoError(t, err)
	assert.Equal(t, "one million two hundred thousand\n", got)
}

func TestConvert_InvalidEnvironment(t *testing.T) {
	t.Setenv("NUMWORDS_LOG_LEVEL", "loud")

	_, err := run(t, "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLanguages(t *testing.T) {
	got, err := run(t, "languages")
	require.NoError(t, err)
	assert.Equal(t, "en\nen-in (default)\nhi-latn\n", got)
}
