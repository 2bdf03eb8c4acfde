package numwords_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/numwords/pkg/numwords"
)

func ExampleConverter_ToWords() {
	c := numwords.New()

	s, _ := c.ToWords(123456789)
	fmt.Println(s)

	s, _ = c.ToInternationalWords(1200000, numwords.WithComma(true), numwords.WithOnly(true))
	fmt.Println(s)

	// Output:
	// twelve crore thirty four lakh fifty six thousand seven hundred eighty nine
	// one million, two hundred thousand only
}

func ExampleWithCurrency() {
	c := numwords.New(
		numwords.WithCurrency(true),
		numwords.WithIntegerOnly(false),
		numwords.WithMajorCurrencySymbol("dollars"),
		numwords.WithMinorCurrencySymbol("cents"),
		numwords.WithCase(numwords.CaseSentence),
	)

	s, _ := c.ToWords(12.25)
	fmt.Println(s)
	// Output: Dollars twelve and twenty five cents
}

func ExampleErrInvalidInput() {
	_, err := numwords.New().ToWords(42, numwords.WithDecimalPlaces(12))
	if errors.Is(err, numwords.ErrInvalidInput) {
		fmt.Println(err)
	}
	// Output: decimalPlaces must be an integer between 0 and 10
}
