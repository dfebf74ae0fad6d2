// Package domain holds domain logic and errors for the quotes feature.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrQuoteNotFound indicates the requested security id has no quote row.
var ErrQuoteNotFound = errors.New("quote not found")

// ErrUnparsablePrice indicates a price text that does not follow the feed's
// decimal convention.
var ErrUnparsablePrice = errors.New("price text is not a valid decimal")

// ParsePrice converts a feed price text into a decimal.
//
// The canonical locale for the feed is European formatting: "." groups
// thousands and "," separates decimals ("1.234,56"). Plain dot-decimal text
// ("1234.56") is also accepted so that rows normalized by older ingestion
// runs keep parsing. Validation happens here, once, at ingestion time; the
// trade path only re-runs this to detect rows that bypassed ingestion.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Decimal{}, ErrUnparsablePrice
	}

	if strings.Contains(s, ",") {
		// European convention: strip grouping dots, comma becomes the point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		if strings.Contains(s, ",") {
			return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnparsablePrice, text)
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnparsablePrice, text)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative price %q", ErrUnparsablePrice, text)
	}
	return d, nil
}
