// Package sanitize validates user and network supplied strings before they
// reach the external wallet command. Every function reports invalid input
// with a false second return value and never panics.
package sanitize

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of one XCH.
const Decimals = 12

// MaxDigits bounds both the exponent and the integer part of a parsed
// amount. Larger inputs are rejected before anything is expanded.
const MaxDigits = 64

var addressPattern = regexp.MustCompile(`^[a-z0-9]{62}$`)

// Address accepts only 62 character lowercase alphanumeric tokens. No
// checksum is verified. Case is not folded here: callers that want a
// case-insensitive check lower the input themselves.
func Address(s string) (string, bool) {
	if !addressPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// AmountMajor parses s as a real number of XCH and returns it formatted with
// exactly 12 decimals. Zero is a syntactically valid amount.
func AmountMajor(s string) (string, bool) {
	d, ok := ParseMajor(s)
	if !ok {
		return "", false
	}
	return d.StringFixed(Decimals), true
}

// ParseMajor is the typed counterpart of AmountMajor.
func ParseMajor(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	exp := int64(d.Exponent())
	if exp < -MaxDigits || exp > MaxDigits {
		return decimal.Decimal{}, false
	}
	digits := int64(len(new(big.Int).Abs(d.Coefficient()).String()))
	if digits+exp > MaxDigits {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Integer checks that s is a base 10 integer and returns s itself, not a
// re-serialized number. Surrounding whitespace and a sign are tolerated.
func Integer(s string) (string, bool) {
	if _, ok := ParseInteger(s); !ok {
		return "", false
	}
	return s, true
}

// ParseInteger is the typed counterpart of Integer.
func ParseInteger(s string) (*big.Int, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, false
	}
	// big.Int.SetString with base 10 rejects "0x" prefixes and underscores,
	// which is what we want for amounts typed on a command line.
	n, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return nil, false
	}
	return n, true
}
