// Package units reconciles the two denominations a user can type an XCH
// quantity in: the fractional major unit (XCH, 12 decimals) and the integer
// minor unit (mojo, 10^-12 XCH).
package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/namesdao/namesdao-cli/sanitize"
)

const (
	// Decimals is the number of mojo digits in one XCH.
	Decimals = sanitize.Decimals
	// DefaultFeeMinor is the fee used when the user gives none.
	DefaultFeeMinor = 1
	// MinimalAmount is the amount sent when the user gives none.
	MinimalAmount = "0.000000000001"
)

// Unit names the denomination an input was given in.
type Unit string

const (
	UnitXCH  Unit = "XCH"
	UnitMojo Unit = "mojos"
)

var (
	ErrNotANumber = errors.New("not a number")
	ErrZeroAmount = errors.New("amount must be higher than 0")
	ErrNegative   = errors.New("must not be negative")
)

// ValidationError reports which field and which denomination of a user
// supplied quantity could not be used.
type ValidationError struct {
	Field string
	Unit  Unit
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrZeroAmount):
		return fmt.Sprintf("please provide an %s higher than %s (10^-12) XCH", e.Field, MinimalAmount)
	case errors.Is(e.Err, ErrNegative):
		return fmt.Sprintf("the %s (in %s) must not be negative, got %q", e.Field, e.Unit, e.Input)
	default:
		return fmt.Sprintf("please use a number to indicate the %s (in %s), got %q", e.Field, e.Unit, e.Input)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Canonical is a quantity expressed in both denominations.
type Canonical struct {
	Major string // XCH, exactly 12 decimals
	Minor string // mojos, base 10 integer
}

// IsZero reports whether the quantity is zero.
func (c Canonical) IsZero() bool {
	n, ok := new(big.Int).SetString(c.Minor, 10)
	return ok && n.Sign() == 0
}

func fromMinor(n *big.Int) Canonical {
	return Canonical{
		Major: decimal.NewFromBigInt(n, -Decimals).StringFixed(Decimals),
		Minor: n.String(),
	}
}

func fromMajor(d decimal.Decimal) Canonical {
	rounded := d.Round(Decimals)
	return Canonical{
		Major: rounded.StringFixed(Decimals),
		Minor: rounded.Shift(Decimals).Round(0).BigInt().String(),
	}
}
