package units

import (
	"github.com/namesdao/namesdao-cli/sanitize"
)

// ParseAmount turns the optional --amount input (XCH) into its canonical
// pair. Absent means the smallest representable amount. Zero, in any
// spelling, is rejected, as are negative amounts.
func ParseAmount(major *string) (Canonical, error) {
	if major == nil {
		d, _ := sanitize.ParseMajor(MinimalAmount)
		return fromMajor(d), nil
	}
	d, ok := sanitize.ParseMajor(*major)
	if !ok {
		return Canonical{}, &ValidationError{Field: "amount", Unit: UnitXCH, Input: *major, Err: ErrNotANumber}
	}
	if d.IsNegative() {
		return Canonical{}, &ValidationError{Field: "amount", Unit: UnitXCH, Input: *major, Err: ErrNegative}
	}
	c := fromMajor(d)
	if c.IsZero() {
		return Canonical{}, &ValidationError{Field: "amount", Unit: UnitXCH, Input: *major, Err: ErrZeroAmount}
	}
	return c, nil
}
