package units

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/namesdao/namesdao-cli/sanitize"
)

// FeeKind tags which denomination a Fee was declared in.
type FeeKind uint8

const (
	FeeUnset FeeKind = iota
	FeeMajor
	FeeMinor
)

func (k FeeKind) String() string {
	switch k {
	case FeeMajor:
		return "xch"
	case FeeMinor:
		return "mojos"
	default:
		return "default"
	}
}

// Fee is the user declared network fee. Exactly one denomination is the
// source of truth; the other is derived by ReconcileFee.
type Fee struct {
	Kind  FeeKind
	major decimal.Decimal
	minor *big.Int
}

func FeeFromMajor(d decimal.Decimal) Fee { return Fee{Kind: FeeMajor, major: d} }

func FeeFromMinor(n *big.Int) Fee { return Fee{Kind: FeeMinor, minor: new(big.Int).Set(n)} }

// ParseFee builds a Fee from the optional --fee (XCH) and --Fee (mojos)
// inputs. A mojo value always takes precedence, so a malformed XCH value is
// ignored when mojos are supplied. A supplied value that fails to parse is
// an error, never a silent fallback to the default.
func ParseFee(major, minor *string) (Fee, error) {
	if minor != nil {
		n, ok := sanitize.ParseInteger(*minor)
		if !ok {
			return Fee{}, &ValidationError{Field: "network transaction fee", Unit: UnitMojo, Input: *minor, Err: ErrNotANumber}
		}
		if n.Sign() < 0 {
			return Fee{}, &ValidationError{Field: "network transaction fee", Unit: UnitMojo, Input: *minor, Err: ErrNegative}
		}
		return FeeFromMinor(n), nil
	}
	if major != nil {
		d, ok := sanitize.ParseMajor(*major)
		if !ok {
			return Fee{}, &ValidationError{Field: "network transaction fee", Unit: UnitXCH, Input: *major, Err: ErrNotANumber}
		}
		if d.IsNegative() {
			return Fee{}, &ValidationError{Field: "network transaction fee", Unit: UnitXCH, Input: *major, Err: ErrNegative}
		}
		return FeeFromMajor(d), nil
	}
	return Fee{}, nil
}

// ReconcileFee returns the canonical pair for f.
func ReconcileFee(f Fee) Canonical {
	switch f.Kind {
	case FeeMinor:
		return fromMinor(f.minor)
	case FeeMajor:
		return fromMajor(f.major)
	default:
		return fromMinor(big.NewInt(DefaultFeeMinor))
	}
}
