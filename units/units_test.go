package units_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namesdao/namesdao-cli/units"
)

func str(s string) *string { return &s }

func TestFeeDefaultsToOneMojo(t *testing.T) {
	fee, err := units.ParseFee(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, units.FeeUnset, fee.Kind)

	c := units.ReconcileFee(fee)
	assert.Equal(t, "0.000000000001", c.Major)
	assert.Equal(t, "1", c.Minor)
}

func TestFeeFromMojos(t *testing.T) {
	fee, err := units.ParseFee(nil, str("2500"))
	require.NoError(t, err)
	c := units.ReconcileFee(fee)
	assert.Equal(t, "0.000000002500", c.Major)
	assert.Equal(t, "2500", c.Minor)
}

func TestFeeFromXCH(t *testing.T) {
	fee, err := units.ParseFee(str("0.0000000001"), nil)
	require.NoError(t, err)
	c := units.ReconcileFee(fee)
	assert.Equal(t, "0.000000000100", c.Major)
	assert.Equal(t, "100", c.Minor)
}

// Mojos always win over XCH, whatever the two values are.
func TestFeeMojosTakePrecedence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		m := r.Int63n(1_000_000_000_000)
		f := fmt.Sprintf("%d.%06d", r.Intn(5), r.Intn(1_000_000))

		fee, err := units.ParseFee(str(f), str(fmt.Sprint(m)))
		require.NoError(t, err)
		assert.Equal(t, units.FeeMinor, fee.Kind)

		c := units.ReconcileFee(fee)
		assert.Equal(t, fmt.Sprint(m), c.Minor)
		assert.Equal(t, fmt.Sprintf("0.%012d", m), c.Major)
	}
}

func TestFeeMojosWinEvenOverMalformedXCH(t *testing.T) {
	fee, err := units.ParseFee(str("lots"), str("3"))
	require.NoError(t, err)
	assert.Equal(t, "3", units.ReconcileFee(fee).Minor)
}

func TestFeeErrorsNameTheDenomination(t *testing.T) {
	_, err := units.ParseFee(nil, str("0.5"))
	var verr *units.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, units.UnitMojo, verr.Unit)
	assert.ErrorIs(t, err, units.ErrNotANumber)
	assert.Contains(t, err.Error(), "mojos")

	_, err = units.ParseFee(str("abc"), nil)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, units.UnitXCH, verr.Unit)
	assert.Contains(t, err.Error(), "XCH")
}

func TestFeeRejectsNegatives(t *testing.T) {
	_, err := units.ParseFee(nil, str("-1"))
	assert.ErrorIs(t, err, units.ErrNegative)
	_, err = units.ParseFee(str("-0.1"), nil)
	assert.ErrorIs(t, err, units.ErrNegative)
}

func TestAmountDefaultsToOneMojo(t *testing.T) {
	c, err := units.ParseAmount(nil)
	require.NoError(t, err)
	assert.Equal(t, "0.000000000001", c.Major)
	assert.Equal(t, "1", c.Minor)
}

func TestAmountRejectsZero(t *testing.T) {
	for _, in := range []string{"0", "0.0", "0.000000000000", "-0", "0.0000000000001"} {
		_, err := units.ParseAmount(str(in))
		assert.ErrorIs(t, err, units.ErrZeroAmount, in)
	}
}

func TestAmountParses(t *testing.T) {
	c, err := units.ParseAmount(str("0.018"))
	require.NoError(t, err)
	assert.Equal(t, "0.018000000000", c.Major)
	assert.Equal(t, "18000000000", c.Minor)
}

func TestAmountRejectsGarbage(t *testing.T) {
	_, err := units.ParseAmount(str("one"))
	assert.ErrorIs(t, err, units.ErrNotANumber)
	assert.Contains(t, err.Error(), "amount")

	_, err = units.ParseAmount(str("-2"))
	assert.ErrorIs(t, err, units.ErrNegative)
}
