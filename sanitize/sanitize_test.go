package sanitize_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namesdao/namesdao-cli/sanitize"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomAddress(r *rand.Rand) string {
	b := make([]byte, 62)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestAddressAcceptsEveryWellFormedToken(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := randomAddress(r)
		got, ok := sanitize.Address(a)
		require.True(t, ok, a)
		assert.Equal(t, a, got)
	}
}

func TestAddressRejectsMalformedTokens(t *testing.T) {
	valid := "xch1jhye8dmkhree0zr8t09rlzm9cc82mhuqtp5tlmsj4kuqvs69s2wsl90su4"
	require.Len(t, valid, 62)

	cases := map[string]string{
		"empty":       "",
		"short":       valid[:61],
		"long":        valid + "a",
		"uppercase":   strings.ToUpper(valid),
		"one upper":   "X" + valid[1:],
		"punctuation": valid[:61] + "-",
		"space":       " " + valid[1:],
		"newline":     valid[:61] + "\n",
		"name":        "hello.xch",
	}
	for label, in := range cases {
		_, ok := sanitize.Address(in)
		assert.False(t, ok, label)
	}
}

func TestAmountMajorFormatsTwelveDecimals(t *testing.T) {
	cases := map[string]string{
		"1":                 "1.000000000000",
		"0.018":             "0.018000000000",
		"0.000000000001":    "0.000000000001",
		" 2.5 ":             "2.500000000000",
		"1e-3":              "0.001000000000",
		"0":                 "0.000000000000",
		"0.0":               "0.000000000000",
		"0.000000000000":    "0.000000000000",
		"-1":                "-1.000000000000",
		"0.0000000000015":   "0.000000000002",
		"12345678.9":        "12345678.900000000000",
	}
	for in, want := range cases {
		got, ok := sanitize.AmountMajor(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestAmountMajorRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1,5", "0x10", "1.2.3", "NaN", "Inf"} {
		_, ok := sanitize.AmountMajor(in)
		assert.False(t, ok, in)
	}
}

func TestAmountMajorRejectsHugeMagnitudes(t *testing.T) {
	for _, in := range []string{
		"1e100000000",
		"1e-100000000",
		"1e65",
		"1" + strings.Repeat("0", 65),
		"-9e99999",
	} {
		_, ok := sanitize.AmountMajor(in)
		assert.False(t, ok, in)
		_, ok = sanitize.ParseMajor(in)
		assert.False(t, ok, in)
	}

	got, ok := sanitize.AmountMajor("1e63")
	require.True(t, ok)
	assert.Equal(t, "1"+strings.Repeat("0", 63)+".000000000000", got)
}

func TestIntegerReturnsOriginalString(t *testing.T) {
	for _, in := range []string{"1", "007", " 42 ", "+5", "-3", "1000000000000000000000000"} {
		got, ok := sanitize.Integer(in)
		require.True(t, ok, in)
		assert.Equal(t, in, got)
	}
}

func TestIntegerRejectsNonIntegers(t *testing.T) {
	for _, in := range []string{"", "1.0", "1e3", "0x10", "1_000", "ten"} {
		_, ok := sanitize.Integer(in)
		assert.False(t, ok, in)
	}
}
