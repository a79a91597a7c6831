// Package intent turns user input plus a resolved address into the
// sanitized transaction handed to the wallet, asking for confirmation first
// unless told not to.
package intent

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/namesdao/namesdao-cli/sender"
)

var (
	// ErrNoAddress is returned when the destination is not a valid address.
	ErrNoAddress = errors.New("sorry, we don't have an address for that name")
	// ErrInvalidIntent means the built intent failed its own validation.
	ErrInvalidIntent = errors.New("invalid transaction intent")
)

// Intent is the fully sanitized transaction. Amounts are carried in both
// denominations, XCH with exactly 12 decimals and mojos as an integer.
type Intent struct {
	Name        string  `validate:"required"`
	Address     string  `validate:"required,len=62,lowercase,alphanum"`
	Amount      string  `validate:"required,numeric"`
	AmountMojos string  `validate:"required,number"`
	Fee         string  `validate:"required,numeric"`
	FeeMojos    string  `validate:"required,number"`
	Memo        *string `validate:"omitnil,min=1"`
	Cloaked     bool
}

// Tx is what the wallet receives.
func (i Intent) Tx() sender.Tx {
	return sender.Tx{
		Address: i.Address,
		Amount:  i.Amount,
		Fee:     i.Fee,
		Memo:    i.Memo,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the struct tags on i.
func (i Intent) Validate() error {
	if err := getValidator().Struct(i); err != nil {
		return errors.Join(ErrInvalidIntent, err)
	}
	return nil
}
