// Package sender hands a sanitized transaction to the external Chia wallet.
// Nothing in here moves funds itself.
package sender

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const DefaultProgram = "chia"

var ErrSendFailed = errors.New("wallet send failed")

// Tx is the sanitized tuple passed to the wallet. Amount and Fee are XCH
// decimal strings. Memo is either shell quoted or a :register: payload.
type Tx struct {
	Address string
	Amount  string
	Fee     string
	Memo    *string
}

type Sender interface {
	Send(ctx context.Context, tx Tx) error
}

// Args is the argv after the program name.
func Args(tx Tx) []string {
	args := []string{
		"wallet", "send",
		"-t", tx.Address,
		"-a", tx.Amount,
		"-m", tx.Fee,
		"--override",
	}
	if tx.Memo != nil {
		args = append(args, "-e", *tx.Memo)
	}
	return args
}

// Chia runs the chia command line wallet. Stdin is inherited so the wallet
// can still prompt for a fingerprint.
type Chia struct {
	Program string
	Stdout  io.Writer
	Stderr  io.Writer
}

func (c *Chia) program() string {
	if c.Program == "" {
		return DefaultProgram
	}
	return c.Program
}

// Command builds the exec.Cmd without running it.
func (c *Chia) Command(ctx context.Context, tx Tx) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.program(), Args(tx)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd
}

func (c *Chia) Send(ctx context.Context, tx Tx) error {
	if err := c.Command(ctx, tx).Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSendFailed, c.program(), err)
	}
	return nil
}
