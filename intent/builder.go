package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/namesdao/namesdao-cli/logger"
	"github.com/namesdao/namesdao-cli/memo"
	"github.com/namesdao/namesdao-cli/metrics"
	"github.com/namesdao/namesdao-cli/sanitize"
	"github.com/namesdao/namesdao-cli/sender"
	"github.com/namesdao/namesdao-cli/ui"
	"github.com/namesdao/namesdao-cli/units"
)

type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeDeclined
)

func (o Outcome) String() string {
	if o == OutcomeDeclined {
		return "declined"
	}
	return "sent"
}

// Request is the raw input of one send. Nil quantities were not supplied on
// the command line.
type Request struct {
	// Name is what the user typed, shown in the confirmation.
	Name     string
	Address  string
	Amount   *string
	FeeXCH   *string
	FeeMojos *string
	Memo     string
	Cloak    bool
}

// Builder validates a Request, asks for confirmation and calls Sender.
type Builder struct {
	UI      ui.UI
	Sender  sender.Sender
	Memos   *memo.Preparer
	Yes     bool
	Logger  logger.Logger
	Metrics metrics.Recorder
}

func (b *Builder) log() logger.Logger {
	if b.Logger == nil {
		return logger.NoopLogger{}
	}
	return b.Logger
}

func (b *Builder) recorder() metrics.Recorder {
	if b.Metrics == nil {
		return metrics.NoopRecorder{}
	}
	return b.Metrics
}

// Build sanitizes req without side effects other than memo encryption.
// Quantities are checked before the address: fee, then amount.
func (b *Builder) Build(req Request) (Intent, error) {
	f, err := units.ParseFee(req.FeeXCH, req.FeeMojos)
	if err != nil {
		return Intent{}, err
	}
	fee := units.ReconcileFee(f)

	amount, err := units.ParseAmount(req.Amount)
	if err != nil {
		return Intent{}, err
	}

	address, ok := sanitize.Address(req.Address)
	if !ok {
		return Intent{}, ErrNoAddress
	}

	in := Intent{
		Name:        req.Name,
		Address:     address,
		Amount:      amount.Major,
		AmountMojos: amount.Minor,
		Fee:         fee.Major,
		FeeMojos:    fee.Minor,
	}

	if req.Memo != "" {
		preparer := b.Memos
		if preparer == nil {
			preparer = memo.NewPreparer(nil)
		}
		prepared, err := preparer.Prepare(req.Memo, req.Cloak)
		if err != nil {
			return Intent{}, err
		}
		in.Memo = &prepared.Value
		in.Cloaked = prepared.Cloaked
	}

	if err := in.Validate(); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// Submit builds the intent and, once confirmed, hands it to the sender. A
// declined confirmation is OutcomeDeclined with a nil error.
func (b *Builder) Submit(ctx context.Context, req Request) (Outcome, error) {
	start := time.Now()
	label := "refused"
	defer func() {
		b.recorder().IncCounter("send", map[string]string{"outcome": label})
		b.recorder().ObserveLatency("send", time.Since(start), map[string]string{"outcome": label})
	}()

	in, err := b.Build(req)
	if err != nil {
		b.log().Debug("transaction refused", map[string]any{"name": req.Name, "error": err.Error()})
		return OutcomeDeclined, err
	}
	if in.Cloaked {
		b.UI.Info("Replaced %s for %s", *in.Memo, req.Memo)
	}

	if !b.Yes && !b.confirm(in) {
		label = OutcomeDeclined.String()
		b.log().Info("transaction declined", map[string]any{"name": in.Name})
		return OutcomeDeclined, nil
	}

	b.log().Info("handing transaction to wallet", map[string]any{
		"name":      in.Name,
		"address":   in.Address,
		"amount":    in.Amount,
		"fee_mojos": in.FeeMojos,
		"memo":      in.Memo != nil,
	})
	if err := b.Sender.Send(ctx, in.Tx()); err != nil {
		label = "failed"
		return OutcomeSent, err
	}
	label = OutcomeSent.String()
	return OutcomeSent, nil
}

func (b *Builder) confirm(in Intent) bool {
	u := b.UI
	u.Section("Welcome to Namesdao wallet send")
	u.Info("Namesdao, the Name Service for the Chia Blockchain")
	u.Info("")
	u.Info("%s maps to this XCH address: %s", in.Name, u.Style(ui.Critical(in.Address)))

	rows := [][2]string{
		{"Amount", fmt.Sprintf("%s XCH (%s mojos)", in.Amount, in.AmountMojos)},
		{"Fee", fmt.Sprintf("%s XCH (%s mojos)", in.Fee, in.FeeMojos)},
	}
	memoText := ""
	if in.Memo != nil {
		rows = append(rows, [2]string{"Memo", *in.Memo})
		memoText = fmt.Sprintf("a memo of \"%s\" and ", *in.Memo)
	}
	u.Indent().KeyValue(rows)
	u.Info("")
	u.Critical("Please confirm, send %s XCH to %s,", in.Amount, in.Name)
	u.Critical("with %snetwork transaction fee of %s mojos? (Y/n)", memoText, in.FeeMojos)

	return Affirmative(u.Ask(nil))
}

// Affirmative is true for "y" or "yes" in any case.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
