package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
	"github.com/namesdao/namesdao-cli/intent"
	"github.com/namesdao/namesdao-cli/logger"
	"github.com/namesdao/namesdao-cli/memo"
	"github.com/namesdao/namesdao-cli/metrics"
	"github.com/namesdao/namesdao-cli/pgp"
	"github.com/namesdao/namesdao-cli/resolver"
	"github.com/namesdao/namesdao-cli/sanitize"
	"github.com/namesdao/namesdao-cli/sender"
	"github.com/namesdao/namesdao-cli/ui"
	"github.com/namesdao/namesdao-cli/units"
	"github.com/namesdao/namesdao-cli/util/cache"
)

// app is everything one command invocation needs, built from the config
// file and the global flags.
type app struct {
	file     config.File
	log      logger.Logger
	metrics  metrics.Recorder
	prom     *metrics.PrometheusRecorder
	keyring  *pgp.Keyring
	resolver *resolver.Resolver
	sender   sender.Sender
}

// newSender is replaced in tests.
var newSender = func(file config.File) sender.Sender {
	return &sender.Chia{
		Program: file.SenderProgram,
		Stdout:  appUI.Writer(),
		Stderr:  os.Stderr,
	}
}

func configPath() string {
	if config.ConfigPath != "" {
		return config.ConfigPath
	}
	return config.DefaultPath()
}

func newApp() (*app, error) {
	file, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	if config.LogLevel != "" {
		file.LogLevel = config.LogLevel
	}
	if len(config.Endpoints) > 0 {
		file.Endpoints = config.Endpoints
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return buildApp(file)
}

func buildApp(file config.File) (*app, error) {
	log, err := logger.NewZapLogger(file.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("couldn't set up logging: %w", err)
	}

	a := &app{
		file:    file,
		log:     log,
		metrics: metrics.NoopRecorder{},
	}
	if config.MetricsFile != "" {
		a.prom = metrics.NewPrometheusRecorder()
		a.metrics = a.prom
	}

	store := cache.Default()
	if file.CachePath != "" {
		store = cache.NewStore(file.CachePath)
	}
	armored := pgp.NamesdaoPublicKey
	key, err := file.RecipientKey()
	if err != nil {
		return nil, fmt.Errorf("couldn't read recipient key: %w", err)
	}
	if key != nil {
		armored = key
	}
	a.keyring = pgp.NewKeyring(file.RecipientFingerprint, armored, store)

	a.resolver, err = resolver.New(file.Endpoints,
		resolver.WithHTTPClient(&http.Client{Timeout: file.Timeout}),
		resolver.WithVerifier(a.keyring),
		resolver.WithLogger(log),
		resolver.WithMetrics(a.metrics),
		resolver.WithRetryBudget(file.RetryBudget),
		resolver.WithBackoff(file.Backoff),
	)
	if err != nil {
		return nil, err
	}
	a.sender = newSender(file)
	return a, nil
}

// close flushes the logger and writes the metrics file, if any.
func (a *app) close() {
	if a.prom != nil {
		if err := a.prom.WriteTextfile(config.MetricsFile); err != nil {
			appUI.Warn("Couldn't write metrics to %s: %s", config.MetricsFile, err)
		}
	}
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func (a *app) builder(u ui.UI, yes bool) *intent.Builder {
	return &intent.Builder{
		UI:      u,
		Sender:  a.sender,
		Memos:   memo.NewPreparer(a.keyring, memo.WithSalt(a.file.IncludeSalt)),
		Yes:     yes,
		Logger:  a.log,
		Metrics: a.metrics,
	}
}

// destination returns arg itself when it is already an address, otherwise
// the address arg resolves to.
func (a *app) destination(ctx context.Context, u ui.UI, arg string) (string, error) {
	if addr, ok := sanitize.Address(arg); ok {
		return addr, nil
	}
	stop := u.Spinner(fmt.Sprintf("Looking up %s...", arg))
	res, err := a.resolver.Resolve(ctx, arg)
	stop()
	if err != nil {
		return "", err
	}
	reportSignature(u, res)
	return res.Address, nil
}

func reportSignature(u ui.UI, res *resolver.Resolution) {
	switch {
	case res.Signed:
		u.Success("Verified signature")
	case res.SignatureFetchErr != nil:
		u.Warn("Couldn't download the signature for %s, the address is unsigned: %s", res.Name, res.SignatureFetchErr)
	default:
		u.Info("The lookup record for %s is unsigned", res.Name)
	}
}

// optional returns a pointer to the flag's value when it was set on the
// command line and nil otherwise.
func optional(cmd *cobra.Command, flag string, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	v := value
	return &v
}

// describe renders err as the single line shown to the user.
func describe(err error) string {
	var ve *units.ValidationError
	switch {
	case errors.Is(err, resolver.ErrNotRegistered), errors.Is(err, intent.ErrNoAddress):
		return "Sorry, we don't have an address for that name."
	case errors.Is(err, resolver.ErrSignatureInvalid):
		return "WARNING: Aborting due to invalid signature."
	case errors.Is(err, resolver.ErrNetwork):
		return capitalize(err.Error())
	case errors.Is(err, resolver.ErrServer):
		return fmt.Sprintf("The Namesdao lookup service failed: %s", err)
	case errors.Is(err, resolver.ErrMalformedRecord):
		return fmt.Sprintf("The lookup record for that name is malformed: %s", err)
	case errors.As(err, &ve):
		return capitalize(ve.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
