// Package resolver turns a Namesdao name into an XCH address using the
// Namesdao secondary lookup cache.
//
// The cache is a set of static JSON files, one per name, mirrored on a list
// of endpoints tried in order. It is not the source of truth: the only
// integrity check is an optional detached OpenPGP signature published next
// to each record. Resolution is never cached, every call goes to the
// network.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/namesdao/namesdao-cli/logger"
	"github.com/namesdao/namesdao-cli/metrics"
)

const (
	DefaultRetryBudget = 3
	DefaultBackoff     = time.Second
)

// Verifier checks a detached signature over the exact record bytes.
type Verifier interface {
	Verify(message, signature []byte) (bool, error)
}

// Record is the lookup document for one name.
type Record struct {
	Address string `json:"address"`
}

// Resolution is a successful lookup.
type Resolution struct {
	Name       string
	Normalized string
	Address    string
	Endpoint   string
	RecordURL  string
	// Signed is true when a signature was found and verified.
	Signed bool
	// SignatureFetchErr is set when the signature could not be downloaded
	// for a reason other than 403/404. The record is still used.
	SignatureFetchErr error
}

// Resolver looks names up across endpoints, falling back and retrying as
// the lookup state machine decides.
type Resolver struct {
	endpoints   []string
	fetcher     Fetcher
	verifier    Verifier
	logger      logger.Logger
	metrics     metrics.Recorder
	sleep       func(time.Duration)
	backoff     time.Duration
	retryBudget int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFetcher replaces the HTTP fetcher, mainly for tests.
func WithFetcher(f Fetcher) Option {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// WithHTTPClient fetches through c.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.fetcher = NewHTTPFetcher(c)
	}
}

// WithVerifier checks signatures with v. Without one every signed record
// is rejected.
func WithVerifier(v Verifier) Option {
	return func(r *Resolver) {
		r.verifier = v
	}
}

func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

func WithMetrics(m metrics.Recorder) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// WithSleep replaces the blocking sleep used between retries.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Resolver) {
		r.sleep = sleep
	}
}

// WithBackoff sets the pause between retries of one endpoint.
func WithBackoff(d time.Duration) Option {
	return func(r *Resolver) {
		r.backoff = d
	}
}

// WithRetryBudget sets the number of attempts per endpoint on transport
// failures, the first one included.
func WithRetryBudget(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.retryBudget = n
		}
	}
}

// New builds a Resolver over endpoints, in priority order.
func New(endpoints []string, opts ...Option) (*Resolver, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	r := &Resolver{
		endpoints:   append([]string(nil), endpoints...),
		logger:      logger.NoopLogger{},
		metrics:     metrics.NoopRecorder{},
		sleep:       time.Sleep,
		backoff:     DefaultBackoff,
		retryBudget: DefaultRetryBudget,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fetcher == nil {
		r.fetcher = NewHTTPFetcher(nil)
	}
	return r, nil
}

// Endpoints returns a copy of the configured endpoints.
func (r *Resolver) Endpoints() []string {
	return append([]string(nil), r.endpoints...)
}

// Resolve looks name up. The returned error wraps one of ErrNotRegistered,
// ErrNetwork, ErrServer, ErrSignatureInvalid or ErrMalformedRecord.
func (r *Resolver) Resolve(ctx context.Context, name string) (res *Resolution, err error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyName, name)
	}

	fields := map[string]any{
		"resolution_id": uuid.NewString(),
		"name":          normalized,
	}
	start := time.Now()
	defer func() {
		r.metrics.ObserveLatency("resolve", time.Since(start), map[string]string{"outcome": errorLabel(err)})
		r.metrics.IncCounter("resolve", map[string]string{"outcome": errorLabel(err)})
	}()

	policy := Policy{Endpoints: len(r.endpoints), RetryBudget: r.retryBudget}
	state := Start
	for {
		endpoint := r.endpoints[state.Endpoint]
		recordURL := RecordURL(endpoint, normalized)
		r.logger.Debug("fetching lookup record", with(fields, "url", recordURL, "attempt", state.Attempt))

		raw, ferr := r.fetcher.Fetch(ctx, recordURL)
		outcome := Classify(ferr)
		r.metrics.IncCounter("record_fetch", map[string]string{"outcome": outcome.String()})

		next, decision := policy.Step(state, outcome)
		switch decision {
		case DecideProceed:
			return r.finish(ctx, fields, &Resolution{
				Name:       name,
				Normalized: normalized,
				Endpoint:   endpoint,
				RecordURL:  recordURL,
			}, raw)
		case DecideNextEndpoint:
			r.logger.Debug("name not found at endpoint, falling back", with(fields, "url", recordURL))
		case DecideRetry:
			r.logger.Warn("transport failure, retrying", with(fields, "url", recordURL, "attempt", state.Attempt, "error", ferr.Error()))
			r.sleep(r.backoff)
		case DecideNotRegistered:
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, normalized)
		case DecideNetworkError:
			r.logger.Error("retry budget exhausted", with(fields, "url", recordURL, "error", ferr.Error()))
			return nil, fmt.Errorf("%w: %w", ErrNetwork, ferr)
		case DecideServerError:
			r.logger.Error("lookup server error", with(fields, "url", recordURL, "error", ferr.Error()))
			return nil, fmt.Errorf("%w: %w", ErrServer, ferr)
		}
		state = next
	}
}

func (r *Resolver) finish(ctx context.Context, fields map[string]any, res *Resolution, raw []byte) (*Resolution, error) {
	sigURL := res.RecordURL + SignatureSuffix
	signature, serr := r.fetcher.Fetch(ctx, sigURL)
	switch Classify(serr) {
	case OutcomeOK:
	case OutcomeNotFound:
		signature = nil
		r.logger.Debug("record is unsigned", with(fields, "url", sigURL))
	default:
		signature = nil
		res.SignatureFetchErr = serr
		r.logger.Warn("couldn't download signature, continuing unsigned", with(fields, "url", sigURL, "error", serr.Error()))
	}

	if signature != nil {
		if err := r.verify(raw, signature); err != nil {
			r.logger.Warn("aborting due to invalid signature", with(fields, "url", sigURL, "error", err.Error()))
			return nil, err
		}
		res.Signed = true
		r.logger.Info("verified signature", with(fields, "url", sigURL))
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if rec.Address == "" {
		return nil, fmt.Errorf("%w: no address field", ErrMalformedRecord)
	}
	res.Address = rec.Address
	return res, nil
}

func (r *Resolver) verify(raw, signature []byte) error {
	if r.verifier == nil {
		return fmt.Errorf("%w: no verifier configured", ErrSignatureInvalid)
	}
	ok, err := r.verifier.Verify(raw, signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}
	if !ok {
		return ErrSignatureInvalid
	}
	return nil
}

func with(base map[string]any, kv ...any) map[string]any {
	m := make(map[string]any, len(base)+len(kv)/2)
	for k, v := range base {
		m[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}
