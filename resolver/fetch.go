package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SignatureSuffix is appended to a record URL to locate its detached
// signature.
const SignatureSuffix = ".gpg"

// Fetcher downloads a resource and returns its body in full.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatusError is a completed HTTP exchange with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// TransportError is a request that never produced a complete response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("couldn't fetch %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Classify maps a Fetch error to an Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	var se *StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusForbidden || se.StatusCode == http.StatusNotFound {
			return OutcomeNotFound
		}
		return OutcomeServer
	}
	return OutcomeTransport
}

// RecordURL is {endpoint}/{name}.json.
func RecordURL(endpoint, normalized string) string {
	return strings.TrimRight(endpoint, "/") + "/" + url.PathEscape(normalized) + ".json"
}

// HTTPFetcher is the Fetcher used outside tests. It issues one GET per call
// and never retries by itself.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher wraps client. A nil client uses a client with a 30 second
// timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{client: client}
}

// Fetch reads the whole body before returning, a partially read body is a
// transport failure.
func (f *HTTPFetcher) Fetch(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return body, nil
}
