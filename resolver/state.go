package resolver

import "fmt"

// Outcome classifies one record fetch.
type Outcome uint8

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeTransport
	OutcomeServer
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeTransport:
		return "transport"
	case OutcomeServer:
		return "server"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Decision is what the resolver does after an outcome.
type Decision uint8

const (
	DecideProceed Decision = iota
	DecideNextEndpoint
	DecideRetry
	DecideNotRegistered
	DecideNetworkError
	DecideServerError
)

// Terminal reports whether d ends the record fetch loop.
func (d Decision) Terminal() bool {
	return d != DecideNextEndpoint && d != DecideRetry
}

// State is the position in the endpoint list and the number of attempts
// already made against that endpoint, counting the current one.
type State struct {
	Endpoint int
	Attempt  int
}

// Start is the state of the first attempt against the first endpoint.
var Start = State{Endpoint: 0, Attempt: 1}

// Policy holds the fixed limits of the fetch loop.
type Policy struct {
	Endpoints   int
	RetryBudget int
}

// Step maps the outcome of the attempt described by s to the next state.
// 403/404 move to the next endpoint with a fresh attempt counter, transport
// failures retry the same endpoint until RetryBudget attempts were made,
// anything else is final.
func (p Policy) Step(s State, o Outcome) (State, Decision) {
	switch o {
	case OutcomeOK:
		return s, DecideProceed
	case OutcomeNotFound:
		if s.Endpoint+1 < p.Endpoints {
			return State{Endpoint: s.Endpoint + 1, Attempt: 1}, DecideNextEndpoint
		}
		return s, DecideNotRegistered
	case OutcomeTransport:
		if s.Attempt < p.RetryBudget {
			return State{Endpoint: s.Endpoint, Attempt: s.Attempt + 1}, DecideRetry
		}
		return s, DecideNetworkError
	default:
		return s, DecideServerError
	}
}
