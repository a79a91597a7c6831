package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namesdao/namesdao-cli/resolver"
)

func TestStepFallsBackOnNotFound(t *testing.T) {
	p := resolver.Policy{Endpoints: 2, RetryBudget: 3}

	next, d := p.Step(resolver.State{Endpoint: 0, Attempt: 2}, resolver.OutcomeNotFound)
	assert.Equal(t, resolver.DecideNextEndpoint, d)
	assert.Equal(t, resolver.State{Endpoint: 1, Attempt: 1}, next)
	assert.False(t, d.Terminal())

	_, d = p.Step(next, resolver.OutcomeNotFound)
	assert.Equal(t, resolver.DecideNotRegistered, d)
	assert.True(t, d.Terminal())
}

func TestStepRetryBudgetIsThreeAttempts(t *testing.T) {
	p := resolver.Policy{Endpoints: 2, RetryBudget: 3}

	s := resolver.Start
	var decisions []resolver.Decision
	for {
		next, d := p.Step(s, resolver.OutcomeTransport)
		decisions = append(decisions, d)
		if d.Terminal() {
			break
		}
		s = next
	}
	assert.Equal(t, []resolver.Decision{
		resolver.DecideRetry,
		resolver.DecideRetry,
		resolver.DecideNetworkError,
	}, decisions)
	assert.Equal(t, 0, s.Endpoint, "transport failures never move to another endpoint")
}

func TestStepServerErrorIsFinal(t *testing.T) {
	p := resolver.Policy{Endpoints: 3, RetryBudget: 3}
	_, d := p.Step(resolver.Start, resolver.OutcomeServer)
	assert.Equal(t, resolver.DecideServerError, d)
}

func TestStepProceedKeepsState(t *testing.T) {
	p := resolver.Policy{Endpoints: 1, RetryBudget: 3}
	s := resolver.State{Endpoint: 0, Attempt: 3}
	next, d := p.Step(s, resolver.OutcomeOK)
	assert.Equal(t, resolver.DecideProceed, d)
	assert.Equal(t, s, next)
}

func TestFallbackResetsAttempts(t *testing.T) {
	p := resolver.Policy{Endpoints: 2, RetryBudget: 3}
	s, _ := p.Step(resolver.Start, resolver.OutcomeTransport)
	s, _ = p.Step(s, resolver.OutcomeTransport)
	assert.Equal(t, 3, s.Attempt)

	s, d := p.Step(s, resolver.OutcomeNotFound)
	assert.Equal(t, resolver.DecideNextEndpoint, d)
	assert.Equal(t, 1, s.Attempt)
}
