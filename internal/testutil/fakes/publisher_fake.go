package fakes

import (
	"context"
	"errors"
	"sync"

	platformEvents "github.com/dhima/attendance-ledger/platform/events"
)

// FakePublisher captures published envelopes and can simulate failures.
type FakePublisher struct {
	mu        sync.Mutex
	Events    []platformEvents.Envelope
	FailNext  bool
	FailError error
}

func (p *FakePublisher) Publish(_ context.Context, e platformEvents.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailNext {
		p.FailNext = false
		if p.FailError == nil {
			p.FailError = errors.New("publish failed")
		}
		return p.FailError
	}
	p.Events = append(p.Events, e)
	return nil
}

// Published returns a copy of the captured envelopes.
func (p *FakePublisher) Published() []platformEvents.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]platformEvents.Envelope(nil), p.Events...)
}
