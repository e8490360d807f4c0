package trigger

import (
	"context"
	"time"

	"github.com/relforge/relforge/internal/core/domain"
	"github.com/relforge/relforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout is how long a trigger status waits for the downstream
// execution before reporting a timeout.
const DefaultTimeout = 5 * time.Minute

// Status tracks a triggered downstream execution. The caller drives it by
// calling Refresh in a poll loop until Finished reports true; there is no
// background timer, so a caller that stops polling never observes a timeout.
type Status struct {
	delegate ports.TriggerStatus

	startedAt       time.Time
	timeout         time.Duration
	finishedOk      bool
	timedOut        bool
	triggerResponse *domain.TriggerResponse
}

// newStatus captures the trigger response with a single status-source lookup
// and starts the timeout clock. A lookup failure fails construction
// atomically: no half-built status escapes.
func newStatus(
	ctx context.Context,
	source ports.StatusSource,
	delegate ports.TriggerStatus,
	statusPath string,
) (*Status, error) {
	resp, err := source.Get(ctx, statusPath)
	if err != nil {
		lookupErr := zerr.Wrap(err, domain.ErrStatusLookupFailed.Error())
		return nil, zerr.With(lookupErr, "path", statusPath)
	}

	return &Status{
		delegate:        delegate,
		startedAt:       time.Now(),
		timeout:         DefaultTimeout,
		triggerResponse: resp,
	}, nil
}

// SetTimeout overrides the timeout duration.
func (s *Status) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Refresh re-queries the delegate status. Once the execution has finished
// successfully this is a no-op: success is sticky and the timeout is never
// recomputed afterwards. A successful delegate report also suppresses the
// timeout evaluation for that cycle.
func (s *Status) Refresh(ctx context.Context) error {
	if s.finishedOk {
		return nil
	}

	if err := s.delegate.Refresh(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrStatusRefreshFailed.Error())
	}

	s.finishedOk = s.delegate.FinishedOK()
	if s.finishedOk {
		return nil
	}

	s.timedOut = time.Since(s.startedAt) > s.timeout
	return nil
}

// Finished reports whether polling can stop, either because the execution
// completed or because the wait timed out.
func (s *Status) Finished() bool {
	return s.finishedOk || s.timedOut
}

// FinishedOK reports whether the downstream execution completed.
func (s *Status) FinishedOK() bool {
	return s.finishedOk
}

// TimedOut reports whether the wait exceeded the timeout before completion.
// A timeout is a terminal outcome distinct from failure.
func (s *Status) TimedOut() bool {
	return s.timedOut
}

// TriggerResponse returns the response captured when the status was
// constructed. It is diagnostic only.
func (s *Status) TriggerResponse() *domain.TriggerResponse {
	return s.triggerResponse
}

// Detail renders a short diagnostic summary.
func (s *Status) Detail() string {
	return "trigger response: " + s.triggerResponse.String()
}
