package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"clubform/internal/domain/application"
)

const fallbackSubmitError = "Error submitting application"

var ErrSubmission = errors.New("submission failed")

// Receipt is the gateway's confirmation of a stored application.
type Receipt struct {
	Message string
}

// Gateway delivers a payload to the submission endpoint.
type Gateway interface {
	Submit(ctx context.Context, payload application.Submission) (Receipt, error)
}

// SubmissionError wraps any gateway failure. Message is what the user sees.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

// Submit validates s and, when the email check passes, makes exactly one
// gateway call. On success the returned state is a fresh form carrying the
// server's confirmation text; on failure it is s with only the error set.
func Submit(ctx context.Context, s State, gateway Gateway) (State, error) {
	if err := s.Validate(); err != nil {
		return s.withError(err.Error()), err
	}
	receipt, err := gateway.Submit(ctx, s.Payload())
	if err != nil {
		subErr := &SubmissionError{Message: userMessage(err), Err: err}
		return s.withSubmitFailure(subErr.Message), subErr
	}
	next := New(s.emailSuffix)
	next.success = receipt.Message
	return next, nil
}

// userMessage prefers text supplied by the server over the generic fallback.
func userMessage(err error) string {
	var serverErr interface{ ServerMessage() string }
	if errors.As(err, &serverErr) {
		if message := strings.TrimSpace(serverErr.ServerMessage()); message != "" {
			return message
		}
	}
	return fallbackSubmitError
}

type Phase int

const (
	PhaseEditing Phase = iota
	PhaseAwaiting
)

func (p Phase) String() string {
	if p == PhaseAwaiting {
		return "awaiting"
	}
	return "editing"
}

// Controller owns the form for one interactive session. Field updates are
// applied immediately; Submit releases the lock while the gateway call is in
// flight, so a second submit is possible and is not de-duplicated.
type Controller struct {
	mu       sync.Mutex
	state    State
	inflight int
	gateway  Gateway
}

func NewController(gateway Gateway, emailSuffix string) *Controller {
	return &Controller{state: New(emailSuffix), gateway: gateway}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight > 0 {
		return PhaseAwaiting
	}
	return PhaseEditing
}

func (c *Controller) Set(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.Set(field, value)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

func (c *Controller) ToggleSkill(skill string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.ToggleSkill(skill)
}

func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	snapshot := c.state
	if err := snapshot.Validate(); err != nil {
		c.state = snapshot.withError(err.Error())
		c.mu.Unlock()
		return err
	}
	c.inflight++
	c.mu.Unlock()

	result, err := Submit(ctx, snapshot, c.gateway)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if err != nil {
		c.state = c.state.withSubmitFailure(result.Error())
		return err
	}
	c.state = result
	return nil
}
