package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/inovacc/projtrack/internal/logging"
	"github.com/inovacc/projtrack/internal/security"
	"github.com/inovacc/projtrack/internal/store"
)

// Action is the protected work run once a request is authorized.
type Action func(ctx context.Context) error

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the logger for denied and cancelled requests.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) { g.logger = l }
}

// WithKey overrides the slot key holding the credential digest.
func WithKey(key string) Option {
	return func(g *Gate) { g.key = key }
}

// Gate verifies password attempts against the stored credential digest and
// serializes protected actions through a single prompt.
type Gate struct {
	mu      sync.Mutex
	slots   store.Slots
	key     string
	logger  *slog.Logger
	state   State
	pending *Pending
}

// NewGate creates a gate keeping its credential in slots.
func NewGate(slots store.Slots, opts ...Option) *Gate {
	g := &Gate{
		slots:  slots,
		key:    store.KeyCredential,
		logger: logging.Discard(),
		state:  StateIdle,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SetCredential stores the digest of the trimmed password, replacing any
// previous credential.
func (g *Gate) SetCredential(ctx context.Context, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}

	if err := g.slots.Put(ctx, g.key, security.Digest(password)); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}

	return nil
}

// Configured reports whether a credential has been set.
func (g *Gate) Configured(ctx context.Context) (bool, error) {
	hash, err := g.storedHash(ctx)
	if err != nil {
		return false, err
	}

	return hash != "", nil
}

// Authorize checks attempt against the stored credential. The error result
// reports storage failures only.
func (g *Gate) Authorize(ctx context.Context, attempt string) (Decision, error) {
	hash, err := g.storedHash(ctx)
	if err != nil {
		return Denied, err
	}

	if hash == "" {
		return NotConfigured, nil
	}

	if security.Equal(security.Digest(attempt), hash) {
		return Authorized, nil
	}

	return Denied, nil
}

// State returns the current prompt state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Request opens the prompt for action. It fails with ErrNotConfigured when
// no credential exists and with ErrBusy while another request is open.
func (g *Gate) Request(ctx context.Context, action Action) (*Pending, error) {
	configured, err := g.Configured(ctx)
	if err != nil {
		return nil, err
	}

	if !configured {
		return nil, ErrNotConfigured
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateIdle {
		return nil, ErrBusy
	}

	if err := transition(&g.state, StateIdle, StateAwaitingInput); err != nil {
		return nil, err
	}

	p := &Pending{
		id:     uuid.New().String(),
		gate:   g,
		action: action,
		state:  StateAwaitingInput,
	}
	g.pending = p

	g.logger.Debug("authorization requested", "request", p.id)

	return p, nil
}

// Guard runs action if attempt is the current password. It is Request and
// Resolve in one step.
func (g *Gate) Guard(ctx context.Context, attempt string, action Action) error {
	p, err := g.Request(ctx, action)
	if err != nil {
		return err
	}

	err = p.Resolve(ctx, attempt)
	if !IsTerminal(p.State()) {
		p.Cancel()
	}

	return err
}

func (g *Gate) storedHash(ctx context.Context) (string, error) {
	hash, ok, err := g.slots.Get(ctx, g.key)
	if err != nil {
		return "", fmt.Errorf("reading credential: %w", err)
	}

	if !ok {
		return "", nil
	}

	return strings.TrimSpace(hash), nil
}

// settle moves both the request and the gate from the request's current
// state to final and back to idle. Caller holds g.mu.
func (g *Gate) settle(p *Pending, final State) {
	if err := transition(&p.state, p.state, final); err != nil {
		panic(err)
	}

	g.state = StateIdle
	g.pending = nil
}

// Pending is an open authorization request.
type Pending struct {
	id     string
	gate   *Gate
	action Action
	state  State
}

// ID identifies the request in logs.
func (p *Pending) ID() string {
	return p.id
}

// State returns the request state.
func (p *Pending) State() State {
	p.gate.mu.Lock()
	defer p.gate.mu.Unlock()

	return p.state
}

// Resolve checks attempt and, when it matches, runs the action and returns
// its error. A wrong password settles the request with ErrDenied and the
// action is dropped. A storage failure leaves the request open.
func (p *Pending) Resolve(ctx context.Context, attempt string) error {
	g := p.gate

	g.mu.Lock()

	if p.state != StateAwaitingInput {
		g.mu.Unlock()
		return ErrSettled
	}

	decision, err := g.Authorize(ctx, attempt)
	if err != nil {
		g.mu.Unlock()
		return err
	}

	switch decision {
	case NotConfigured:
		g.settle(p, StateDenied)
		g.mu.Unlock()

		return ErrNotConfigured
	case Denied:
		g.settle(p, StateDenied)
		g.mu.Unlock()
		g.logger.Info("authorization denied", "request", p.id)

		return ErrDenied
	}

	_ = transition(&p.state, StateAwaitingInput, StateAuthorized)
	_ = transition(&p.state, StateAuthorized, StateExecuting)
	g.state = StateExecuting
	g.mu.Unlock()

	// Settle even if the action panics, or the gate stays busy for good.
	defer func() {
		g.mu.Lock()
		g.settle(p, StateDone)
		g.mu.Unlock()
	}()

	actionErr := p.action(ctx)

	if actionErr != nil {
		g.logger.Debug("protected action failed", "request", p.id, "error", actionErr)
	}

	return actionErr
}

// Cancel discards the request without running the action. Cancelling a
// settled request is a no-op.
func (p *Pending) Cancel() {
	g := p.gate

	g.mu.Lock()
	defer g.mu.Unlock()

	if p.state != StateAwaitingInput {
		return
	}

	g.settle(p, StateCancelled)
	g.logger.Info("authorization cancelled", "request", p.id)
}
