// Package poller implements the client-side progress loop used while the
// external workflow engine fills a campaign with leads. There is no
// server-side push: the poller re-fetches a lead count until it grows past
// the baseline captured at launch time, the budget runs out, or the caller
// cancels.
package poller

import (
	"context"
	"sync"
	"time"
)

// State is the poller's lifecycle position.
type State string

const (
	StateIdle      State = "idle"
	StateLaunching State = "launching"
	StatePolling   State = "polling"
	StateSatisfied State = "satisfied"
	StateTimedOut  State = "timed_out"
	StateCancelled State = "cancelled"
	StateErrored   State = "errored"
)

// Config bounds one polling session. Timeout and MaxAttempts are
// alternative budgets; whichever is set (or whichever trips first when both
// are) ends the session. RetriggerEach re-invokes the launch on every
// unsuccessful attempt, the behavior the creation form relies on; the
// detail page leaves it off and polls read-only.
type Config struct {
	Interval      time.Duration
	Timeout       time.Duration
	MaxAttempts   int
	RetriggerEach bool
}

// DetailPageConfig polls slowly with a long ceiling.
func DetailPageConfig() Config {
	return Config{Interval: 20 * time.Second, Timeout: 5 * time.Minute}
}

// CreationFormConfig polls quickly, re-triggering the run each attempt.
func CreationFormConfig() Config {
	return Config{Interval: 6 * time.Second, MaxAttempts: 10, RetriggerEach: true}
}

// CountFunc fetches the current number of leads for the campaign.
type CountFunc func(ctx context.Context) (int, error)

// LaunchFunc performs the launch (or re-trigger) call.
type LaunchFunc func(ctx context.Context) error

// Poller is one polling session. It is an explicit state object, not
// ambient module state: the cancellation flag is a field checked at every
// suspension point, and results are read back through accessors.
type Poller struct {
	cfg Config

	mu        sync.Mutex
	state     State
	baseline  int
	delta     int
	err       error
	cancelled bool
}

// New returns an idle poller.
func New(cfg Config) *Poller {
	return &Poller{cfg: cfg, state: StateIdle}
}

// State returns the current lifecycle position.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Delta returns how many new leads appeared past the baseline.
func (p *Poller) Delta() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delta
}

// Err returns the failure that moved the poller to StateErrored.
func (p *Poller) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Cancel stops the session. In-flight fetches are not aborted; their
// results are disregarded when the loop next checks the flag.
func (p *Poller) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelled = true
}

func (p *Poller) setState(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
}

func (p *Poller) isCancelled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancelled
}

// Run executes one session: capture baseline, launch, then poll until
// satisfied, out of budget, cancelled or errored. The final state is also
// returned for convenience.
func (p *Poller) Run(ctx context.Context, launch LaunchFunc, count CountFunc) State {
	p.setState(StateLaunching)

	baseline, err := count(ctx)
	if err != nil {
		p.fail(err)
		return StateErrored
	}
	p.mu.Lock()
	p.baseline = baseline
	p.mu.Unlock()

	if err = launch(ctx); err != nil {
		p.fail(err)
		return StateErrored
	}
	if p.isCancelled() {
		p.setState(StateCancelled)
		return StateCancelled
	}

	p.setState(StatePolling)
	var deadline time.Time
	if p.cfg.Timeout > 0 {
		deadline = time.Now().Add(p.cfg.Timeout)
	}

	attempts := 0
	for {
		if !p.sleep(ctx) {
			return p.State()
		}

		n, err := count(ctx)
		if err != nil {
			p.fail(err)
			return StateErrored
		}
		if p.isCancelled() {
			p.setState(StateCancelled)
			return StateCancelled
		}
		if n > baseline {
			p.mu.Lock()
			p.delta = n - baseline
			p.state = StateSatisfied
			p.mu.Unlock()
			return StateSatisfied
		}

		attempts++
		if p.cfg.MaxAttempts > 0 && attempts >= p.cfg.MaxAttempts {
			p.setState(StateTimedOut)
			return StateTimedOut
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			p.setState(StateTimedOut)
			return StateTimedOut
		}

		if p.cfg.RetriggerEach {
			// ask again, not just check again
			if err = launch(ctx); err != nil {
				p.fail(err)
				return StateErrored
			}
			if p.isCancelled() {
				p.setState(StateCancelled)
				return StateCancelled
			}
		}
	}
}

// sleep waits one interval. It returns false when the session ended while
// waiting, with the terminal state already set.
func (p *Poller) sleep(ctx context.Context) bool {
	timer := time.NewTimer(p.cfg.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		p.setState(StateCancelled)
		return false
	case <-timer.C:
	}
	if p.isCancelled() {
		p.setState(StateCancelled)
		return false
	}
	return true
}

func (p *Poller) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	p.state = StateErrored
}
