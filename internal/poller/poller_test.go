package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastConfig(maxAttempts int, retrigger bool) Config {
	return Config{
		Interval:      time.Millisecond,
		MaxAttempts:   maxAttempts,
		RetriggerEach: retrigger,
	}
}

func TestRun_SatisfiedOnGrowth(t *testing.T) {
	p := New(fastConfig(10, false))
	require.Equal(t, StateIdle, p.State())

	counts := []int{5, 5, 8}
	i := 0
	launched := 0

	state := p.Run(context.Background(),
		func(context.Context) error { launched++; return nil },
		func(context.Context) (int, error) {
			n := counts[i]
			if i < len(counts)-1 {
				i++
			}
			return n, nil
		})

	require.Equal(t, StateSatisfied, state)
	require.Equal(t, StateSatisfied, p.State())
	require.Equal(t, 3, p.Delta())
	require.Equal(t, 1, launched)
}

func TestRun_TimedOutAfterMaxAttempts(t *testing.T) {
	p := New(fastConfig(3, false))
	polls := 0

	state := p.Run(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) (int, error) { polls++; return 5, nil })

	require.Equal(t, StateTimedOut, state)
	// One baseline fetch plus one per attempt.
	require.Equal(t, 4, polls)
	require.Zero(t, p.Delta())
}

func TestRun_RetriggersEachUnsuccessfulAttempt(t *testing.T) {
	p := New(fastConfig(3, true))
	launched := 0

	state := p.Run(context.Background(),
		func(context.Context) error { launched++; return nil },
		func(context.Context) (int, error) { return 0, nil })

	require.Equal(t, StateTimedOut, state)
	// Initial launch plus a retrigger after every attempt except the last,
	// which ends the session before asking again.
	require.Equal(t, 3, launched)
}

func TestRun_DeadlineBudget(t *testing.T) {
	p := New(Config{Interval: time.Millisecond, Timeout: 5 * time.Millisecond})

	state := p.Run(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) (int, error) { return 2, nil })

	require.Equal(t, StateTimedOut, state)
}

func TestRun_CancelledDuringPolling(t *testing.T) {
	p := New(fastConfig(100, false))
	polls := 0

	state := p.Run(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) (int, error) {
			polls++
			if polls == 3 {
				p.Cancel()
			}
			return 1, nil
		})

	require.Equal(t, StateCancelled, state)
	require.Equal(t, StateCancelled, p.State())
}

func TestRun_ContextCancellation(t *testing.T) {
	p := New(Config{Interval: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan State, 1)
	go func() {
		done <- p.Run(ctx,
			func(context.Context) error { return nil },
			func(context.Context) (int, error) { return 0, nil })
	}()

	cancel()
	select {
	case state := <-done:
		require.Equal(t, StateCancelled, state)
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not observe context cancellation")
	}
}

func TestRun_LaunchFailure(t *testing.T) {
	p := New(fastConfig(5, false))
	boom := errors.New("launch rejected")

	state := p.Run(context.Background(),
		func(context.Context) error { return boom },
		func(context.Context) (int, error) { return 0, nil })

	require.Equal(t, StateErrored, state)
	require.ErrorIs(t, p.Err(), boom)
}

func TestRun_CountFailureDuringPolling(t *testing.T) {
	p := New(fastConfig(5, false))
	boom := errors.New("fetch failed")
	polls := 0

	state := p.Run(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) (int, error) {
			polls++
			if polls > 1 {
				return 0, boom
			}
			return 0, nil
		})

	require.Equal(t, StateErrored, state)
	require.ErrorIs(t, p.Err(), boom)
}

func TestPresetConfigs(t *testing.T) {
	detail := DetailPageConfig()
	require.Equal(t, 20*time.Second, detail.Interval)
	require.Equal(t, 5*time.Minute, detail.Timeout)
	require.False(t, detail.RetriggerEach)

	form := CreationFormConfig()
	require.Equal(t, 6*time.Second, form.Interval)
	require.Equal(t, 10, form.MaxAttempts)
	require.True(t, form.RetriggerEach)
}
