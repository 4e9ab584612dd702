package dijkstra

import (
	"context"
)

// Runner wraps an Engine and drives it in bulk until an error occurs, a
// step budget is spent, the context expires, or a callback asks to stop.
// Every step still goes through Engine.Step, so observers and callbacks see
// exactly the same sequence a hand-driven caller would.
type Runner struct {
	e  *Engine
	cb RunnerCallbacks
}

// RunnerCallbacks are invoked around every step. All callbacks are optional.
type RunnerCallbacks struct {
	// PreStep, if defined, is invoked before the next step; ph is the phase
	// that step will execute.
	PreStep func(ctx context.Context, e *Engine, ph Phase) error

	// PostStep, if defined, is invoked after each successful step.
	PostStep func(ctx context.Context, e *Engine) error

	// PostStepKeepRunning, if defined, decides after each step whether the
	// run should continue. Returning false stops the runner without error.
	PostStepKeepRunning func(ctx context.Context, e *Engine) (bool, error)
}

// NewRunner returns a Runner for e that invokes cb inside each loop.
func NewRunner(e *Engine, cb RunnerCallbacks) *Runner {
	patchEmptyCallbacks(&cb)

	return &Runner{e: e, cb: cb}
}

func patchEmptyCallbacks(cb *RunnerCallbacks) {
	if cb.PreStep == nil {
		cb.PreStep = func(context.Context, *Engine, Phase) error { return nil }
	}
	if cb.PostStep == nil {
		cb.PostStep = func(context.Context, *Engine) error { return nil }
	}
	if cb.PostStepKeepRunning == nil {
		cb.PostStepKeepRunning = func(context.Context, *Engine) (bool, error) { return true, nil }
	}
}

// Engine returns the wrapped engine.
func (r *Runner) Engine() *Engine { return r.e }

// RunSteps executes at most n steps (no limit when n < 0) and returns how
// many ran. It stops early when the engine is done, the context expires, or
// a callback stops it.
func (r *Runner) RunSteps(ctx context.Context, n int) (int, error) {
	return r.run(ctx, n)
}

// RunToCompletion steps until the engine is done.
func (r *Runner) RunToCompletion(ctx context.Context) error {
	_, err := r.run(ctx, -1)

	return err
}

func (r *Runner) run(ctx context.Context, maxSteps int) (int, error) {
	if r.e == nil || !r.e.ready {
		return 0, &InvalidInputError{Op: "Runner", Err: ErrNotInitialized}
	}

	var (
		ran         int
		err         error
		keepRunning bool
		cb          = r.cb
	)
	for ; maxSteps != 0 && !r.e.Done(); maxSteps-- {
		if err = ensureContextNotExpired(ctx); err != nil {
			break
		} else if err = cb.PreStep(ctx, r.e, r.e.Phase()); err != nil {
			break
		} else if err = r.e.Step(); err != nil {
			break
		}
		ran++
		if err = cb.PostStep(ctx, r.e); err != nil {
			break
		} else if keepRunning, err = cb.PostStepKeepRunning(ctx, r.e); !keepRunning || err != nil {
			break
		}
	}

	return ran, err
}

func ensureContextNotExpired(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
