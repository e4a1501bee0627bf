package scenario

import (
	"context"

	"github.com/Invicton-Labs/go-linkedlists/collections"
	"github.com/Invicton-Labs/go-linkedlists/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type StepResult struct {
	Step Step `json:"step"`
	// Output is the operation's result, empty for operations that only mutate.
	Output string `json:"output,omitempty"`
	// Error is the message of the error the operation returned, if any.
	Error string `json:"error,omitempty"`
	// Values is a snapshot of the list after the step.
	Values []int `json:"values"`

	err stackerr.Error
}

// Err returns the error the operation returned, if any.
func (sr StepResult) Err() error {
	if sr.err == nil {
		return nil
	}
	return sr.err
}

type Result struct {
	RunID  string       `json:"run_id"`
	Name   string       `json:"name"`
	Kind   Kind         `json:"kind"`
	Steps  []StepResult `json:"steps"`
	Values []int        `json:"values"`
	// Rendered is the diagnostic dump of the final list.
	Rendered string `json:"rendered"`
}

func newList(kind Kind, seed []int) collections.List[int] {
	if kind == Doubly {
		return collections.NewDoublyList(seed...)
	}
	return collections.NewSinglyList(seed...)
}

// Run builds the scenario's list and applies each step in order. Errors
// returned by individual operations (e.g. an index out of range) are recorded
// in the step's result and do not stop the run. Run fails if the scenario is
// invalid, if the context is cancelled, or if the list's invariants are
// violated after a step.
func Run(ctx context.Context, s Scenario) (Result, stackerr.Error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	runID := uuid.New().String()
	logger := log.FromContext(ctx).With("run_id", runID, "scenario", s.Name, "kind", s.Kind)

	l := newList(s.Kind, s.Seed)
	result := Result{
		RunID: runID,
		Name:  s.Name,
		Kind:  s.Kind,
		Steps: make([]StepResult, 0, len(s.Steps)),
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return result, stackerr.Wrap(err)
		}

		output, err := operations[step.Op].apply(l, step.Args)
		sr := StepResult{
			Step:   Step{Op: step.Op, Args: collections.CopySlice(step.Args)},
			Output: output,
			Values: l.Values(),
			err:    err,
		}
		if err != nil {
			sr.Error = err.Error()
			logger.WithError(err).Warnw("Operation failed", "step", i, "op", step.Op, "args", step.Args)
		} else {
			logger.Debugw("Applied operation", "step", i, "op", step.Op, "args", step.Args, "output", output, "values", sr.Values)
		}
		result.Steps = append(result.Steps, sr)

		if verr := l.Validate(); verr != nil {
			logger.Error(verr)
			return result, stackerr.Errorf("step %d (%s) of scenario `%s` corrupted the list: %w", i, step, s.Name, verr)
		}
	}

	result.Values = l.Values()
	result.Rendered = l.String()
	logger.Infow("Scenario complete", "steps", len(s.Steps), "length", l.Len())
	return result, nil
}

// RunAll runs the scenarios concurrently, at most parallelism at a time (no
// limit if parallelism <= 0). Every scenario gets its own list, so no list
// is shared between goroutines. Results are in the same order as the input;
// the returned error combines the errors of all scenarios that failed.
func RunAll(ctx context.Context, scenarios []Scenario, parallelism int) ([]Result, stackerr.Error) {
	results := make([]Result, len(scenarios))
	errs := make([]error, len(scenarios))

	g := errgroup.Group{}
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i := range scenarios {
		i := i
		g.Go(func() error {
			result, err := Run(ctx, scenarios[i])
			results[i] = result
			if err != nil {
				errs[i] = err
			}
			return nil
		})
	}
	// Goroutines never return errors; failures are collected per scenario
	_ = g.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return results, stackerr.Wrap(err)
	}
	return results, nil
}
