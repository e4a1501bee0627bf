// Package scenario drives the linked lists in package collections from
// declarative scripts: a list kind, the values to seed it with, and a series
// of named operations to apply in order.
package scenario

import (
	"fmt"
	"sort"

	"github.com/Invicton-Labs/go-linkedlists/collections"
	"github.com/Invicton-Labs/go-linkedlists/genjson"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

type Kind string

const (
	Singly Kind = "singly"
	Doubly Kind = "doubly"
)

// Step is a single operation applied to a scenario's list.
type Step struct {
	Op   string `json:"op"`
	Args []int  `json:"args,omitempty"`
}

func (s Step) String() string {
	return fmt.Sprintf("%s%v", s.Op, s.Args)
}

type Scenario struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Seed  []int  `json:"seed"`
	Steps []Step `json:"steps"`
}

// Clone returns a deep copy of the scenario.
func (s Scenario) Clone() Scenario {
	steps := make([]Step, len(s.Steps))
	for i, step := range s.Steps {
		steps[i] = Step{Op: step.Op, Args: collections.CopySlice(step.Args)}
	}
	return Scenario{
		Name:  s.Name,
		Kind:  s.Kind,
		Seed:  collections.CopySlice(s.Seed),
		Steps: steps,
	}
}

// Validate checks that the scenario's kind is known and that every step
// names a known operation with the right number of arguments. All problems
// are reported, not just the first.
func (s Scenario) Validate() stackerr.Error {
	var errs error
	if s.Kind != Singly && s.Kind != Doubly {
		errs = multierr.Append(errs, stackerr.Errorf("unknown list kind `%s`", s.Kind))
	}
	for i, step := range s.Steps {
		op, ok := operations[step.Op]
		if !ok {
			errs = multierr.Append(errs, stackerr.Errorf("step %d: unknown operation `%s`", i, step.Op))
			continue
		}
		if len(step.Args) != op.arity {
			errs = multierr.Append(errs, stackerr.Errorf("step %d: operation `%s` takes %d arguments, got %d", i, step.Op, op.arity, len(step.Args)))
		}
	}
	if errs != nil {
		return stackerr.Errorf("invalid scenario `%s`: %w", s.Name, errs)
	}
	return nil
}

// Parse decodes a JSON array of scenarios and validates each of them.
func Parse(data []byte) ([]Scenario, stackerr.Error) {
	scenarios, err := genjson.UnmarshalStrict[[]Scenario](data)
	if err != nil {
		return nil, err
	}
	var errs error
	for _, s := range scenarios {
		errs = multierr.Append(errs, s.Validate())
	}
	if errs != nil {
		return nil, stackerr.Wrap(errs)
	}
	return scenarios, nil
}

// Operations returns the names of all supported operations.
func Operations() []string {
	names := collections.MapKeys(operations)
	sort.Strings(names)
	return names
}
