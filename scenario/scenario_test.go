package scenario

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s := Scenario{
			Name:  "ok",
			Kind:  Singly,
			Seed:  []int{1, 2, 3},
			Steps: []Step{{Op: "reverse"}, {Op: "reverseBetween", Args: []int{0, 2}}},
		}
		assert.NotError(t, s.Validate())
	})
	t.Run("AllProblemsReported", func(t *testing.T) {
		s := Scenario{
			Name: "broken",
			Kind: "circular",
			Steps: []Step{
				{Op: "rotate"},
				{Op: "push"},
				{Op: "reverse"},
			},
		}
		err := s.Validate()
		assert.Error(t, err)
		check.Substring(t, err.Error(), "broken")
		check.Substring(t, err.Error(), "unknown list kind `circular`")
		check.Substring(t, err.Error(), "step 0: unknown operation `rotate`")
		check.Substring(t, err.Error(), "step 1: operation `push` takes 1 arguments, got 0")
		check.NotSubstring(t, err.Error(), "step 2")
	})
}

func TestClone(t *testing.T) {
	s := Scenario{
		Name:  "original",
		Kind:  Doubly,
		Seed:  []int{1, 2},
		Steps: []Step{{Op: "push", Args: []int{3}}},
	}
	c := s.Clone()
	c.Seed[0] = 9
	c.Steps[0].Args[0] = 9
	c.Steps = append(c.Steps, Step{Op: "reverse"})

	check.Equal(t, 1, s.Seed[0])
	check.Equal(t, 3, s.Steps[0].Args[0])
	check.Equal(t, 1, len(s.Steps))
}

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		scenarios, err := Parse([]byte(`[
			{"name": "a", "kind": "singly", "seed": [1, 2], "steps": [{"op": "reverse"}]},
			{"name": "b", "kind": "doubly", "seed": [], "steps": [{"op": "push", "args": [4]}]}
		]`))
		assert.NotError(t, err)
		assert.Equal(t, 2, len(scenarios))
		check.Equal(t, "a", scenarios[0].Name)
		check.Equal(t, Singly, scenarios[0].Kind)
		check.Equal(t, Doubly, scenarios[1].Kind)
		check.Equal(t, 4, scenarios[1].Steps[0].Args[0])
	})
	t.Run("UnknownField", func(t *testing.T) {
		_, err := Parse([]byte(`[{"name": "a", "kind": "singly", "sead": [1]}]`))
		assert.Error(t, err)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte(`[{"name": `))
		assert.Error(t, err)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := Parse([]byte(`[
			{"name": "a", "kind": "singly", "steps": [{"op": "get"}]},
			{"name": "b", "kind": "tree"}
		]`))
		assert.Error(t, err)
		check.Substring(t, err.Error(), "invalid scenario `a`")
		check.Substring(t, err.Error(), "invalid scenario `b`")
	})
}

func TestOperations(t *testing.T) {
	names := Operations()
	assert.Equal(t, len(operations), len(names))
	for i := 1; i < len(names); i++ {
		check.True(t, names[i-1] < names[i])
	}
	for _, name := range []string{
		"push", "pop", "unshift", "shift", "get", "set", "insertAt", "removeAt",
		"reverse", "reverseBetween", "swapPairs", "partitionList", "isPalindrome",
		"middleNode", "hasLoop", "nthFromEnd", "findDuplicatesLoop", "binary",
	} {
		_, ok := operations[name]
		check.True(t, ok)
	}
}

func TestStepString(t *testing.T) {
	check.Equal(t, "reverseBetween[1 3]", Step{Op: "reverseBetween", Args: []int{1, 3}}.String())
	check.Equal(t, "reverse[]", Step{Op: "reverse"}.String())
}
