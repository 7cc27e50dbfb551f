package nfa

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/dfs"
)

// Sentinel errors for the nfa package.
var (
	// ErrUnbalancedParens is returned when '(' and ')' do not pair up.
	ErrUnbalancedParens = errors.New("nfa: unbalanced parentheses")

	// ErrBareOperator is returned when a closure or alternation has no
	// operand to act on.
	ErrBareOperator = errors.New("nfa: operator has no operand")
)

// NFA is a compiled regular expression. Safe for concurrent use; the
// epsilon digraph is never mutated after Compile.
type NFA struct {
	re      string // pattern wrapped in an outer group
	m       int    // number of states excluding the accept state
	epsilon *core.Graph
}

// Compile builds the NFA for pattern. The empty pattern compiles and
// matches only the empty text.
func Compile(pattern string) (*NFA, error) {
	// The outer group lets top-level alternation work unparenthesized.
	re := "(" + pattern + ")"
	if err := validate(re); err != nil {
		return nil, err
	}

	n := &NFA{
		re:      re,
		m:       len(re),
		epsilon: core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges()),
	}
	g := n.epsilon
	for s := 0; s <= n.m; s++ {
		_ = g.AddVertex(state(s))
	}

	ops := arraystack.New()
	for i := 0; i < n.m; i++ {
		lp := i
		switch re[i] {
		case '(', '|':
			ops.Push(i)
		case ')':
			// Pop the alternation bars back to the opening paren and
			// wire each branch: '(' jumps past the bar, the bar jumps
			// to ')'.
			var bars []int
			for {
				top, ok := ops.Pop()
				if !ok {
					return nil, ErrUnbalancedParens
				}
				p := top.(int)
				if re[p] != '|' {
					lp = p

					break
				}
				bars = append(bars, p)
			}
			for _, bar := range bars {
				_, _ = g.AddEdge(state(lp), state(bar+1), 0)
				_, _ = g.AddEdge(state(bar), state(i), 0)
			}
		}

		// Closure operators look back at the preceding atom or group.
		if i < n.m-1 {
			switch re[i+1] {
			case '*':
				_, _ = g.AddEdge(state(lp), state(i+1), 0)
				_, _ = g.AddEdge(state(i+1), state(lp), 0)
			case '+':
				_, _ = g.AddEdge(state(i+1), state(lp), 0)
			case '?':
				_, _ = g.AddEdge(state(lp), state(i+1), 0)
			}
		}

		if re[i] == '(' || re[i] == ')' || re[i] == '*' || re[i] == '+' || re[i] == '?' {
			_, _ = g.AddEdge(state(i), state(i+1), 0)
		}
	}
	if !ops.Empty() {
		return nil, ErrUnbalancedParens
	}

	return n, nil
}

// Pattern returns the original pattern text.
func (n *NFA) Pattern() string { return n.re[1 : len(n.re)-1] }

// Recognizes reports whether the whole text matches the pattern.
func (n *NFA) Recognizes(text string) bool {
	active, err := dfs.Reachable(n.epsilon, state(0))
	if err != nil {
		return false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		var sources []string
		for s := 0; s < n.m; s++ {
			if !active[state(s)] {
				continue
			}
			if n.re[s] == c || n.re[s] == '.' {
				sources = append(sources, state(s+1))
			}
		}
		if len(sources) == 0 {
			return false
		}
		active, err = dfs.Reachable(n.epsilon, sources...)
		if err != nil {
			return false
		}
	}

	return active[state(n.m)]
}

// validate rejects mispaired parentheses and operators lacking an
// operand before construction starts.
func validate(re string) error {
	depth := 0
	for i := 0; i < len(re); i++ {
		switch re[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return ErrUnbalancedParens
			}
			if re[i-1] == '|' {
				return fmt.Errorf("%w: '|' at position %d", ErrBareOperator, i-1)
			}
		case '*', '+', '?':
			if re[i-1] == '(' || re[i-1] == '|' {
				return fmt.Errorf("%w: %q at position %d", ErrBareOperator, re[i], i)
			}
		case '|':
			if re[i-1] == '(' || re[i-1] == '|' {
				return fmt.Errorf("%w: '|' at position %d", ErrBareOperator, i)
			}
		}
	}
	if depth != 0 {
		return ErrUnbalancedParens
	}

	return nil
}

// state renders a state number as a vertex ID.
func state(i int) string {
	return strconv.Itoa(i)
}
