package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arbelos/arbelos/core"
)

// Sentinel errors for the gen package.
var (
	// ErrBadSize is returned for vertex or edge counts that make no
	// sense for the requested family.
	ErrBadSize = errors.New("gen: invalid size")
)

// Options holds the shared generator knobs.
type Options struct {
	// Directed builds a digraph; edges point from lower to higher
	// construction index.
	Directed bool

	// Weighted assigns each edge a pseudo-random weight in [0, 1);
	// unweighted graphs carry weight 0.
	Weighted bool

	// Seed drives the weight and topology randomness. Fixed default
	// so generated graphs are reproducible.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns undirected, unweighted, seed 1.
func DefaultOptions() Options {
	return Options{Seed: 1}
}

// WithDirected makes the generated graph directed.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithWeighted assigns pseudo-random weights in [0, 1).
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// builder carries the shared state of one generation run.
type builder struct {
	graph *core.Graph
	rng   *rand.Rand
	opts  Options
	width int
}

func newBuilder(n int, opts []Option) *builder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	width := 1
	for limit := 10; limit < n; limit *= 10 {
		width++
	}

	copts := []core.Option{core.WithDirected(o.Directed)}
	if o.Weighted {
		copts = append(copts, core.WithWeighted())
	}

	return &builder{
		graph: core.NewGraph(copts...),
		rng:   rand.New(rand.NewSource(o.Seed)),
		opts:  o,
		width: width,
	}
}

// vertex renders the i-th vertex ID, zero-padded to the run's width.
func (b *builder) vertex(i int) string {
	return fmt.Sprintf("v%0*d", b.width, i)
}

func (b *builder) addVertices(n int) {
	for i := 0; i < n; i++ {
		_ = b.graph.AddVertex(b.vertex(i))
	}
}

func (b *builder) connect(i, j int) {
	w := 0.0
	if b.opts.Weighted {
		w = b.rng.Float64()
	}
	_, _ = b.graph.AddEdge(b.vertex(i), b.vertex(j), w)
}

// Path returns the path graph on n vertices: v0-v1-...-v(n-1).
// n must be at least 1.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: path needs n >= 1, got %d", ErrBadSize, n)
	}
	b := newBuilder(n, opts)
	b.addVertices(n)
	for i := 0; i+1 < n; i++ {
		b.connect(i, i+1)
	}

	return b.graph, nil
}

// Cycle returns the cycle graph on n vertices. n must be at least 3;
// smaller rings need self-loops or parallel edges.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n >= 3, got %d", ErrBadSize, n)
	}
	b := newBuilder(n, opts)
	b.addVertices(n)
	for i := 0; i < n; i++ {
		b.connect(i, (i+1)%n)
	}

	return b.graph, nil
}

// Complete returns the complete graph on n vertices: every unordered
// pair joined, ordered pairs (i < j) when directed.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: complete graph needs n >= 1, got %d", ErrBadSize, n)
	}
	b := newBuilder(n, opts)
	b.addVertices(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.connect(i, j)
		}
	}

	return b.graph, nil
}

// Grid returns the rows x cols lattice: each cell joined to its right
// and down neighbors.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid needs positive dimensions, got %dx%d", ErrBadSize, rows, cols)
	}
	n := rows * cols
	b := newBuilder(n, opts)
	b.addVertices(n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				b.connect(at, at+1)
			}
			if r+1 < rows {
				b.connect(at, at+cols)
			}
		}
	}

	return b.graph, nil
}

// Bipartite returns the complete bipartite graph K(m,n): vertices
// v0..v(m-1) on one side, the rest on the other, every cross pair
// joined.
func Bipartite(m, n int, opts ...Option) (*core.Graph, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: bipartite graph needs positive sides, got %d,%d", ErrBadSize, m, n)
	}
	b := newBuilder(m+n, opts)
	b.addVertices(m + n)
	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			b.connect(i, j)
		}
	}

	return b.graph, nil
}

// RandomSparse returns a graph on n vertices with exactly edges
// distinct random edges, no loops or parallels. The edge count must
// fit the simple-graph bound.
func RandomSparse(n, edges int, opts ...Option) (*core.Graph, error) {
	if n < 1 || edges < 0 {
		return nil, fmt.Errorf("%w: n=%d edges=%d", ErrBadSize, n, edges)
	}
	max := n * (n - 1) / 2
	b := newBuilder(n, opts)
	if b.opts.Directed {
		max = n * (n - 1)
	}
	if edges > max {
		return nil, fmt.Errorf("%w: %d edges exceed the simple-graph maximum %d", ErrBadSize, edges, max)
	}
	b.addVertices(n)

	type pair struct{ i, j int }
	used := make(map[pair]bool, edges)
	for placed := 0; placed < edges; {
		i, j := b.rng.Intn(n), b.rng.Intn(n)
		if i == j {
			continue
		}
		if !b.opts.Directed && i > j {
			i, j = j, i
		}
		p := pair{i, j}
		if used[p] {
			continue
		}
		used[p] = true
		b.connect(i, j)
		placed++
	}

	return b.graph, nil
}
