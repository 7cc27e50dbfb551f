// Package euler: sentinel errors.
package euler

import "errors"

// Sentinel errors for the euler package.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNotDirected is returned when a directed operation receives an
	// undirected graph.
	ErrNotDirected = errors.New("euler: operation requires a directed graph")

	// ErrNotUndirected is returned when an undirected operation
	// receives a directed graph.
	ErrNotUndirected = errors.New("euler: operation requires an undirected graph")

	// ErrNoEulerianCircuit is returned when the degree conditions for
	// a circuit fail.
	ErrNoEulerianCircuit = errors.New("euler: no eulerian circuit exists")

	// ErrNoEulerianPath is returned when the degree conditions for a
	// path fail.
	ErrNoEulerianPath = errors.New("euler: no eulerian path exists")

	// ErrDisconnected is returned when the edges span more than one
	// component.
	ErrDisconnected = errors.New("euler: edges are not connected")
)
