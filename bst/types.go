// Package bst: sentinel errors shared by the tree variants.
package bst

import "errors"

var (
	// ErrEmptyTree indicates Min/Max/DeleteMin/DeleteMax on an empty table.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrKeyNotFound indicates Delete/Floor/Ceiling found no suitable key.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrRankOutOfBounds indicates Select with rank outside [0, Size).
	ErrRankOutOfBounds = errors.New("bst: rank out of bounds")
)
