// Package graph holds the adjacency graph over geographic units (blocks,
// block groups, or precincts) that every Community-of-Interest submission is
// drawn against, and the dense all-pairs distance matrix derived from it.
//
// A Graph is built once, from a node-link JSON adjacency description, and
// is treated as immutable from then on: internal vertex indices are a
// contiguous permutation of [0, V), assigned in load order, and the mapping
// from external UnitId to internal index is total and injective. The graph
// may be disconnected.
//
// IntMatrix is the dense V×V distance matrix produced by running a
// breadth-first search from every vertex. Unreachable pairs hold the
// sentinel value V+1 ("infinity stand-in"); the matrix is symmetric with a
// zero diagonal and is immutable once built.
//
// Errors:
//
//	ErrEmptyUnitID          - a node's id attribute value is empty.
//	ErrMissingIDAttribute   - a node is missing the configured id attribute.
//	ErrUnitNotFound         - a referenced UnitId has no matching vertex.
//	ErrMalformedAdjacency   - the node-link document could not be parsed.
//	ErrDimensionMismatch    - a cached distance matrix does not match V.
package graph

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyUnitID indicates a node's id attribute resolved to the empty string.
	ErrEmptyUnitID = errors.New("graph: unit id is empty")

	// ErrMissingIDAttribute indicates a node is missing the configured id attribute (SchemaMismatch).
	ErrMissingIDAttribute = errors.New("graph: node missing id attribute")

	// ErrUnitNotFound indicates a lookup referenced a UnitId absent from the graph.
	ErrUnitNotFound = errors.New("graph: unit not found")

	// ErrMalformedAdjacency indicates the node-link document failed to parse (InputFormat).
	ErrMalformedAdjacency = errors.New("graph: malformed adjacency document")

	// ErrDimensionMismatch indicates a cached distance matrix's dimensions don't match the graph's V (SchemaMismatch).
	ErrDimensionMismatch = errors.New("graph: distance cache dimensions do not match graph")
)
