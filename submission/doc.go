// Package submission ingests citizen-submitted Community of Interest maps
// as bit-sets over a graph's internal unit indices, from either of two
// tabular formats, and exposes the resulting N×V boolean matrix alongside
// the preserved metadata columns.
//
// Errors:
//
//	ErrUnparseableRow     - a submission row failed to parse (InputFormat).
//	ErrSequenceLiteral    - a compressed tile column failed to parse (InputFormat).
//	ErrEmptyInput         - names the EmptyInput kind; LoadWide and LoadCompressed
//	                        do not return it: a file with no rows yields an empty Table.
package submission

import "errors"

// Sentinel errors for submission ingest.
var (
	// ErrUnparseableRow indicates a row in the submission file could not be read.
	ErrUnparseableRow = errors.New("submission: unparseable row")

	// ErrSequenceLiteral indicates a compressed tiles cell failed to parse as a sequence literal.
	ErrSequenceLiteral = errors.New("submission: malformed sequence literal")

	// ErrEmptyInput indicates no submissions survived ingest.
	ErrEmptyInput = errors.New("submission: no submissions after filtering")
)
