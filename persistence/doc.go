// Package persistence saves and restores the distance-matrix cache and the
// fully constructed analysis database.
//
// The distance-matrix cache is the textual comma-delimited format
// graph.IntMatrix already implements; this package's SaveDistanceCSV and
// LoadDistanceCSV are thin delegations. The database snapshot's on-disk
// format is not part of any external contract — only round-trip fidelity
// is — so it is stored as a single gob-encoded BLOB in the one row of a
// SQLite table (an id key column and a data column).
package persistence

import "errors"

// ErrNoSnapshot indicates a snapshot database has no stored row to load.
var ErrNoSnapshot = errors.New("persistence: no snapshot stored at this path")
