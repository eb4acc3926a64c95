package submission

// MetadataColumn is one preserved, typed metadata column attached to a
// Table. Values are kept as the verbatim cell text; the three reserved
// leading columns (id, submission id, datetime) are ordinary
// MetadataColumns by this definition, distinguished only by position.
type MetadataColumn struct {
	Name   string
	Values []string
}

// Table is the N×V boolean submission matrix plus its preserved metadata columns.
type Table struct {
	V int // number of graph units each bit-vector is indexed over

	Bits     []Bitset         // len N
	Metadata []MetadataColumn // each Values has len N
}

// N returns the number of submissions (rows).
func (t *Table) N() int { return len(t.Bits) }

// Column returns the named metadata column, or false if absent.
func (t *Table) Column(name string) (MetadataColumn, bool) {
	for _, c := range t.Metadata {
		if c.Name == name {
			return c, true
		}
	}

	return MetadataColumn{}, false
}

// WithLabelColumn returns a shallow copy of t with an additional metadata
// column holding one label per submission, used by coidb's
// ClustersFromThreshold and ClustersFromNumber to attach each
// submission's cluster assignment to the returned table.
func (t *Table) WithLabelColumn(name string, labels []string) *Table {
	out := &Table{
		V:        t.V,
		Bits:     t.Bits,
		Metadata: make([]MetadataColumn, len(t.Metadata)+1),
	}
	copy(out.Metadata, t.Metadata)
	out.Metadata[len(t.Metadata)] = MetadataColumn{Name: name, Values: labels}

	return out
}
