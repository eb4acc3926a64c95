package submission

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mggg/coi-analysis/graph"
)

// numMetadataColumns is the count of reserved leading metadata columns in
// both ingest formats: id, submission id, datetime.
const numMetadataColumns = 3

var metadataColumnNames = [numMetadataColumns]string{"id", "submission_id", "datetime"}

// DropWarning aggregates how many tile references were dropped during
// ingest for naming units absent from the graph.
type DropWarning struct {
	DroppedTiles int
}

// String renders the single aggregate drop-warning message, or the empty
// string when nothing was dropped.
func (w DropWarning) String() string {
	if w.DroppedTiles == 0 {
		return ""
	}

	return fmt.Sprintf("submission: dropped %d tile reference(s) absent from the graph", w.DroppedTiles)
}

// truthy reports whether a wide-format cell should be read as present.
func truthy(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "0", "false", "f", "no", "n":
		return false
	default:
		return true
	}
}

// LoadWide parses the wide boolean ingest format: three leading metadata
// columns followed by one boolean column per UnitId (named by the graph's
// unit ids, in the header row).
func LoadWide(r io.Reader, g *graph.Graph) (*Table, DropWarning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, DropWarning{}, fmt.Errorf("%w: reading header: %v", ErrUnparseableRow, err)
	}
	if len(header) < numMetadataColumns {
		return nil, DropWarning{}, fmt.Errorf("%w: header has fewer than %d columns", ErrUnparseableRow, numMetadataColumns)
	}

	unitColumns := header[numMetadataColumns:]

	table := &Table{V: g.V()}
	for _, name := range metadataColumnNames {
		table.Metadata = append(table.Metadata, MetadataColumn{Name: name})
	}

	dropped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, DropWarning{}, fmt.Errorf("%w: %v", ErrUnparseableRow, err)
		}
		if len(record) != len(header) {
			return nil, DropWarning{}, fmt.Errorf("%w: row has %d columns, header has %d", ErrUnparseableRow, len(record), len(header))
		}

		for i := 0; i < numMetadataColumns; i++ {
			table.Metadata[i].Values = append(table.Metadata[i].Values, record[i])
		}

		bs := NewBitset(g.V())
		for i, unitID := range unitColumns {
			if !truthy(record[numMetadataColumns+i]) {
				continue
			}
			idx, ok := g.Index(unitID)
			if !ok {
				dropped++
				continue
			}
			bs.Set(idx)
		}
		table.Bits = append(table.Bits, bs)
	}

	return table, DropWarning{DroppedTiles: dropped}, nil
}

// LoadCompressed parses the compressed ingest format: three leading
// metadata columns plus one tilesCol column holding a sequence literal of
// UnitIds.
func LoadCompressed(r io.Reader, g *graph.Graph, tilesCol string) (*Table, DropWarning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, DropWarning{}, fmt.Errorf("%w: reading header: %v", ErrUnparseableRow, err)
	}

	tilesIdx := -1
	for i, h := range header {
		if h == tilesCol {
			tilesIdx = i

			break
		}
	}
	if tilesIdx < 0 {
		return nil, DropWarning{}, fmt.Errorf("%w: tiles column %q not found", ErrUnparseableRow, tilesCol)
	}
	if len(header) < numMetadataColumns+1 {
		return nil, DropWarning{}, fmt.Errorf("%w: header has fewer than %d columns", ErrUnparseableRow, numMetadataColumns+1)
	}

	table := &Table{V: g.V()}
	for _, name := range metadataColumnNames {
		table.Metadata = append(table.Metadata, MetadataColumn{Name: name})
	}

	dropped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, DropWarning{}, fmt.Errorf("%w: %v", ErrUnparseableRow, err)
		}
		if len(record) != len(header) {
			return nil, DropWarning{}, fmt.Errorf("%w: row has %d columns, header has %d", ErrUnparseableRow, len(record), len(header))
		}

		for i := 0; i < numMetadataColumns; i++ {
			table.Metadata[i].Values = append(table.Metadata[i].Values, record[i])
		}

		tiles, err := parseSequenceLiteral(record[tilesIdx])
		if err != nil {
			return nil, DropWarning{}, fmt.Errorf("submission: row tiles: %w", err)
		}

		bs := NewBitset(g.V())
		for _, unitID := range tiles {
			idx, ok := g.Index(unitID)
			if !ok {
				dropped++
				continue
			}
			bs.Set(idx)
		}
		table.Bits = append(table.Bits, bs)
	}

	return table, DropWarning{DroppedTiles: dropped}, nil
}
