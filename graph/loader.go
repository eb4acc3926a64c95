package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// nodeLinkDoc mirrors the node-link JSON shape: an object with a "nodes"
// array (each node a free-form attribute bag) and an "adjacency" array
// (one entry per node, itself an array of link objects naming the
// neighbor by position in "nodes").
type nodeLinkDoc struct {
	Nodes     []map[string]json.RawMessage `json:"nodes"`
	Adjacency [][]linkEntry                `json:"adjacency"`
}

// linkEntry names one outgoing link by the target's position in Nodes.
type linkEntry struct {
	ID int `json:"id"`
}

// LoadNodeLinkFile reads a node-link adjacency file from path.
func LoadNodeLinkFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: opening adjacency file: %w", err)
	}
	defer f.Close()

	return LoadNodeLink(f, opts...)
}

// LoadNodeLink parses a node-link JSON document from r and builds a Graph.
//
// Each node must carry the configured id attribute (default "GEOID10");
// ErrMissingIDAttribute is returned otherwise. Internal indices are
// assigned in the order nodes appear in the document.
func LoadNodeLink(r io.Reader, opts ...Option) (*Graph, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var doc nodeLinkDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAdjacency, err)
	}

	g := NewGraph()
	for i, node := range doc.Nodes {
		id, err := extractID(node, cfg)
		if err != nil {
			return nil, fmt.Errorf("graph: node %d: %w", i, err)
		}
		if _, err := g.AddUnit(id); err != nil {
			return nil, fmt.Errorf("graph: node %d: %w", i, err)
		}
	}

	for i, links := range doc.Adjacency {
		if i >= len(doc.Nodes) {
			break
		}
		fromID, _ := g.UnitID(i)
		for _, link := range links {
			if link.ID < 0 || link.ID >= len(doc.Nodes) {
				return nil, fmt.Errorf("%w: adjacency entry references node %d out of range",
					ErrMalformedAdjacency, link.ID)
			}
			toID, _ := g.UnitID(link.ID)
			if err := g.AddEdge(fromID, toID); err != nil {
				return nil, fmt.Errorf("graph: edge %s-%s: %w", fromID, toID, err)
			}
		}
	}

	return g, nil
}

// extractID reads and validates the configured id attribute from a raw node.
func extractID(node map[string]json.RawMessage, cfg loadConfig) (string, error) {
	raw, ok := node[cfg.idAttribute]
	if !ok {
		return "", ErrMissingIDAttribute
	}

	if cfg.stringIDs {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s == "" {
				return "", ErrEmptyUnitID
			}

			return s, nil
		}
	}

	// Fall back to decoding whatever scalar is present and stringifying it,
	// so numeric GEOIDs round-trip the same way the Python source's
	// `.apply(str)` does.
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", fmt.Errorf("%w: attribute %q is not a scalar", ErrMalformedAdjacency, cfg.idAttribute)
	}
	if num.String() == "" {
		return "", ErrEmptyUnitID
	}

	return num.String(), nil
}
