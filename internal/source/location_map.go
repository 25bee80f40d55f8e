package source

import "github.com/OpenVicProject/ovdl-go/internal/ast"

// LocationMap is the side table from AST node identity to NodeLocation,
// used instead of embedding locations in node variants (spec: "the side map
// is used instead of embedding locations in nodes to keep node variants
// small").
type LocationMap struct {
	byID map[ast.NodeID]NodeLocation
}

// NewLocationMap returns an empty LocationMap.
func NewLocationMap() *LocationMap {
	return &LocationMap{byID: make(map[ast.NodeID]NodeLocation)}
}

// Set associates node with loc, overwriting any prior association.
func (m *LocationMap) Set(node ast.NodeID, loc NodeLocation) {
	if m.byID == nil {
		m.byID = make(map[ast.NodeID]NodeLocation)
	}
	m.byID[node] = loc
}

// LocationOf returns the location recorded for node. A node with no entry
// reports Synthesized and ok==false; callers that require every parsed node
// to carry a location should treat ok==false as an invariant violation.
func (m *LocationMap) LocationOf(node ast.NodeID) (loc NodeLocation, ok bool) {
	if m == nil || m.byID == nil {
		return Synthesized, false
	}
	loc, ok = m.byID[node]
	return loc, ok
}

// Len reports the number of node associations recorded.
func (m *LocationMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.byID)
}

// Merge copies every association from other into m, overwriting on
// collision. This supports concatenating parses (e.g. stitching together
// locations from multiple included files) without requiring the caller to
// renumber NodeIDs; the original source uses the analogous operation for
// include-file stitching even though include resolution itself is out of
// scope here.
func (m *LocationMap) Merge(other *LocationMap) {
	if other == nil || other.byID == nil {
		return
	}
	if m.byID == nil {
		m.byID = make(map[ast.NodeID]NodeLocation, len(other.byID))
	}
	for id, loc := range other.byID {
		m.byID[id] = loc
	}
}
