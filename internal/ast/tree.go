package ast

import "github.com/OpenVicProject/ovdl-go/internal/symbol"

// Tree is an append-only arena of nodes produced by a single parse. Nodes
// are never moved or freed individually; the whole Tree is released when
// the parse state that owns it is discarded.
//
// Each node kind lives in its own slice (the "one struct per variant"
// layout); a NodeID resolves to a kind tag plus an index into that variant's
// slice, so callers switch on Kind(id) and then fetch the concrete struct
// rather than downcasting through an interface.
type Tree struct {
	kinds   []Kind
	indices []uint32

	identifierValues []FlatValue
	stringValues     []FlatValue
	listValues       []ListValue
	nullValues       []NullValue
	assignStatements []AssignStatement
	valueStatements  []ValueStatement
	eventStatements  []EventStatement
	fileTrees        []FileTree
	lineObjects      []LineObject
	lineFiles        []LineFile
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

// Kind returns the tag for id, or KindInvalid if id is NoNode or unknown.
func (t *Tree) Kind(id NodeID) Kind {
	if t == nil || id == NoNode || int(id) > len(t.kinds) {
		return KindInvalid
	}
	return t.kinds[id-1]
}

func (t *Tree) alloc(k Kind, idx uint32) NodeID {
	t.kinds = append(t.kinds, k)
	t.indices = append(t.indices, idx)
	return NodeID(len(t.kinds))
}

// NewIdentifierValue allocates an IdentifierValue node holding text.
func (t *Tree) NewIdentifierValue(text symbol.Symbol) NodeID {
	idx := uint32(len(t.identifierValues))
	id := t.alloc(KindIdentifierValue, idx)
	t.identifierValues = append(t.identifierValues, FlatValue{ID: id, Kind: KindIdentifierValue, Text: text})
	return id
}

// NewStringValue allocates a StringValue node holding text.
func (t *Tree) NewStringValue(text symbol.Symbol) NodeID {
	idx := uint32(len(t.stringValues))
	id := t.alloc(KindStringValue, idx)
	t.stringValues = append(t.stringValues, FlatValue{ID: id, Kind: KindStringValue, Text: text})
	return id
}

// FlatValue returns the FlatValue payload for id. id must have Kind
// KindIdentifierValue or KindStringValue.
func (t *Tree) FlatValue(id NodeID) *FlatValue {
	switch t.Kind(id) {
	case KindIdentifierValue:
		return &t.identifierValues[t.indices[id-1]]
	case KindStringValue:
		return &t.stringValues[t.indices[id-1]]
	default:
		return nil
	}
}

// NewListValue allocates a ListValue node with the given statement children.
func (t *Tree) NewListValue(statements []NodeID) NodeID {
	idx := uint32(len(t.listValues))
	id := t.alloc(KindListValue, idx)
	t.listValues = append(t.listValues, ListValue{ID: id, Statements: statements})
	return id
}

// ListValue returns the ListValue payload for id, or nil if id is not a
// ListValue.
func (t *Tree) ListValue(id NodeID) *ListValue {
	if t.Kind(id) != KindListValue {
		return nil
	}
	return &t.listValues[t.indices[id-1]]
}

// NewNullValue allocates a NullValue node.
func (t *Tree) NewNullValue() NodeID {
	idx := uint32(len(t.nullValues))
	id := t.alloc(KindNullValue, idx)
	t.nullValues = append(t.nullValues, NullValue{ID: id})
	return id
}

// NewAssignStatement allocates an AssignStatement node.
func (t *Tree) NewAssignStatement(left, right NodeID) NodeID {
	idx := uint32(len(t.assignStatements))
	id := t.alloc(KindAssignStatement, idx)
	t.assignStatements = append(t.assignStatements, AssignStatement{ID: id, Left: left, Right: right})
	return id
}

// AssignStatement returns the AssignStatement payload for id, or nil.
func (t *Tree) AssignStatement(id NodeID) *AssignStatement {
	if t.Kind(id) != KindAssignStatement {
		return nil
	}
	return &t.assignStatements[t.indices[id-1]]
}

// NewValueStatement allocates a ValueStatement node.
func (t *Tree) NewValueStatement(value NodeID) NodeID {
	idx := uint32(len(t.valueStatements))
	id := t.alloc(KindValueStatement, idx)
	t.valueStatements = append(t.valueStatements, ValueStatement{ID: id, Value: value})
	return id
}

// ValueStatement returns the ValueStatement payload for id, or nil.
func (t *Tree) ValueStatement(id NodeID) *ValueStatement {
	if t.Kind(id) != KindValueStatement {
		return nil
	}
	return &t.valueStatements[t.indices[id-1]]
}

// NewEventStatement allocates an EventStatement node.
func (t *Tree) NewEventStatement(isProvinceEvent bool, body NodeID) NodeID {
	idx := uint32(len(t.eventStatements))
	id := t.alloc(KindEventStatement, idx)
	t.eventStatements = append(t.eventStatements, EventStatement{ID: id, IsProvinceEvent: isProvinceEvent, Body: body})
	return id
}

// EventStatement returns the EventStatement payload for id, or nil.
func (t *Tree) EventStatement(id NodeID) *EventStatement {
	if t.Kind(id) != KindEventStatement {
		return nil
	}
	return &t.eventStatements[t.indices[id-1]]
}

// NewFileTree allocates the script AST root.
func (t *Tree) NewFileTree(statements []NodeID) NodeID {
	idx := uint32(len(t.fileTrees))
	id := t.alloc(KindFileTree, idx)
	t.fileTrees = append(t.fileTrees, FileTree{ID: id, Statements: statements})
	return id
}

// FileTree returns the FileTree payload for id, or nil.
func (t *Tree) FileTree(id NodeID) *FileTree {
	if t.Kind(id) != KindFileTree {
		return nil
	}
	return &t.fileTrees[t.indices[id-1]]
}

// NewLineObject allocates a CSV LineObject node.
func (t *Tree) NewLineObject(prefixEnd int, stored []StoredValue, suffixEnd int) NodeID {
	idx := uint32(len(t.lineObjects))
	id := t.alloc(KindLineObject, idx)
	t.lineObjects = append(t.lineObjects, LineObject{ID: id, PrefixEnd: prefixEnd, Stored: stored, SuffixEnd: suffixEnd})
	return id
}

// LineObject returns the LineObject payload for id, or nil.
func (t *Tree) LineObject(id NodeID) *LineObject {
	if t.Kind(id) != KindLineObject {
		return nil
	}
	return &t.lineObjects[t.indices[id-1]]
}

// NewLineFile allocates the CSV AST root.
func (t *Tree) NewLineFile(lines []NodeID) NodeID {
	idx := uint32(len(t.lineFiles))
	id := t.alloc(KindLineFile, idx)
	t.lineFiles = append(t.lineFiles, LineFile{ID: id, Lines: lines})
	return id
}

// LineFile returns the LineFile payload for id, or nil.
func (t *Tree) LineFile(id NodeID) *LineFile {
	if t.Kind(id) != KindLineFile {
		return nil
	}
	return &t.lineFiles[t.indices[id-1]]
}
