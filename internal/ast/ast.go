// Package ast defines the tagged-variant syntax trees produced by the
// script and CSV parsers.
//
// Node kinds are closed tagged variants — one Kind value plus one struct
// type per kind — rather than an open interface hierarchy. Walks switch on
// Kind instead of downcasting, and byte-range information lives outside the
// node in a source.LocationMap rather than being embedded in every variant.
package ast

import "github.com/OpenVicProject/ovdl-go/internal/symbol"

// NodeID identifies a node within a single parse's arena. NodeIDs are
// 1-based; NoNode is the sentinel for "no node" / a synthesized reference.
type NodeID uint32

// NoNode is the sentinel NodeID denoting the absence of a node.
const NoNode NodeID = 0

// Kind tags the concrete shape of a Node.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no real node ever carries it.
	KindInvalid Kind = iota

	// Script node kinds.
	KindIdentifierValue
	KindStringValue
	KindListValue
	KindNullValue
	KindAssignStatement
	KindValueStatement
	KindEventStatement
	KindFileTree

	// CSV node kinds.
	KindLineObject
	KindLineFile
)

func (k Kind) String() string {
	switch k {
	case KindIdentifierValue:
		return "IdentifierValue"
	case KindStringValue:
		return "StringValue"
	case KindListValue:
		return "ListValue"
	case KindNullValue:
		return "NullValue"
	case KindAssignStatement:
		return "AssignStatement"
	case KindValueStatement:
		return "ValueStatement"
	case KindEventStatement:
		return "EventStatement"
	case KindFileTree:
		return "FileTree"
	case KindLineObject:
		return "LineObject"
	case KindLineFile:
		return "LineFile"
	default:
		return "Invalid"
	}
}

// Value is the closed set of script right-hand-side shapes: FlatValue
// (Identifier or String), ListValue, or NullValue. Every Value-shaped
// NodeID's Kind is one of these.
type Value = NodeID

// FlatValue is the common shape of IdentifierValue and StringValue: a
// single interned token.
type FlatValue struct {
	ID   NodeID
	Kind Kind // KindIdentifierValue or KindStringValue
	Text symbol.Symbol
}

// ListValue is an ordered sequence of statements enclosed by `{ }`.
type ListValue struct {
	ID         NodeID
	Statements []NodeID
}

// NullValue is an absent/empty right-hand side.
type NullValue struct {
	ID NodeID
}

// AssignStatement is `left = right`. Left is always a FlatValue node.
type AssignStatement struct {
	ID    NodeID
	Left  NodeID // Kind == KindIdentifierValue or KindStringValue
	Right NodeID // a Value: Identifier/String/ListValue/NullValue
}

// ValueStatement is a bare value occurring at statement position.
type ValueStatement struct {
	ID    NodeID
	Value NodeID
}

// EventStatement is a `country_event = { ... }` / `province_event = { ... }`
// block.
type EventStatement struct {
	ID              NodeID
	IsProvinceEvent bool
	Body            NodeID // KindListValue
}

// FileTree is the script AST root: an ordered sequence of top-level
// statements.
type FileTree struct {
	ID         NodeID
	Statements []NodeID
}

// LineObject is one CSV record: an ordered sequence of (absolute field
// index, value) pairs, plus PrefixEnd (count of leading empty fields) and
// SuffixEnd (one past the last field index, empty or not).
//
// ValueFor(k) == "" iff k < PrefixEnd, k >= SuffixEnd, or no stored pair has
// position k. ValueCount() == SuffixEnd.
type LineObject struct {
	ID        NodeID
	PrefixEnd int
	Stored    []StoredValue
	SuffixEnd int
}

// StoredValue is one non-empty CSV field: its absolute position in the line
// and its interned text.
type StoredValue struct {
	Position int
	Value    symbol.Symbol
}

// ValueFor returns the text stored at absolute field position k, or "" if
// k falls outside [PrefixEnd, SuffixEnd) or has no stored pair.
func (l *LineObject) ValueFor(k int, interner *symbol.Interner) string {
	if l == nil || k < l.PrefixEnd || k >= l.SuffixEnd {
		return ""
	}
	for _, sv := range l.Stored {
		if sv.Position == k {
			return interner.Text(sv.Value)
		}
	}
	return ""
}

// ValueCount reports the logical field count of the line, equal to
// SuffixEnd.
func (l *LineObject) ValueCount() int {
	if l == nil {
		return 0
	}
	return l.SuffixEnd
}

// LineFile is the CSV AST root: an ordered sequence of LineObjects in
// source order.
type LineFile struct {
	ID    NodeID
	Lines []NodeID
}
