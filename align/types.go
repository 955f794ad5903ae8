// Package align defines core types and sentinel errors for the
// alignment pipeline: coordinates, the grid graph, and edit
// operations.
package align

import (
	"errors"
	"fmt"
)

// Default edge weights for the alignment grid. Deleting a sound is
// roughly twice as expensive as inserting one, so two insertions
// (2·49=98) stay cheaper than a single deletion (100). Only the
// relative costs matter.
const (
	// WeightDel is the default cost of a deletion step.
	WeightDel = 100
	// WeightIns is the default cost of an insertion step.
	WeightIns = 49
)

// Sentinel errors for alignment operations.
var (
	// ErrEmptyMatrix indicates the input matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("align: matrix must have at least one row and one column")
	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("align: edge weights must be non-negative")
	// ErrNilGraph indicates a nil *Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("align: graph is nil")
	// ErrCoordOutside indicates a start or end coordinate outside the grid.
	ErrCoordOutside = errors.New("align: coordinate outside the grid")
	// ErrNoPath indicates the end coordinate is unreachable from start.
	ErrNoPath = errors.New("align: no path between start and end")
	// ErrScriptOverrun indicates an edit script consumed more symbols
	// than the input sequence provides.
	ErrScriptOverrun = errors.New("align: edit script consumes more symbols than the sequence holds")
)

// Coord addresses one cell of the alignment grid. Row indexes a
// prefix of the attested (to) sequence, Col a prefix of the query
// (from) sequence.
type Coord struct {
	Row, Col int
}

// OpKind enumerates the four edit operations.
type OpKind uint8

const (
	// OpKeep consumes one input symbol and emits it unchanged.
	OpKeep OpKind = iota
	// OpInsert emits a new symbol without consuming input.
	OpInsert
	// OpDelete consumes one input symbol and drops it.
	OpDelete
	// OpSubstitute consumes one input symbol and emits a replacement.
	OpSubstitute
)

// EditOp is a single edit operation. Sym is the symbol the operation
// is stated over: the consumed symbol for keep/delete/substitute, the
// emitted symbol for insert. With is the replacement symbol and is
// set for substitutions only.
type EditOp struct {
	Kind OpKind
	Sym  string
	With string
}

// Keep returns a keep operation over sym.
func Keep(sym string) EditOp { return EditOp{Kind: OpKeep, Sym: sym} }

// Insert returns an insert operation emitting sym.
func Insert(sym string) EditOp { return EditOp{Kind: OpInsert, Sym: sym} }

// Delete returns a delete operation consuming sym.
func Delete(sym string) EditOp { return EditOp{Kind: OpDelete, Sym: sym} }

// Substitute returns a substitution consuming sym and emitting with.
func Substitute(sym, with string) EditOp { return EditOp{Kind: OpSubstitute, Sym: sym, With: with} }

// String renders the operation in the human-readable form used across
// the module: "keep C", "insert V", "delete C", "substitute C by V".
func (op EditOp) String() string {
	switch op.Kind {
	case OpKeep:
		return "keep " + op.Sym
	case OpInsert:
		return "insert " + op.Sym
	case OpDelete:
		return "delete " + op.Sym
	case OpSubstitute:
		return fmt.Sprintf("substitute %s by %s", op.Sym, op.With)
	default:
		return fmt.Sprintf("unknown(%d) %s", op.Kind, op.Sym)
	}
}

// Script is an ordered edit script.
type Script []EditOp

// Strings renders every operation of the script; handy in tests and
// for audit output.
func (s Script) Strings() []string {
	out := make([]string, len(s))
	for i, op := range s {
		out[i] = op.String()
	}

	return out
}
