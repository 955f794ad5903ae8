package adrc

import "errors"

// Sentinel errors for the prediction engine.
var (
	// ErrNoTable indicates the engine has no correspondence table set.
	ErrNoTable = errors.New("adrc: no correspondence table set")
	// ErrEmptyInventory indicates nearest-pattern lookup was attempted
	// with no prosodic inventory; repair cannot proceed without one.
	ErrEmptyInventory = errors.New("adrc: prosodic inventory is empty")
)

// Kind tags the shape of a prediction result.
type Kind uint8

const (
	// KindExact holds the single best form.
	KindExact Kind = iota
	// KindRanked holds the top-N best forms in rank order.
	KindRanked
	// KindRegex holds one anchored pattern matching every admissible
	// combination at once.
	KindRegex
	// KindDiagnostic reports symbols the table knows nothing about;
	// no forms were produced.
	KindDiagnostic
)

// Result is the tagged outcome of Adapt or Reconstruct. Exactly one
// payload field is populated, selected by Kind: Forms for KindExact
// and KindRanked, Pattern for KindRegex, Diagnostic for
// KindDiagnostic.
type Result struct {
	Kind       Kind
	Forms      []string
	Pattern    string
	Diagnostic string
}

// endMarker caps each candidate pool during budgeted selection; a pool
// whose next element is the marker can never advance again.
const endMarker = "$"

// freezeRank is the rank difference reported for a pool whose current
// pair has no observed frequency. It pauses that pool until only
// exhausted pools (math.MaxInt) remain.
const freezeRank = 9_999_999
