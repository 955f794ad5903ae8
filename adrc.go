// adrc.go holds the engine type and its two public prediction
// operations, Adapt and Reconstruct, plus phonotactic repair.
package adrc

import (
	"fmt"
	"strings"

	"github.com/lingraph/adrc/align"
	"github.com/lingraph/adrc/editdist"
	"github.com/lingraph/adrc/sctable"
)

// Adrc (adapt-or-reconstruct) is the prediction engine. It owns one
// correspondence table and one prosodic inventory; both are
// replaceable at any time and take effect on the next call. The
// engine never mutates them and caches nothing across calls.
//
// An Adrc instance is not safe for concurrent mutation: replacing the
// table or inventory while a call is in flight is undefined. Callers
// needing parallelism construct independent instances — they share no
// mutable state.
type Adrc struct {
	table     *sctable.Table
	inventory []string
}

// New returns an engine over the given table and inventory. Either
// may be nil/empty; operations that need the missing piece fail with
// ErrNoTable or ErrEmptyInventory.
func New(table *sctable.Table, inventory []string) *Adrc {
	return &Adrc{table: table, inventory: inventory}
}

// Open constructs an engine from the JSON artifacts on disk. Either
// path may be empty, leaving that slot unset.
func Open(tablePath, inventoryPath string) (*Adrc, error) {
	a := &Adrc{}
	if tablePath != "" {
		t, err := sctable.Load(tablePath)
		if err != nil {
			return nil, err
		}
		a.table = t
	}
	if inventoryPath != "" {
		inv, err := sctable.LoadInventory(inventoryPath)
		if err != nil {
			return nil, err
		}
		a.inventory = inv
	}

	return a, nil
}

// SetTable replaces the correspondence table and returns the previous
// one. Not safe to call while a prediction is in flight.
func (a *Adrc) SetTable(t *sctable.Table) *sctable.Table {
	prev := a.table
	a.table = t

	return prev
}

// Table returns the currently set correspondence table.
func (a *Adrc) Table() *sctable.Table { return a.table }

// SetInventory replaces the prosodic inventory and returns the
// previous one. Not safe to call while a prediction is in flight.
func (a *Adrc) SetInventory(inv []string) []string {
	prev := a.inventory
	a.inventory = inv

	return prev
}

// Inventory returns the currently set prosodic inventory.
func (a *Adrc) Inventory() []string { return a.inventory }

// Adapt predicts how the space-separated phoneme sequence ipa would be
// adapted as a loanword in the target language.
//
// howMany selects the output mode: 1 yields the single best form
// (KindExact), larger budgets yield the howMany globally cheapest
// combinations under the additive rank model (KindRanked). A non-empty
// prosody triggers phonotactic repair before substitution. Deletion
// markers ("-") are stripped from the joined forms.
//
// Symbols absent from the table produce a KindDiagnostic result, not
// an error; hard errors are reserved for a missing table, an empty
// inventory during repair, and malformed edit scripts.
func (a *Adrc) Adapt(ipa string, howMany int, prosody string) (Result, error) {
	// 1) The table is mandatory for any prediction.
	if a.table == nil {
		return Result{}, ErrNoTable
	}

	// 2) Tokenize and, if requested, repair the phonotactics first.
	symbols := strings.Fields(ipa)
	if prosody != "" {
		repaired, err := a.RepairPhonotactics(symbols, prosody)
		if err != nil {
			return Result{}, err
		}
		symbols = repaired
	}

	// 3) Budgeted candidate selection per position.
	pools, missing, err := a.Candidates(symbols, howMany)
	if err != nil {
		return Result{}, err
	}
	if len(missing) > 0 {
		return diagnostic(missing), nil
	}

	// 4) Enumerate combinations in rank order and cut at the budget.
	forms := combine(pools, howMany)

	kind := KindRanked
	if howMany == 1 {
		kind = KindExact
	}

	return Result{Kind: kind, Forms: forms}, nil
}

// Reconstruct predicts the ancestor form of the space-separated
// phoneme sequence ipa as one anchored regular expression
// (KindRegex). howMany bounds the per-position candidate lists the
// same way it does for Adapt; budgets at or above the full product
// compile every attested candidate.
//
// Symbols absent from the table produce a KindDiagnostic result of the
// shape "l not old".
func (a *Adrc) Reconstruct(ipa string, howMany int) (Result, error) {
	// 1) The table is mandatory for any prediction.
	if a.table == nil {
		return Result{}, ErrNoTable
	}

	// 2) Tokenize and reject unknown symbols up front.
	symbols := strings.Fields(ipa)
	pools, missing, err := a.Candidates(symbols, howMany)
	if err != nil {
		return Result{}, err
	}
	if len(missing) > 0 {
		return diagnostic(missing), nil
	}

	// 3) Compile each position into an alternation group. Positions
	//    holding only the deletion marker vanish entirely.
	var sb strings.Builder
	sb.WriteString("^")
	for _, pool := range pools {
		if len(pool) == 1 && pool[0] == "-" {
			continue
		}
		sb.WriteString(ListToRegex(pool))
	}
	sb.WriteString("$")

	return Result{Kind: KindRegex, Pattern: sb.String()}, nil
}

// RepairPhonotactics reshapes a phoneme sequence so that its
// phonotactic skeleton matches what the table (or, failing that, the
// inventory) predicts for prosody.
//
// The predicted skeleton is the top-ranked pattern correspondence for
// prosody, or the nearest inventory pattern when the table has no data
// for it. The edit script between prosody and the prediction is then
// replayed against the phoneme sequence itself; inserted slots carry
// the pattern placeholder symbol ("C" or "V").
func (a *Adrc) RepairPhonotactics(symbols []string, prosody string) ([]string, error) {
	if a.table == nil {
		return nil, ErrNoTable
	}

	// 1) Predict the target skeleton.
	predicted := ""
	if cands := a.table.Patterns[prosody]; len(cands) > 0 {
		predicted = cands[0]
	} else {
		closest, err := a.ClosestPhonotactics(prosody)
		if err != nil {
			return nil, err
		}
		predicted = closest
	}

	// 2) Align prosody against the prediction and replay the script
	//    against the phonemes carrying that prosody.
	m := editdist.Matrix(prosody, predicted)
	g, err := align.MatrixToGraph(m, align.WeightDel, align.WeightIns)
	if err != nil {
		return nil, err
	}
	path, err := align.ShortestPath(g, align.Coord{}, g.Terminal())
	if err != nil {
		return nil, err
	}
	ops := align.PathToOps(path, prosody, predicted)

	out, err := align.Apply(symbols, ops)
	if err != nil {
		return nil, fmt.Errorf("repairing %q against %q: %w", strings.Join(symbols, " "), predicted, err)
	}

	return out, nil
}

// ClosestPhonotactics returns the inventory pattern nearest to query
// under the two-operation edit distance with default weights. Ties go
// to the pattern encountered first in inventory order, so results are
// stable across runs.
func (a *Adrc) ClosestPhonotactics(query string) (string, error) {
	if len(a.inventory) == 0 {
		return "", ErrEmptyInventory
	}

	best, bestDist := "", -1
	for _, pattern := range a.inventory {
		d, err := editdist.Distance(query, pattern, align.WeightDel, align.WeightIns)
		if err != nil {
			return "", err
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = pattern, d
		}
	}

	return best, nil
}

// diagnostic renders the unknown-symbol result: first-seen order,
// deduplicated, in the shape "l, r not old".
func diagnostic(missing []string) Result {
	seen := make(map[string]bool, len(missing))
	uniq := make([]string, 0, len(missing))
	for _, sym := range missing {
		if !seen[sym] {
			seen[sym] = true
			uniq = append(uniq, sym)
		}
	}

	return Result{
		Kind:       KindDiagnostic,
		Diagnostic: strings.Join(uniq, ", ") + " not old",
	}
}
