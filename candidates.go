// candidates.go implements the budgeted candidate-selection machinery
// behind Adapt and Reconstruct: per-position candidate pools, rank
// gaps, and the cheapest-improvement-first relaxation loop.
package adrc

import (
	"math"
	"strings"

	"github.com/lingraph/adrc/sctable"
)

// Candidates replaces every symbol of a word with the list of target
// candidates actually needed to realize the budget howMany.
//
// If howMany covers the full Cartesian product, each position's
// complete ranked list is returned. Otherwise selection starts from
// the single best candidate per position and repeatedly widens the
// position whose best-vs-next frequency gap is smallest — the cheapest
// available improvement is exhausted first — until the product of pool
// sizes reaches the budget. Positions tied on the smallest gap are
// widened round-robin until the gap vector changes.
//
// missing lists the symbols with no table entry, in input order; when
// it is non-empty no pools are returned.
func (a *Adrc) Candidates(symbols []string, howMany int) (pools [][]string, missing []string, err error) {
	if a.table == nil {
		return nil, nil, ErrNoTable
	}

	// 1) Look up every symbol; collect the unknown ones.
	full := make([][]string, len(symbols))
	for i, sym := range symbols {
		cands, ok := a.table.Sounds[sym]
		if !ok {
			missing = append(missing, sym)
			continue
		}
		full[i] = cands
	}
	if len(missing) > 0 {
		return nil, missing, nil
	}

	// 2) A budget at or above the full product needs no selection.
	if howMany >= prodLens(full) {
		out := make([][]string, len(full))
		for i, cands := range full {
			out[i] = append([]string(nil), cands...)
		}

		return out, nil, nil
	}

	// 3) Cap every pool with the end marker and seed the output with
	//    the top-ranked candidate per position.
	work := make([][]string, len(full))
	out := make([][]string, len(full))
	for i, cands := range full {
		work[i] = append(append([]string(nil), cands...), endMarker)
		out[i] = []string{cands[0]}
	}

	// 4) Relax the cheapest position until the budget is covered.
	for howMany > prodLens(out) {
		diffs := a.RankDiffs(work, symbols)

		minVal := diffs[0]
		for _, d := range diffs[1:] {
			if d < minVal {
				minVal = d
			}
		}
		var indices []int
		for i, d := range diffs {
			if d == minVal {
				indices = append(indices, i)
			}
		}

		if len(indices) == 1 {
			work, out = MoveCandidate(work, indices[0], out)

			continue
		}

		// Several positions tie on the cheapest gap: widen them in
		// turn until the gap vector shifts or the budget is reached.
		turn := 0
		cur := diffs
		for intsEqual(cur, diffs) && howMany > prodLens(out) {
			work, out = MoveCandidate(work, indices[turn%len(indices)], out)
			turn++
			cur = a.RankDiffs(work, symbols)
		}
	}

	return out, nil, nil
}

// RankDiffs reports, per position, how much prediction quality the
// next candidate would cost: the difference in observed frequency
// between the pool's current and next candidate.
//
// Two sentinels steer the relaxation loop: a pool down to its last
// real candidate (next is the end marker) reports math.MaxInt and can
// never advance again; a pool whose current pair is unattested
// reports freezeRank, deferring heuristic candidates until every
// attested one is in play.
func (a *Adrc) RankDiffs(pools [][]string, symbols []string) []int {
	if a.table == nil {
		return nil
	}

	diffs := make([]int, 0, len(pools))
	for i, pool := range pools {
		first := a.table.SoundFreq[sctable.PairKey(symbols[i], pool[0])]

		if len(pool) == 2 { // only the current candidate and the end marker remain
			diffs = append(diffs, math.MaxInt)

			continue
		}
		if first == 0 {
			diffs = append(diffs, freezeRank)

			continue
		}

		next := a.table.SoundFreq[sctable.PairKey(symbols[i], pool[1])]
		diffs = append(diffs, first-next)
	}

	return diffs
}

// MoveCandidate advances one position: the next candidate of
// pools[idx] moves into out[idx] and the pool shifts by one. Both
// slices are updated in place and returned.
func MoveCandidate(pools [][]string, idx int, out [][]string) ([][]string, [][]string) {
	out[idx] = append(out[idx], pools[idx][1])
	pools[idx] = pools[idx][1:]

	return pools, out
}

// prodLens multiplies the pool sizes; the empty product is 1.
func prodLens(pools [][]string) int {
	prod := 1
	for _, pool := range pools {
		prod *= len(pool)
	}

	return prod
}

// intsEqual reports whether two int slices hold the same values.
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// combine enumerates the Cartesian product of the pools in rank order
// (rightmost position varies fastest), joins each combination, strips
// deletion markers, and stops at limit forms.
func combine(pools [][]string, limit int) []string {
	if total := prodLens(pools); limit > total {
		limit = total
	}

	forms := make([]string, 0, limit)
	idx := make([]int, len(pools))
	for len(forms) < limit {
		var sb strings.Builder
		for p, i := range idx {
			sb.WriteString(pools[p][i])
		}
		forms = append(forms, strings.ReplaceAll(sb.String(), "-", ""))

		// Advance the odometer; carry leftward.
		p := len(pools) - 1
		for ; p >= 0; p-- {
			idx[p]++
			if idx[p] < len(pools[p]) {
				break
			}
			idx[p] = 0
		}
		if p < 0 {
			break
		}
	}

	return forms
}
