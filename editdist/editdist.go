package editdist

import "errors"

// ErrNegativeWeight indicates a negative deletion or insertion weight.
// Distances are only meaningful over non-negative costs, so the input
// is rejected before any computation.
var ErrNegativeWeight = errors.New("editdist: weights must be non-negative")

// Distance computes the two-operation edit distance between a and b.
//
// Only insertion and deletion exist as primitives. The distance is
// derived from the longest common subsequence (LCS): every symbol of a
// outside the LCS must be deleted (cost wDel each), every symbol of b
// outside the LCS must be inserted (cost wIns each). A substitution is
// therefore a deletion plus an insertion at cost wDel+wIns — never a
// discounted single operation. Equal symbols cost nothing.
//
// The distance is symmetric only when wDel == wIns:
//
//	Distance("rajka", "ajka", 100, 49) == 100  // one deletion
//	Distance("ajka", "rajka", 100, 49) == 49   // one insertion
//	Distance("Bécs", "Pécs", 100, 49) == 149   // one substitution
//
// Both inputs may be empty. Multi-byte symbols are handled per rune.
//
// Complexity: O(len(a)·len(b)) time and memory.
func Distance(a, b string, wDel, wIns int) (int, error) {
	// 1) Reject degenerate weights at the boundary.
	if wDel < 0 || wIns < 0 {
		return 0, ErrNegativeWeight
	}

	// 2) Work on runes so multi-byte phoneme symbols count as one unit.
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	// 3) Fill the LCS length table L, where L[i][j] is the length of
	//    the longest common subsequence of ra[:i] and rb[:j].
	L := make([][]int, m+1)
	for i := range L {
		L[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				L[i][j] = L[i-1][j-1] + 1
			} else if L[i-1][j] >= L[i][j-1] {
				L[i][j] = L[i-1][j]
			} else {
				L[i][j] = L[i][j-1]
			}
		}
	}

	// 4) Everything outside the LCS is deleted from a or inserted from b.
	lcs := L[m][n]

	return (m-lcs)*wDel + (n-lcs)*wIns, nil
}

// Matrix draws the unit-cost edit-distance table between every prefix
// of target and every prefix of source. Row r, column c holds the
// minimum number of insertions/deletions turning target[:c] into
// source[:r]; the full distance sits in the bottom-right corner.
//
// Layout: rows = len(source)+1, cols = len(target)+1. Row 0 and
// column 0 accumulate 0,1,2,… (distance from the empty prefix). Equal
// symbols copy the diagonal value; unequal symbols take the cheaper of
// the cell above and the cell to the left, plus one. Cell [1][1] is
// anchored to 2 when the first symbols differ.
//
// The result is monotonic non-decreasing along rows and columns and is
// consumed by align.MatrixToGraph.
//
// Complexity: O(len(target)·len(source)) time and memory.
func Matrix(target, source string) [][]int {
	// 1) Prepend the empty-prefix sentinel to both sequences.
	tgt := append([]rune{'#'}, []rune(target)...)
	src := append([]rune{'#'}, []rune(source)...)

	// 2) Allocate the table: one row per source prefix, one column per
	//    target prefix.
	sol := make([][]int, len(src))
	for r := range sol {
		sol[r] = make([]int, len(tgt))
	}

	// 3) First row and first column count cumulative single-unit edits.
	for c := range tgt {
		sol[0][c] = c
	}
	for r := range src {
		sol[r][0] = r
	}

	// 4) Anchor the corner: differing first symbols cost a full
	//    delete+insert pair.
	if len(tgt) > 1 && len(src) > 1 && tgt[1] != src[1] {
		sol[1][1] = 2
	}

	// 5) Standard two-operation recurrence over the remaining cells.
	for c := 1; c < len(tgt); c++ {
		for r := 1; r < len(src); r++ {
			if tgt[c] != src[r] {
				sol[r][c] = minInt(sol[r-1][c], sol[r][c-1]) + 1
			} else {
				sol[r][c] = sol[r-1][c-1]
			}
		}
	}

	return sol
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
