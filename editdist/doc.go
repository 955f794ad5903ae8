// Package editdist measures how far apart two symbol sequences are
// when only two primitive operations exist: insertion and deletion.
//
// What:
//
//   - Distance computes a weighted two-operation edit distance between
//     two strings. A substitution is modeled as a deletion followed by
//     an insertion and therefore always costs wDel+wIns; equal symbols
//     match for free. Weights are asymmetric on purpose: losing a
//     sound and gaining a sound are different real-world events.
//   - Matrix draws the full dynamic-programming table of unit-cost
//     edit distances between every prefix pair of two sequences. The
//     matrix feeds the align package, which extracts one deterministic
//     edit script from it.
//
// Why:
//
//   - Loanword phonology: with the defaults used downstream
//     (wDel=100, wIns=49) two insertions are cheaper than one
//     deletion, so repairs prefer adding sounds over dropping them.
//   - Phonotactics: nearest-pattern lookup ranks candidate CV
//     skeletons by this distance.
//
// Complexity:
//
//   - Distance: O(n·m) time, O(n·m) memory (LCS table).
//   - Matrix:   O(n·m) time, O(n·m) memory.
//
// Errors:
//
//   - ErrNegativeWeight: a negative deletion or insertion weight was
//     supplied; rejected before any table is built.
package editdist
