// Package align extracts one deterministic edit script from an
// edit-distance matrix and replays it against a concrete symbol
// sequence.
//
// What:
//
//   - MatrixToGraph converts a prefix-distance table (editdist.Matrix)
//     into a weighted directed grid graph: rightward edges delete,
//     downward edges insert, zero-weight diagonals mark free matches.
//   - ShortestPath runs Dijkstra over the grid and returns the single
//     minimum-cost coordinate path, with ties broken by insertion
//     order so repeated runs always agree.
//   - PathToOps classifies each step of the path into keep / insert /
//     delete operations and folds adjacent delete+insert pairs into
//     substitutions.
//   - Apply replays an edit script against a sequence of phoneme
//     symbols, producing the transformed sequence.
//
// Why:
//
//   - Phonotactic repair: the script between a word's CV skeleton and
//     the nearest attested skeleton reshapes the word itself.
//   - Any two-sequence alignment where the caller needs the actual
//     operations, not just the distance.
//
// Complexity:
//
//   - MatrixToGraph: O(R·C) time and memory (≤3 edges per node).
//   - ShortestPath:  O(R·C·log(R·C)) time, O(R·C) memory.
//   - PathToOps:     O(len(path)) time.
//   - Apply:         O(len(ops)) time.
//
// Errors:
//
//   - ErrEmptyMatrix:   the input matrix has no rows or no columns.
//   - ErrNilGraph:      a nil *Graph was passed to ShortestPath.
//   - ErrCoordOutside:  start or end lies outside the grid.
//   - ErrNoPath:        the end coordinate is unreachable (cannot
//     happen for graphs built by MatrixToGraph, whose grids are fully
//     connected by insertion/deletion edges).
//   - ErrScriptOverrun: an edit script consumes more symbols than the
//     input sequence provides.
package align
