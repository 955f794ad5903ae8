// Package adrc is a sound-change applier: it predicts how word-forms
// transform under regular sound change.
//
// 🚀 What is adrc?
//
//	Given a phoneme sequence and a table of previously observed sound
//	and phonotactic correspondences, adrc produces ranked hypothetical
//	transformed forms — loanword adaptations or reconstructed ancestor
//	forms. The root package is the engine — Adapt, Reconstruct,
//	phonotactic repair, top-N ranking and regex compilation — built on
//	three subpackages:
//		• editdist — weighted two-operation edit distance & DP matrices
//		• align    — alignment grid graph, deterministic Dijkstra,
//		             edit-script building, folding and application
//		• sctable  — frequency-ranked correspondence tables & prosodic
//		             inventories (JSON artifacts, TSV export)
//
// ✨ Why choose adrc?
//
//   - Deterministic – every alignment and ranking is reproducible
//     across runs, pinned by explicit tie-break rules
//   - Side-effect free – pure functions over explicit inputs; engine
//     instances share no mutable state and parallelize freely
//   - Pure Go algorithms – the grid topology, shortest paths and
//     ranking are implemented directly, no generic graph machinery
//
// Quick ASCII example — aligning the skeleton CVCV against CVC:
//
//	      #  C  V  C  V
//	   #  0  1  2  3  4
//	   C  1  0  1  2  3
//	   V  2  1  0  1  2
//	   C  3  2  1  0  1
//
//	the cheapest path keeps C, V, C and deletes the final V, so
//	"d a d a" repaired against CVC becomes "d a d".
//
// Dive into the per-package docs for contracts, complexity and the
// error taxonomy.
package adrc
