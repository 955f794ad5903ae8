// Package sctable holds the data artifacts the prediction engine
// consumes: frequency-ranked sound/pattern correspondence tables and
// prosodic inventories.
//
// What:
//
//   - Table is the typed form of the six-section correspondence
//     artifact: sound candidates, sound pair frequencies, sound pair
//     provenance, and the parallel triple for phonotactic patterns.
//   - Parse/Load decode the JSON wire form (a list of exactly six
//     maps, in fixed order) and validate the ranking invariant:
//     candidate order must agree with descending pair frequencies.
//   - ParseInventory/LoadInventory decode a prosodic inventory, a flat
//     list of CV-skeleton strings.
//   - WriteSoundsTSV/WritePatternsTSV flatten a table into a
//     row-oriented text table (sc, src, tgt, freq, CogID) for
//     inspection and auditing; the engine never reads it back.
//
// Why:
//
//   - The mining pipeline that produces these artifacts lives outside
//     this module; typed structs with load-time validation replace ad
//     hoc probing of nested dictionaries.
//
// Errors:
//
//   - ErrSectionCount:   the artifact does not hold exactly six sections.
//   - ErrCandidateOrder: a candidate list disagrees with its pair
//     frequencies (ranking invariant broken).
package sctable
