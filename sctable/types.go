package sctable

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for artifact decoding and validation.
var (
	// ErrSectionCount indicates the artifact does not hold exactly six sections.
	ErrSectionCount = errors.New("sctable: correspondence artifact must hold exactly six sections")
	// ErrCandidateOrder indicates a candidate list that is not ranked by
	// descending pair frequency.
	ErrCandidateOrder = errors.New("sctable: candidate order disagrees with pair frequencies")
)

// Table is a frequency-ranked correspondence table: three aligned
// sections for sounds and the parallel triple for phonotactic
// patterns.
//
// Candidate lists are ordered by descending observed frequency; the
// frequency and provenance sections are keyed by the space-joined
// "src tgt" pair. The engine treats a Table as read-only.
type Table struct {
	// Sounds maps a source sound (or cluster) to its ranked target candidates.
	Sounds map[string][]string
	// SoundFreq counts how often each "src tgt" sound pair was observed.
	SoundFreq map[string]int
	// SoundCogIDs lists the cognate sets each "src tgt" sound pair was mined from.
	SoundCogIDs map[string][]int
	// Patterns maps a source CV skeleton to its ranked target skeletons.
	Patterns map[string][]string
	// PatternFreq counts how often each "src tgt" pattern pair was observed.
	PatternFreq map[string]int
	// PatternCogIDs lists the cognate sets each pattern pair was mined from.
	PatternCogIDs map[string][]int
}

// PairKey joins a source and a target symbol into the "src tgt" key
// used by the frequency and provenance sections.
func PairKey(src, tgt string) string { return src + " " + tgt }

// Validate checks the ranking invariant: for every source key, the
// candidate order must be consistent with descending pair frequencies.
// Candidates without a frequency entry count as zero, so unattested
// tails are legal as long as they trail the attested heads.
func (t *Table) Validate() error {
	if err := validateRanking(t.Sounds, t.SoundFreq, "sound"); err != nil {
		return err
	}

	return validateRanking(t.Patterns, t.PatternFreq, "pattern")
}

// validateRanking verifies one candidate/frequency section pair.
// Source keys are visited in sorted order so failures are stable.
func validateRanking(cands map[string][]string, freq map[string]int, section string) error {
	keys := make([]string, 0, len(cands))
	for k := range cands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, src := range keys {
		prev := -1
		for i, tgt := range cands[src] {
			f := freq[PairKey(src, tgt)]
			if i > 0 && f > prev {
				return fmt.Errorf("%w: %s %q candidate %q (freq %d) outranks its predecessor (freq %d)",
					ErrCandidateOrder, section, src, tgt, f, prev)
			}
			prev = f
		}
	}

	return nil
}
