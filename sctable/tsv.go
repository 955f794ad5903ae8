package sctable

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// tsvHeader names the audit columns: the space-joined pair, its two
// halves, the observation count, and the cognate sets it came from.
const tsvHeader = "sc\tsrc\ttgt\tfreq\tCogID\n"

// WriteSoundsTSV flattens the sound sections into a row-oriented text
// table with columns sc, src, tgt, freq, CogID — one row per observed
// sound pair, sorted by pair key for stable output. The export is for
// inspection and auditing only; the engine never reads it back.
func (t *Table) WriteSoundsTSV(w io.Writer) error {
	return writeTSV(w, t.SoundFreq, t.SoundCogIDs)
}

// WritePatternsTSV flattens the pattern sections the same way
// WriteSoundsTSV flattens the sound sections.
func (t *Table) WritePatternsTSV(w io.Writer) error {
	return writeTSV(w, t.PatternFreq, t.PatternCogIDs)
}

// writeTSV renders one frequency/provenance section pair.
func writeTSV(w io.Writer, freq map[string]int, cogIDs map[string][]int) error {
	if _, err := io.WriteString(w, tsvHeader); err != nil {
		return fmt.Errorf("sctable: writing tsv header: %w", err)
	}

	pairs := make([]string, 0, len(freq))
	for pair := range freq {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	for _, pair := range pairs {
		src, tgt, _ := strings.Cut(pair, " ")
		ids := make([]string, len(cogIDs[pair]))
		for i, id := range cogIDs[pair] {
			ids[i] = strconv.Itoa(id)
		}
		row := fmt.Sprintf("%s\t%s\t%s\t%d\t%s\n", pair, src, tgt, freq[pair], strings.Join(ids, ", "))
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("sctable: writing tsv row %q: %w", pair, err)
		}
	}

	return nil
}
