package adrc

import "strings"

// ListToRegex renders one position's ordered candidate list as an
// alternation group: ["b","k","v"] becomes "(b|k|v)".
//
// Candidates are deduplicated in the order received and stripped of
// the "." cluster separator. The deletion marker "-" never appears as
// a literal alternative: its presence removes it from the group and
// suffixes the whole group with "?", marking the position optional.
// Single-candidate lists still render as a parenthesized group so
// downstream concatenation stays uniform.
//
//	ListToRegex([]string{"b", "k", "-", "v"}) == "(b|k|v)?"
func ListToRegex(candidates []string) string {
	optional := false
	seen := make(map[string]bool, len(candidates))
	alts := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if cand == "-" {
			optional = true

			continue
		}
		cand = strings.ReplaceAll(cand, ".", "")
		if seen[cand] {
			continue
		}
		seen[cand] = true
		alts = append(alts, cand)
	}

	group := "(" + strings.Join(alts, "|") + ")"
	if optional {
		group += "?"
	}

	return group
}
