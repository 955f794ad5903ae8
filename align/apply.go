package align

import "fmt"

// Apply replays an edit script against a sequence of symbols and
// returns the transformed sequence.
//
// Consumption rules per operation:
//
//   - keep:       consumes one input symbol and emits it unchanged;
//   - delete:     consumes one input symbol and drops it;
//   - substitute: consumes one input symbol and emits the replacement;
//   - insert:     consumes nothing and emits the operation's symbol.
//
// Scripts built from pattern alignments are routinely applied to the
// phoneme sequence carrying that pattern, so keep emits the actual
// input symbol, while insert emits the placeholder recorded in the
// script.
//
// Returns ErrScriptOverrun when the script consumes more symbols than
// seq provides; the input is never silently truncated.
func Apply(seq []string, ops Script) ([]string, error) {
	out := make([]string, 0, len(ops))
	idx := 0 // next input symbol to consume

	for _, op := range ops {
		switch op.Kind {
		case OpKeep:
			if idx >= len(seq) {
				return nil, fmt.Errorf("%w: %q at input position %d", ErrScriptOverrun, op, idx)
			}
			out = append(out, seq[idx])
			idx++
		case OpDelete:
			if idx >= len(seq) {
				return nil, fmt.Errorf("%w: %q at input position %d", ErrScriptOverrun, op, idx)
			}
			idx++
		case OpSubstitute:
			if idx >= len(seq) {
				return nil, fmt.Errorf("%w: %q at input position %d", ErrScriptOverrun, op, idx)
			}
			out = append(out, op.With)
			idx++
		case OpInsert:
			out = append(out, op.Sym)
		}
	}

	return out, nil
}
