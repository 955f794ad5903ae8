package align

// PathToOps converts a coordinate path through the alignment grid into
// an edit script transforming from into to.
//
// Columns index from, rows index to, so each step classifies as:
//
//   - (+1,+1) diagonal   → keep the current from symbol;
//   - ( 0,+1) rightward  → delete the current from symbol;
//   - (+1, 0) downward   → insert the current to symbol.
//
// The raw script is then folded: any adjacent delete+insert (or
// insert+delete) pair collapses into a single substitution, see
// FoldSubstitutions.
//
//	PathToOps([(0,0) (0,1) (1,1) (2,2)], "ló", "hó")
//	  → [substitute l by h, keep ó]
func PathToOps(path []Coord, from, to string) Script {
	// 1) Prefix both sequences with a sentinel so matrix coordinates
	//    index symbols directly.
	src := append([]rune{'#'}, []rune(from)...)
	dst := append([]rune{'#'}, []rune(to)...)

	// 2) Classify every step by its direction.
	ops := make(Script, 0, len(path))
	for i := 1; i < len(path); i++ {
		dRow := path[i].Row - path[i-1].Row
		dCol := path[i].Col - path[i-1].Col
		switch {
		case dRow == 1 && dCol == 1:
			ops = append(ops, Keep(string(src[path[i].Col])))
		case dRow == 0 && dCol == 1:
			ops = append(ops, Delete(string(src[path[i].Col])))
		case dRow == 1 && dCol == 0:
			ops = append(ops, Insert(string(dst[path[i].Row])))
		}
	}

	// 3) Merge adjacent delete/insert pairs into substitutions.
	return FoldSubstitutions(ops)
}

// FoldSubstitutions scans the script left to right and merges every
// adjacent delete+insert or insert+delete pair into one substitution:
//
//	delete X, insert Y → substitute X by Y
//	insert X, delete Y → substitute Y by X
//
// Folding is greedy and idempotent: substitutions never participate in
// further merges, so running the fold on already-folded output is a
// no-op. The input slice is not modified.
func FoldSubstitutions(ops Script) Script {
	out := make(Script, len(ops))
	copy(out, ops)

	i := 0
	for i < len(out)-1 {
		switch {
		case out[i].Kind == OpDelete && out[i+1].Kind == OpInsert:
			merged := Substitute(out[i].Sym, out[i+1].Sym)
			out = append(out[:i], append(Script{merged}, out[i+2:]...)...)
		case out[i].Kind == OpInsert && out[i+1].Kind == OpDelete:
			merged := Substitute(out[i+1].Sym, out[i].Sym)
			out = append(out[:i], append(Script{merged}, out[i+2:]...)...)
		default:
			i++
		}
	}

	return out
}
