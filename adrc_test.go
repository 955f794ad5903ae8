package adrc_test

import (
	"math"
	"testing"

	"github.com/lingraph/adrc"
	"github.com/lingraph/adrc/sctable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sc2 builds the documented example table: two sounds with two ranked
// candidates each, and one pattern correspondence.
func sc2() *sctable.Table {
	return &sctable.Table{
		Sounds: map[string][]string{
			"d": {"d", "t"},
			"a": {"a", "o"},
		},
		SoundFreq: map[string]int{
			"d d": 5, "d t": 4, "a a": 7, "a o": 1,
		},
		SoundCogIDs: map[string][]int{},
		Patterns: map[string][]string{
			"CVCV": {"CVC"},
		},
		PatternFreq:   map[string]int{},
		PatternCogIDs: map[string][]int{},
	}
}

func inv() []string { return []string{"CV", "CVV"} }

// TestAdapt_SingleBest verifies that a budget of one returns exactly
// the top-ranked form.
func TestAdapt_SingleBest(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Adapt("d a d a", 1, "")
	require.NoError(t, err)
	assert.Equal(t, adrc.KindExact, res.Kind)
	assert.Equal(t, []string{"dada"}, res.Forms)
}

// TestAdapt_TopFive pins the five globally cheapest combinations under
// the additive rank model.
func TestAdapt_TopFive(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Adapt("d a d a", 5, "")
	require.NoError(t, err)
	assert.Equal(t, adrc.KindRanked, res.Kind)
	assert.Equal(t, []string{"dada", "data", "doda", "dota", "tada"}, res.Forms)
}

// TestAdapt_WithRepair covers phonotactic repair driven by the table's
// own pattern correspondence (CVCV → CVC).
func TestAdapt_WithRepair(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Adapt("d a d a", 5, "CVCV")
	require.NoError(t, err)
	assert.Equal(t, []string{"dad", "dat", "dod", "dot", "tad"}, res.Forms)
}

// TestAdapt_RepairFallsBackToInventory covers repair against the
// nearest inventory pattern when the table has no data for the input
// prosody (CVC → closest is CV).
func TestAdapt_RepairFallsBackToInventory(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Adapt("d a d", 5, "CVC")
	require.NoError(t, err)
	assert.Equal(t, []string{"da", "do", "ta", "to"}, res.Forms)
}

// TestAdapt_UnknownSymbolDiagnostic verifies the graceful unknown-
// symbol outcome: a diagnostic result, not an error.
func TestAdapt_UnknownSymbolDiagnostic(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Adapt("l a l a", 1, "")
	require.NoError(t, err)
	assert.Equal(t, adrc.KindDiagnostic, res.Kind)
	assert.Equal(t, "l not old", res.Diagnostic)
	assert.Empty(t, res.Forms)
}

// TestAdapt_NoTable verifies the hard error when no table is set.
func TestAdapt_NoTable(t *testing.T) {
	a := adrc.New(nil, inv())
	_, err := a.Adapt("d a", 1, "")
	assert.ErrorIs(t, err, adrc.ErrNoTable)
}

// TestAdapt_StripsDeletionMarker checks that "-" candidates vanish
// from joined forms.
func TestAdapt_StripsDeletionMarker(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds:    map[string][]string{"k": {"k"}, "s": {"-"}},
		SoundFreq: map[string]int{},
	}, nil)
	res, err := a.Adapt("k s", 1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, res.Forms)
}

// TestReconstruct_ExactAndExhaustive pins both regex modes: the
// single-best pattern and the full alternation above the product size.
func TestReconstruct_ExactAndExhaustive(t *testing.T) {
	a := adrc.New(sc2(), inv())

	res, err := a.Reconstruct("d a d a", 1)
	require.NoError(t, err)
	assert.Equal(t, adrc.KindRegex, res.Kind)
	assert.Equal(t, "^(d)(a)(d)(a)$", res.Pattern)

	res, err = a.Reconstruct("d a d a", 1000)
	require.NoError(t, err)
	assert.Equal(t, "^(d|t)(a|o)(d|t)(a|o)$", res.Pattern)
}

// TestReconstruct_UnknownSymbolDiagnostic pins the documented "l not
// old" diagnostic, deduplicated in first-seen order.
func TestReconstruct_UnknownSymbolDiagnostic(t *testing.T) {
	a := adrc.New(sc2(), inv())
	res, err := a.Reconstruct("l a l a", 1)
	require.NoError(t, err)
	assert.Equal(t, adrc.KindDiagnostic, res.Kind)
	assert.Equal(t, "l not old", res.Diagnostic)
}

// TestReconstruct_SkipsPureDeletionPositions verifies that a position
// whose only candidate is the deletion marker vanishes from the
// compiled pattern.
func TestReconstruct_SkipsPureDeletionPositions(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds:    map[string][]string{"k": {"k"}, "s": {"-"}},
		SoundFreq: map[string]int{},
	}, nil)
	res, err := a.Reconstruct("k s", 1)
	require.NoError(t, err)
	assert.Equal(t, "^(k)$", res.Pattern)
}

// TestRepairPhonotactics_Golden reshapes the documented word: CVCV
// repaired against the table's CVC prediction drops the final vowel.
func TestRepairPhonotactics_Golden(t *testing.T) {
	a := adrc.New(sc2(), inv())
	got, err := a.RepairPhonotactics([]string{"d", "a", "d", "a"}, "CVCV")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "d"}, got)
}

// TestRepairPhonotactics_EmptyInventory verifies the hard error when
// repair needs a nearest-pattern lookup and no inventory exists.
func TestRepairPhonotactics_EmptyInventory(t *testing.T) {
	a := adrc.New(sc2(), nil)
	_, err := a.RepairPhonotactics([]string{"d", "a", "d"}, "CVC")
	assert.ErrorIs(t, err, adrc.ErrEmptyInventory)
}

// TestClosestPhonotactics_Golden pins the documented lookups against
// the ["CV", "CVV"] inventory.
func TestClosestPhonotactics_Golden(t *testing.T) {
	a := adrc.New(sc2(), inv())

	got, err := a.ClosestPhonotactics("CVC")
	require.NoError(t, err)
	assert.Equal(t, "CV", got)

	got, err = a.ClosestPhonotactics("CVCV")
	require.NoError(t, err)
	assert.Equal(t, "CVV", got)
}

// TestClosestPhonotactics_Idempotent verifies that a pattern already
// in the inventory returns itself.
func TestClosestPhonotactics_Idempotent(t *testing.T) {
	a := adrc.New(sc2(), inv())
	got, err := a.ClosestPhonotactics("CV")
	require.NoError(t, err)
	assert.Equal(t, "CV", got)
}

// TestClosestPhonotactics_TieBreaksFirst verifies that equal distances
// resolve to the pattern encountered first in inventory order.
func TestClosestPhonotactics_TieBreaksFirst(t *testing.T) {
	a := adrc.New(sc2(), []string{"CVV", "VCV"})
	// CVC is one substitution away from either entry.
	got, err := a.ClosestPhonotactics("CVC")
	require.NoError(t, err)
	assert.Equal(t, "CVV", got)
}

// TestCandidates_BudgetedSelection pins the documented read-out: with
// a budget of two, widening the vowel costs less than widening the
// consonant.
func TestCandidates_BudgetedSelection(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds: map[string][]string{
			"k": {"k", "h"},
			"i": {"e", "o"},
		},
		SoundFreq: map[string]int{
			"k k": 5, "k c": 3, "i e": 2, "i o": 1,
		},
	}, nil)

	pools, missing, err := a.Candidates([]string{"k", "i"}, 2)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, [][]string{{"k"}, {"e", "o"}}, pools)
}

// TestCandidates_FullProduct returns complete ranked lists when the
// budget covers the whole product.
func TestCandidates_FullProduct(t *testing.T) {
	a := adrc.New(sc2(), nil)
	pools, missing, err := a.Candidates([]string{"d", "a"}, 4)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, [][]string{{"d", "t"}, {"a", "o"}}, pools)
}

// TestCandidates_FreezesUnattestedPools verifies that a pool whose
// current pair has no observed frequency is deferred while attested
// pools still have room.
func TestCandidates_FreezesUnattestedPools(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds: map[string][]string{
			"p": {"b", "w"},
			"t": {"d", "s"},
		},
		SoundFreq: map[string]int{
			"t d": 3, "t s": 1,
		},
	}, nil)

	pools, missing, err := a.Candidates([]string{"p", "t"}, 2)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, [][]string{{"b"}, {"d", "s"}}, pools, "frozen pool must stay single")
}

// TestRankDiffs_Golden pins the gap vector of the documented
// four-position example.
func TestRankDiffs_Golden(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds: map[string][]string{},
		SoundFreq: map[string]int{
			"k k": 2, "k c": 1, "i e": 2, "i o": 1,
		},
	}, nil)

	diffs := a.RankDiffs([][]string{
		{"k", "c", "$"}, {"e", "o", "$"}, {"k", "c", "$"}, {"e", "o", "$"},
	}, []string{"k", "i", "k", "i"})
	assert.Equal(t, []int{1, 1, 1, 1}, diffs)
}

// TestRankDiffs_ExhaustedAndFrozen verifies the two stop values: a
// pool down to its last candidate never widens again, and an
// unattested pair defers behind every attested one.
func TestRankDiffs_ExhaustedAndFrozen(t *testing.T) {
	a := adrc.New(&sctable.Table{
		Sounds:    map[string][]string{},
		SoundFreq: map[string]int{"k k": 2, "k c": 1},
	}, nil)

	diffs := a.RankDiffs([][]string{
		{"c", "$"},      // exhausted: one real candidate left
		{"x", "y", "$"}, // unattested: freq of "i x" is zero
		{"k", "c", "$"}, // attested gap
	}, []string{"k", "i", "k"})

	require.Len(t, diffs, 3)
	assert.Equal(t, math.MaxInt, diffs[0])
	assert.Equal(t, 9_999_999, diffs[1])
	assert.Equal(t, 1, diffs[2])
}

// TestMoveCandidate_Golden pins both documented moves.
func TestMoveCandidate_Golden(t *testing.T) {
	pools, out := adrc.MoveCandidate([][]string{{"x", "x"}}, 0, [][]string{{}})
	assert.Equal(t, [][]string{{"x"}}, pools)
	assert.Equal(t, [][]string{{"x"}}, out)

	pools, out = adrc.MoveCandidate(
		[][]string{{"x", "x"}, {"y", "y"}, {"z"}},
		1,
		[][]string{{"a"}, {"b"}, {"c"}},
	)
	assert.Equal(t, [][]string{{"x", "x"}, {"y"}, {"z"}}, pools)
	assert.Equal(t, [][]string{{"a"}, {"b", "y"}, {"c"}}, out)
}

// TestListToRegex covers the deletion marker, deduplication, the dot
// strip, and the uniform single-candidate group.
func TestListToRegex(t *testing.T) {
	assert.Equal(t, "(b|k|v)?", adrc.ListToRegex([]string{"b", "k", "-", "v"}))
	assert.Equal(t, "(b)", adrc.ListToRegex([]string{"b", "b"}))
	assert.Equal(t, "(x)", adrc.ListToRegex([]string{"x"}))
	assert.Equal(t, "(ts)", adrc.ListToRegex([]string{"t.s"}))
}

// TestSetters_ReturnPrevious verifies the replace-anytime contract.
func TestSetters_ReturnPrevious(t *testing.T) {
	first := sc2()
	a := adrc.New(first, inv())

	second := &sctable.Table{Sounds: map[string][]string{"x": {"x"}}}
	assert.Same(t, first, a.SetTable(second))
	assert.Same(t, second, a.Table())

	assert.Equal(t, inv(), a.SetInventory([]string{"CVC"}))
	assert.Equal(t, []string{"CVC"}, a.Inventory())
}

// TestOpen_Artifacts constructs an engine straight from the JSON
// artifacts and runs a prediction through it.
func TestOpen_Artifacts(t *testing.T) {
	a, err := adrc.Open("sctable/testdata/sc2.json", "sctable/testdata/inventory.json")
	require.NoError(t, err)

	res, err := a.Adapt("d a d a", 5, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dada", "data", "doda", "dota", "tada"}, res.Forms)
}
