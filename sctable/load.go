package sctable

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// Parse decodes the JSON wire form of a correspondence table: a list
// of exactly six maps in fixed order — sound candidates, sound pair
// frequencies, sound pair provenance, pattern candidates, pattern pair
// frequencies, pattern pair provenance. The decoded table is validated
// before it is returned.
func Parse(data []byte) (*Table, error) {
	// 1) Split the artifact into its six raw sections.
	var sections []json.RawMessage
	if err := sonic.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("sctable: decoding artifact: %w", err)
	}
	if len(sections) != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrSectionCount, len(sections))
	}

	// 2) Decode each section into its typed map.
	t := &Table{}
	for i, dst := range []interface{}{
		&t.Sounds, &t.SoundFreq, &t.SoundCogIDs,
		&t.Patterns, &t.PatternFreq, &t.PatternCogIDs,
	} {
		if err := sonic.Unmarshal(sections[i], dst); err != nil {
			return nil, fmt.Errorf("sctable: decoding section %d: %w", i, err)
		}
	}

	// 3) Enforce the ranking invariant up front.
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Load reads and parses a correspondence table artifact from disk.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sctable: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Dump serializes the table back into its six-section JSON wire form,
// the exact shape Parse accepts.
func (t *Table) Dump() ([]byte, error) {
	sections := []interface{}{
		orEmptyCands(t.Sounds), orEmptyFreq(t.SoundFreq), orEmptyIDs(t.SoundCogIDs),
		orEmptyCands(t.Patterns), orEmptyFreq(t.PatternFreq), orEmptyIDs(t.PatternCogIDs),
	}
	data, err := sonic.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("sctable: encoding artifact: %w", err)
	}

	return data, nil
}

// ParseInventory decodes a prosodic inventory: a flat JSON list of
// CV-skeleton strings.
func ParseInventory(data []byte) ([]string, error) {
	var inv []string
	if err := sonic.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("sctable: decoding inventory: %w", err)
	}

	return inv, nil
}

// LoadInventory reads and parses a prosodic inventory from disk.
func LoadInventory(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sctable: reading %s: %w", path, err)
	}

	return ParseInventory(data)
}

// nil maps serialize as {} rather than null so the wire form stays
// symmetric with what Parse accepts from the mining pipeline.

func orEmptyCands(m map[string][]string) map[string][]string {
	if m == nil {
		return map[string][]string{}
	}

	return m
}

func orEmptyFreq(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}

	return m
}

func orEmptyIDs(m map[string][]int) map[string][]int {
	if m == nil {
		return map[string][]int{}
	}

	return m
}
