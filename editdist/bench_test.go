package editdist_test

import (
	"strings"
	"testing"

	"github.com/lingraph/adrc/editdist"
)

// BenchmarkDistance measures the LCS-based distance on medium-length
// words such as cluster-heavy place names.
func BenchmarkDistance(b *testing.B) {
	a := strings.Repeat("CVC", 16)
	c := strings.Repeat("CVV", 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = editdist.Distance(a, c, 100, 49)
	}
}

// BenchmarkMatrix measures full DP-table construction.
func BenchmarkMatrix(b *testing.B) {
	a := strings.Repeat("CVC", 16)
	c := strings.Repeat("CVV", 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = editdist.Matrix(a, c)
	}
}
