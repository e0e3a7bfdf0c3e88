package sorting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhases_KnownValue(t *testing.T) {
	// r = ceil(1000 / (10*10)) = 10, log10(10) = 1
	assert.Equal(t, 10.0, Runs(1000, 10, 10))
	assert.Equal(t, 1, Phases(1000, 10, 10))
}

func TestDiskOps_KnownValue(t *testing.T) {
	// 2*1000/10 * (1 + 1) = 400
	assert.InDelta(t, 400.0, DiskOps(1000, 10, 10), 1e-9)
}

func TestRuns_FlooredAtOne(t *testing.T) {
	// GIVEN fewer records than one initial run holds
	// THEN r is clamped to 1, no merge phase is needed, and each block is read and written once
	assert.Equal(t, 1.0, Runs(5, 10, 10))
	assert.Equal(t, 1.0, Runs(0, 10, 10))
	assert.Equal(t, 0, Phases(5, 10, 10))
	assert.Equal(t, 0, Phases(0, 4, 10))
	assert.InDelta(t, 1.0, DiskOps(5, 10, 10), 1e-12)
}

func TestPhases_RoundsUpPartialPhase(t *testing.T) {
	// r = ceil(1100/100) = 11 -> log10(11) ~ 1.04 -> 2 phases
	assert.Equal(t, 2, Phases(1100, 10, 10))
	// DiskOps keeps the fraction
	want := 2 * 1100.0 / 10 * (1 + math.Log(11)/math.Log(10))
	assert.InDelta(t, want, DiskOps(1100, 10, 10), 1e-9)
}

func TestPhases_NonNegativeAndMonotonicInRecords(t *testing.T) {
	for _, fanIn := range []int{2, 3, 4, 8, 10, 16} {
		for _, block := range []int{1, 4, 10, 64} {
			prev := 0
			for n := 0.0; n <= 200000; n += 137 {
				got := Phases(n, fanIn, block)
				if got < 0 {
					t.Fatalf("Phases(%v, %d, %d) = %d, want >= 0", n, fanIn, block, got)
				}
				if got < prev {
					t.Fatalf("Phases decreased at N=%v (n=%d b=%d): %d < %d", n, fanIn, block, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestDiskOps_AtLeastOnePassOverData(t *testing.T) {
	for _, fanIn := range []int{2, 5, 10} {
		for _, block := range []int{1, 10, 100} {
			for _, n := range []float64{1, 10, 99, 1000, 123456} {
				lower := 2 * n / float64(block)
				if got := DiskOps(n, fanIn, block); got < lower {
					t.Errorf("DiskOps(%v, %d, %d) = %v, want >= %v", n, fanIn, block, got, lower)
				}
			}
		}
	}
}

func TestCurves_MapScalarFunctions(t *testing.T) {
	records := []float64{100, 1000, 100000}
	phases := PhasesCurve(records, 10, 10)
	ops := DiskOpsCurve(records, 10, 10)

	for i, n := range records {
		assert.Equal(t, float64(Phases(n, 10, 10)), phases[i])
		assert.Equal(t, DiskOps(n, 10, 10), ops[i])
	}
	assert.Empty(t, PhasesCurve(nil, 10, 10))
}

func TestValidParams(t *testing.T) {
	assert.True(t, ValidParams(2, 1))
	assert.False(t, ValidParams(1, 10))
	assert.False(t, ValidParams(0, 10))
	assert.False(t, ValidParams(4, 0))
}
