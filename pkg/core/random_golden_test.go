//go:build amd64 && !amd64.v3

// Golden values are pinned to the pure Go math routines without FMA fusion.
// Architectures that fuse multiply-add inside package math produce different
// last bits, which RandomStream then amplifies.

package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandomStream_Golden(t *testing.T) {
	expected := []float64{
		0.5118369487972814,
		0.4801092602756398,
		0.049265836816630326,
		0.8008225793419115,
		0.16835514144258923,
		0.21573628717669635,
		0.8963648815115448,
		0.8721846436565102,
	}

	got := drawSequence(NewRandomStream(NewVec2(0.125, 0.375), 1.25), len(expected))

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("RandomStream sequence changed (-expected +got):\n%s", diff)
		for i := range got {
			t.Logf("draw %d: %#016x", i, math.Float64bits(got[i]))
		}
	}
}
