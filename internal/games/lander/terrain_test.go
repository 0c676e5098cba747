package lander

import (
	"math/rand"
	"testing"
)

func TestGenerateTerrainSampleCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, length := range []int{0, 1, 10, 40} {
		terrain := GenerateTerrain(rng, length, 3, 0)
		if terrain.Len() != length+1 {
			t.Errorf("GenerateTerrain(length=%d) produced %d samples, expected %d",
				length, terrain.Len(), length+1)
		}
	}
}

func TestGenerateTerrainRespectsFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, floor := range []int{0, 5, 120} {
		terrain := GenerateTerrain(rng, 40, 3, floor)
		for i, h := range terrain.Heights() {
			if h < floor {
				t.Errorf("floor=%d: sample %d is %d, below floor", floor, i, h)
			}
		}
	}
}

func TestGenerateTerrainNonNegative(t *testing.T) {
	// Different seeds, same invariant: with floor 0 every sample is >= 0.
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		terrain := GenerateTerrain(rng, 40, 3, 0)
		for i, h := range terrain.Heights() {
			if h < 0 {
				t.Errorf("seed=%d: sample %d is negative: %d", seed, i, h)
			}
		}
	}
}

func TestGenerateTerrainDeterministicPerSeed(t *testing.T) {
	a := GenerateTerrain(rand.New(rand.NewSource(7)), 20, 3, 0)
	b := GenerateTerrain(rand.New(rand.NewSource(7)), 20, 3, 0)

	if a.Len() != b.Len() {
		t.Fatalf("Same seed produced different lengths: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Heights() {
		if a.Heights()[i] != b.Heights()[i] {
			t.Errorf("Same seed diverged at sample %d: %d vs %d",
				i, a.Heights()[i], b.Heights()[i])
		}
	}
}

func TestGenerateTerrainDegenerateParams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Negative length and non-positive delta are normalized, not fatal.
	terrain := GenerateTerrain(rng, -5, 0, 0)
	if terrain.Len() != 1 {
		t.Errorf("Negative length should clamp to 0 segments (1 sample), got %d", terrain.Len())
	}
}

func TestTerrainSurfaceY(t *testing.T) {
	// Flat heightline at height 5 on a 24-row screen: surface row is
	// baseline 23 minus 5.
	terrain := Terrain{heights: []int{5, 5, 5}}

	for _, x := range []float64{0, 20, 40, 79} {
		y := terrain.SurfaceY(x, 80, 24)
		if y != 18 {
			t.Errorf("SurfaceY(%f) = %f, expected 18", x, y)
		}
	}
}

func TestTerrainSurfaceYInterpolates(t *testing.T) {
	// Two samples: height 0 at x=0, height 10 at x=80.
	terrain := Terrain{heights: []int{0, 10}}

	y := terrain.SurfaceY(40, 80, 24)
	// Halfway: height 5, so y = 23 - 5.
	if y != 18 {
		t.Errorf("SurfaceY(40) = %f, expected 18", y)
	}

	left := terrain.SurfaceY(0, 80, 24)
	if left != 23 {
		t.Errorf("SurfaceY(0) = %f, expected 23", left)
	}
}

func TestTerrainSurfaceYClampsOutside(t *testing.T) {
	terrain := Terrain{heights: []int{2, 8}}

	before := terrain.SurfaceY(-10, 80, 24)
	if before != 21 {
		t.Errorf("SurfaceY left of viewport = %f, expected first sample (21)", before)
	}

	after := terrain.SurfaceY(500, 80, 24)
	if after != 15 {
		t.Errorf("SurfaceY right of viewport = %f, expected last sample (15)", after)
	}
}

func TestTerrainEmptySurfaceY(t *testing.T) {
	var terrain Terrain
	if y := terrain.SurfaceY(10, 80, 24); y != 23 {
		t.Errorf("Empty terrain SurfaceY = %f, expected baseline 23", y)
	}
}
