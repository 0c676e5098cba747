package lander

import (
	"math"
	"math/rand"

	"github.com/Haniyya/moonar-lander/internal/core"
)

// TerrainChar is the rune used for the terrain heightline.
const TerrainChar = '▒'

// overflowFallback replaces the running total when a terrain step would
// overflow, instead of signaling an error.
const overflowFallback = 10

// Terrain is an immutable heightline generated once per flight: a bounded
// random walk of non-negative samples, used for rendering and touchdown
// checks. Regenerate by calling GenerateTerrain again.
type Terrain struct {
	heights []int
}

// GenerateTerrain produces length+1 height samples. The walk starts at 0;
// each step adds a uniformly random signed integer reduced modulo maxDelta,
// then raises the running total to at least floor. The running total is
// kept within int32 range, substituting a fixed fallback on overflow.
func GenerateTerrain(rng *rand.Rand, length, maxDelta, floor int) Terrain {
	if length < 0 {
		length = 0
	}
	if maxDelta <= 0 {
		maxDelta = 1
	}

	heights := make([]int, 0, length+1)
	last := 0
	for i := 0; i <= length; i++ {
		delta := int(int32(rng.Uint32())) % maxDelta
		next := int64(last) + int64(delta)
		if next > math.MaxInt32 || next < math.MinInt32 {
			next = overflowFallback
		}
		if next < int64(floor) {
			next = int64(floor)
		}
		last = int(next)
		heights = append(heights, last)
	}
	return Terrain{heights: heights}
}

// Heights returns the height samples. The slice must not be mutated.
func (t Terrain) Heights() []int {
	return t.heights
}

// Len returns the number of samples.
func (t Terrain) Len() int {
	return len(t.heights)
}

// SurfaceY returns the y screen coordinate of the terrain surface at
// world x, interpolating linearly between samples spaced evenly across
// the viewport width. Coordinates outside the viewport clamp to the
// nearest sample.
func (t Terrain) SurfaceY(x float64, screenW, screenH int) float64 {
	baseY := float64(screenH - 1)
	if len(t.heights) == 0 {
		return baseY
	}
	if len(t.heights) == 1 {
		return baseY - float64(t.heights[0])
	}

	spacing := float64(screenW) / float64(len(t.heights)-1)
	f := x / spacing
	if f < 0 {
		return baseY - float64(t.heights[0])
	}
	i := int(f)
	if i >= len(t.heights)-1 {
		return baseY - float64(t.heights[len(t.heights)-1])
	}
	frac := f - float64(i)
	h := float64(t.heights[i])*(1-frac) + float64(t.heights[i+1])*frac
	return baseY - h
}

// Render draws the heightline as a polyline along the bottom of the
// viewport: sample i at x = i*width/length, y = baseline minus height.
func (t Terrain) Render(dst *core.Screen) {
	if len(t.heights) < 2 {
		return
	}

	baseY := float64(dst.Height() - 1)
	spacing := float64(dst.Width()) / float64(len(t.heights)-1)
	points := make([]core.Vec2, len(t.heights))
	for i, h := range t.heights {
		points[i] = core.NewVec2(float64(i)*spacing, baseY-float64(h))
	}
	dst.DrawPolyline(points, 0, 0, TerrainChar, core.ColorGray)
}
