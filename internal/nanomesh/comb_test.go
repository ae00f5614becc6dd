package nanomesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmach/orb"
)

func exampleComb() CombCfg {
	return CombCfg{
		FingerWidth:  1.0,
		Gap:          1.0,
		FingerLength: 10.0,
		FingerCount:  10,
		BusWidth:     5.0,
		MarginTop:    0.0,
		MarginBottom: 10.0,
	}
}

// segments expands an implicitly closed outline into its edges.
func segments(ring orb.Ring) [][2]orb.Point {
	segs := make([][2]orb.Point, 0, len(ring))
	for i := range ring {
		segs = append(segs, [2]orb.Point{ring[i], ring[(i+1)%len(ring)]})
	}
	return segs
}

func pointSegDist(p, a, b orb.Point) float64 {
	abx, aby := b[0]-a[0], b[1]-a[1]
	apx, apy := p[0]-a[0], p[1]-a[1]
	den := abx*abx + aby*aby
	t := 0.0
	if den > 0 {
		t = (apx*abx + apy*aby) / den
		t = math.Max(0, math.Min(1, t))
	}
	dx, dy := p[0]-(a[0]+t*abx), p[1]-(a[1]+t*aby)
	return math.Hypot(dx, dy)
}

func segDist(s, q [2]orb.Point) float64 {
	if segsCross(s, q) {
		return 0
	}
	return math.Min(
		math.Min(pointSegDist(s[0], q[0], q[1]), pointSegDist(s[1], q[0], q[1])),
		math.Min(pointSegDist(q[0], s[0], s[1]), pointSegDist(q[1], s[0], s[1])),
	)
}

func cross2(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func segsCross(s, q [2]orb.Point) bool {
	d1 := cross2(q[0], q[1], s[0])
	d2 := cross2(q[0], q[1], s[1])
	d3 := cross2(s[0], s[1], q[0])
	d4 := cross2(s[0], s[1], q[1])
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func TestBuildComb_ExampleDimensions(t *testing.T) {
	c := BuildComb(exampleComb())
	assert.Equal(t, 21.0, c.Width)  // 5+10+1+5
	assert.Equal(t, 29.0, c.Height) // 10 + (10*2-1) + 0
	assert.Equal(t, "E1", c.E1.Layer)
	assert.Equal(t, "E2", c.E2.Layer)
}

func TestBuildComb_Rectilinear(t *testing.T) {
	c := BuildComb(exampleComb())
	for _, e := range []Electrode{c.E1, c.E2} {
		for _, s := range segments(e.Outline) {
			axisAligned := s[0][0] == s[1][0] || s[0][1] == s[1][1]
			require.True(t, axisAligned, "%s: segment %v not axis-aligned", e.Layer, s)
		}
	}
}

func TestBuildComb_WithinExtents(t *testing.T) {
	c := BuildComb(exampleComb())
	for _, e := range []Electrode{c.E1, c.E2} {
		for _, p := range e.Outline {
			assert.True(t, p[0] >= 0 && p[0] <= c.Width, "%s: x=%g", e.Layer, p[0])
			assert.True(t, p[1] >= 0 && p[1] <= c.Height, "%s: y=%g", e.Layer, p[1])
		}
	}
}

func TestBuildComb_FingerSplitByParity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 9, 10, 11} {
		p := exampleComb()
		p.FingerCount = n
		c := BuildComb(p)

		// Each E1 finger contributes exactly two vertices on its tip line
		// x = B+L; same for E2 at x = B+g.
		tip1 := p.BusWidth + p.FingerLength
		tip2 := p.BusWidth + p.Gap
		count := func(ring orb.Ring, x float64) int {
			total := 0
			for _, pt := range ring {
				if pt[0] == x {
					total++
				}
			}
			return total
		}
		assert.Equal(t, (n+1)/2, count(c.E1.Outline, tip1)/2, "N=%d E1", n)
		assert.Equal(t, n/2, count(c.E2.Outline, tip2)/2, "N=%d E2", n)
	}
}

func TestBuildComb_LoopsAreSimple(t *testing.T) {
	c := BuildComb(exampleComb())
	for _, e := range []Electrode{c.E1, c.E2} {
		segs := segments(e.Outline)
		for i := 0; i < len(segs); i++ {
			for j := i + 1; j < len(segs); j++ {
				require.False(t, segsCross(segs[i], segs[j]),
					"%s: segments %d and %d cross", e.Layer, i, j)
			}
		}
	}
}

func TestBuildComb_MinimumSeparation(t *testing.T) {
	p := exampleComb()
	c := BuildComb(p)
	minDist := math.Inf(1)
	for _, s := range segments(c.E1.Outline) {
		for _, q := range segments(c.E2.Outline) {
			if d := segDist(s, q); d < minDist {
				minDist = d
			}
		}
	}
	assert.GreaterOrEqual(t, minDist, p.Gap-1e-12)
}
