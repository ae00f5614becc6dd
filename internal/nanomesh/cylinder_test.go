package nanomesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCylinder_Counts(t *testing.T) {
	for _, n := range []int{3, 6, 24} {
		m := Cylinder(0.1, 10, n)
		assert.Len(t, m.Vertices, 2*n+2)
		assert.Len(t, m.Faces, 4*n)
	}
}

func TestCylinder_Extents(t *testing.T) {
	const (
		radius = 0.1
		height = 10.0
		n      = 24
	)
	m := Cylinder(radius, height, n)
	for _, v := range m.Vertices {
		r := math.Hypot(v.X, v.Y)
		assert.LessOrEqual(t, r, radius+1e-12)
		assert.LessOrEqual(t, math.Abs(v.Z), height/2+1e-12)
	}
	// axis endpoints are the cap centers
	assert.Equal(t, -height/2, m.Vertices[2*n].Z)
	assert.Equal(t, height/2, m.Vertices[2*n+1].Z)
}

func TestCylinder_ClosedManifold(t *testing.T) {
	// Every undirected edge of a closed surface is shared by exactly two
	// faces, and Euler's formula V−E+F=2 holds for genus 0.
	m := Cylinder(0.1, 10, 12)
	edges := make(map[[2]int]int)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if b < a {
				a, b = b, a
			}
			edges[[2]int{a, b}]++
		}
	}
	for e, count := range edges {
		require.Equal(t, 2, count, "edge %v", e)
	}
	v, e, f := len(m.Vertices), len(edges), len(m.Faces)
	assert.Equal(t, 2, v-e+f)
}

func TestSubdivide_Counts(t *testing.T) {
	// One midpoint per undirected edge: V' = V+E, F' = 4F, E' = V'+F'−2.
	n := 6
	v, f := 2*n+2, 4*n
	e := v + f - 2
	m := Cylinder(0.1, 10, n)
	for pass := 0; pass < 3; pass++ {
		m = m.Subdivide()
		v, f, e = v+e, 4*f, 2*e+3*f
		require.Len(t, m.Vertices, v, "pass %d", pass)
		require.Len(t, m.Faces, f, "pass %d", pass)
	}
}

func TestSubdivide_KeepsOrientation(t *testing.T) {
	// Signed volume via the divergence theorem must be preserved (the
	// children of a triangle are coplanar with it) and positive for an
	// outward-wound cylinder.
	m := Cylinder(0.5, 2, 16)
	before := signedVolume(m)
	assert.Greater(t, before, 0.0)
	assert.InDelta(t, before, signedVolume(m.Subdivide()), 1e-12)
}

func signedVolume(m *Mesh) float64 {
	total := 0.0
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		total += (a.X*(b.Y*c.Z-b.Z*c.Y) - a.Y*(b.X*c.Z-b.Z*c.X) + a.Z*(b.X*c.Y-b.Y*c.X)) / 6
	}
	return total
}
