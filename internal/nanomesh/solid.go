package nanomesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuildFiberSolid turns one fiber descriptor into a transformed cylinder
// mesh: a cylinder of the fiber's length is built on the Z axis, subdivided,
// rotated so +Z maps onto the fiber direction and translated to its center.
// Post-transform the cylinder's centerline is exactly
// center ± (length/2)·direction.
//
// Non-positive radius or length is a caller contract violation; the result
// is then a degenerate mesh, not an error.
func BuildFiberSolid(f Fiber, radius float64, sections, subdivide int) *Mesh {
	m := Cylinder(radius, f.Length, sections)
	for i := 0; i < subdivide; i++ {
		m = m.Subdivide()
	}

	axis := r3.Cross(zAxis, f.Dir)
	if n := r3.Norm(axis); n < axisEps {
		// Parallel or anti-parallel to +Z. Anti-parallel needs a half turn
		// about any horizontal axis; parallel is the identity.
		if r3.Dot(zAxis, f.Dir) < 0 {
			m.Rotate(r3.NewRotation(math.Pi, r3.Vec{X: 1}))
		}
	} else {
		cosA := r3.Dot(zAxis, f.Dir)
		// clamp against floating-point overshoot before acos
		if cosA > 1 {
			cosA = 1
		} else if cosA < -1 {
			cosA = -1
		}
		m.Rotate(r3.NewRotation(math.Acos(cosA), r3.Scale(1/n, axis)))
	}
	m.Translate(f.Center)
	return m
}
