package nanomesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder builds a capped cylinder of the given radius and height, centered
// at the origin with its axis along +Z and sections flat sides around the
// circumference. Layout: sections bottom-ring vertices, sections top-ring
// vertices, then the two cap centers. Faces wind CCW seen from outside.
//
// Zero or negative radius/height/sections is a caller contract violation and
// is not checked here.
func Cylinder(radius, height float64, sections int) *Mesh {
	half := height / 2
	m := &Mesh{
		Vertices: make([]r3.Vec, 0, 2*sections+2),
		Faces:    make([][3]int, 0, 4*sections),
	}

	for _, z := range [2]float64{-half, half} {
		for i := 0; i < sections; i++ {
			theta := 2 * math.Pi * float64(i) / float64(sections)
			m.Vertices = append(m.Vertices, r3.Vec{
				X: radius * math.Cos(theta),
				Y: radius * math.Sin(theta),
				Z: z,
			})
		}
	}
	bottomC := len(m.Vertices)
	topC := bottomC + 1
	m.Vertices = append(m.Vertices, r3.Vec{Z: -half}, r3.Vec{Z: half})

	for i := 0; i < sections; i++ {
		j := (i + 1) % sections
		bi, bj := i, j
		ti, tj := sections+i, sections+j
		// side quad
		m.Faces = append(m.Faces, [3]int{bi, bj, tj}, [3]int{bi, tj, ti})
		// caps (bottom faces -Z, top faces +Z)
		m.Faces = append(m.Faces, [3]int{bottomC, bj, bi}, [3]int{topC, ti, tj})
	}
	return m
}
