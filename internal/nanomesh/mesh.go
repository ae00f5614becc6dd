package nanomesh

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is an indexed triangle mesh: a vertex array plus CCW-wound face
// indices into it.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// Rotate applies r to every vertex in place.
func (m *Mesh) Rotate(r r3.Rotation) {
	for i, v := range m.Vertices {
		m.Vertices[i] = r.Rotate(v)
	}
}

// Translate moves every vertex by t in place.
func (m *Mesh) Translate(t r3.Vec) {
	for i, v := range m.Vertices {
		m.Vertices[i] = r3.Add(v, t)
	}
}

// Subdivide returns a new mesh with every triangle split into four at its
// edge midpoints. Midpoint vertices are shared between the faces of this
// mesh, so the surface stays watertight where it was watertight.
func (m *Mesh) Subdivide() *Mesh {
	out := &Mesh{
		Vertices: make([]r3.Vec, len(m.Vertices), len(m.Vertices)+3*len(m.Faces)/2),
		Faces:    make([][3]int, 0, 4*len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)

	mids := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if idx, ok := mids[key]; ok {
			return idx
		}
		idx := len(out.Vertices)
		out.Vertices = append(out.Vertices, r3.Scale(0.5, r3.Add(m.Vertices[a], m.Vertices[b])))
		mids[key] = idx
		return idx
	}

	for _, f := range m.Faces {
		a, b, c := f[0], f[1], f[2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)
		out.Faces = append(out.Faces,
			[3]int{a, ab, ca},
			[3]int{ab, b, bc},
			[3]int{ca, bc, c},
			[3]int{ab, bc, ca},
		)
	}
	return out
}

// Assemble concatenates solids into one mesh, offsetting each solid's face
// indices by the running vertex count. Solids stay topologically independent:
// no vertex welding or deduplication, so output vertex and face counts are
// exactly the sums of the inputs'. Insertion order is kept so exported files
// are reproducible. An empty (or nil) input yields an empty mesh.
func Assemble(solids []*Mesh) *Mesh {
	var nv, nf int
	for _, s := range solids {
		nv += len(s.Vertices)
		nf += len(s.Faces)
	}
	out := &Mesh{
		Vertices: make([]r3.Vec, 0, nv),
		Faces:    make([][3]int, 0, nf),
	}
	for _, s := range solids {
		base := len(out.Vertices)
		out.Vertices = append(out.Vertices, s.Vertices...)
		for _, f := range s.Faces {
			out.Faces = append(out.Faces, [3]int{f[0] + base, f[1] + base, f[2] + base})
		}
	}
	return out
}
