package nanomesh

import (
	"io"

	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// triangleReader streams a mesh's faces as triangles, io.Reader style, so
// the STL writer never needs the whole triangle soup resident twice.
type triangleReader struct {
	m    *Mesh
	next int
}

func newTriangleReader(m *Mesh) *triangleReader { return &triangleReader{m: m} }

// ReadTriangles fills dst with up to len(dst) triangles and reports how many
// were written. It returns io.EOF once the mesh is exhausted.
func (r *triangleReader) ReadTriangles(dst []r3.Triangle) (int, error) {
	if r.next >= len(r.m.Faces) {
		return 0, io.EOF
	}
	n := 0
	for ; n < len(dst) && r.next < len(r.m.Faces); n++ {
		f := r.m.Faces[r.next]
		dst[n] = r3.Triangle{
			r.m.Vertices[f[0]],
			r.m.Vertices[f[1]],
			r.m.Vertices[f[2]],
		}
		r.next++
	}
	return n, nil
}

// WriteSTL saves the mesh as a binary STL file.
func WriteSTL(path string, m *Mesh) error {
	return render.CreateSTL(path, newTriangleReader(m))
}
