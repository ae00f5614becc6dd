package nanomesh

import "gonum.org/v1/gonum/spatial/r3"

// Fiber describes one sampled fiber: its length, the center of its
// centerline and its unit direction. Value data; consumed once by
// BuildFiberSolid.
type Fiber struct {
	Length float64
	Center r3.Vec
	Dir    r3.Vec // unit length
}

// Endpoints returns the two ends of the fiber's centerline,
// center ± (length/2)·direction.
func (f Fiber) Endpoints() (p0, p1 r3.Vec) {
	half := r3.Scale(0.5*f.Length, f.Dir)
	return r3.Sub(f.Center, half), r3.Add(f.Center, half)
}

// Placement reports how a fiber's center was chosen.
type Placement int

const (
	// Placed means both centerline endpoints were verified inside the sheet.
	Placed Placement = iota
	// Fallback means the retry budget ran out and the fiber sits at the
	// sheet centroid. A degraded placement, not an error.
	Fallback
)

func (p Placement) String() string {
	if p == Fallback {
		return "fallback"
	}
	return "placed"
}
