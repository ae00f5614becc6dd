package nanomesh

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

var zAxis = r3.Vec{Z: 1}

// Sampler draws random fiber placements inside a sheet. It owns its
// pseudorandom state: all draws (length, azimuth, tilt, center candidates)
// consume one seeded source in a fixed order, so the same seed reproduces
// the same fiber population. Not safe for concurrent use; give each worker
// its own Sampler with a derived seed instead.
type Sampler struct {
	sheet SheetCfg
	rng   *rand.Rand

	length   distuv.Uniform
	azimuth  distuv.Uniform
	tilt     distuv.Normal
	tiltClip float64 // radians
	maxTries int
}

// NewSampler builds a sampler for the given sheet and fiber parameters,
// seeding a fresh source. The caller is responsible for cfg validity
// (positive bounds, LengthMin ≤ LengthMax).
func NewSampler(sheet SheetCfg, fiber FiberCfg, seed uint64) *Sampler {
	src := rand.NewPCG(seed, seed)
	sigma := fiber.TiltStdDeg * math.Pi / 180
	return &Sampler{
		sheet:    sheet,
		rng:      rand.New(src),
		length:   distuv.Uniform{Min: fiber.LengthMin, Max: fiber.LengthMax, Src: src},
		azimuth:  distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src},
		tilt:     distuv.Normal{Mu: 0, Sigma: sigma, Src: src},
		tiltClip: TiltClipSigma * sigma,
		maxTries: fiber.MaxTries,
	}
}

// Sample returns one fiber and how it was placed.
//
// The direction is an in-plane unit vector at a uniform azimuth, tipped out
// of plane by a clipped normal tilt angle. The center is rejection-sampled
// uniformly in the sheet's bounding box until both centerline endpoints lie
// inside it (inclusive on every axis); after maxTries the fiber degrades to
// the box centroid with the already-drawn direction (Fallback).
//
// Only the centerline is tested: the fiber's radius is ignored, so solids
// may protrude past the sheet by up to one radius.
func (s *Sampler) Sample() (Fiber, Placement) {
	length := s.length.Rand()
	phi := s.azimuth.Rand()

	tilt := s.tilt.Rand()
	if tilt > s.tiltClip {
		tilt = s.tiltClip
	} else if tilt < -s.tiltClip {
		tilt = -s.tiltClip
	}

	dirXY := r3.Vec{X: math.Cos(phi), Y: math.Sin(phi)}

	// Tip dirXY toward Z by rotating about the in-plane axis perpendicular
	// to it. The cross product only degenerates if dirXY were vertical; the
	// fixed X axis covers that.
	axis := r3.Cross(dirXY, zAxis)
	if r3.Norm(axis) < axisEps {
		axis = r3.Vec{X: 1}
	} else {
		axis = r3.Unit(axis)
	}
	dir := r3.Unit(r3.NewRotation(tilt, axis).Rotate(dirXY))

	half := 0.5 * length
	for i := 0; i < s.maxTries; i++ {
		c := r3.Vec{
			X: s.rng.Float64() * s.sheet.Width,
			Y: s.rng.Float64() * s.sheet.Depth,
			Z: s.rng.Float64() * s.sheet.Thickness,
		}
		p0 := r3.Sub(c, r3.Scale(half, dir))
		p1 := r3.Add(c, r3.Scale(half, dir))
		if s.inside(p0) && s.inside(p1) {
			return Fiber{Length: length, Center: c, Dir: dir}, Placed
		}
	}

	centroid := r3.Vec{
		X: s.sheet.Width / 2,
		Y: s.sheet.Depth / 2,
		Z: s.sheet.Thickness / 2,
	}
	DebugLog("placement budget exhausted (len=%.3f), falling back to centroid", length)
	return Fiber{Length: length, Center: centroid, Dir: dir}, Fallback
}

func (s *Sampler) inside(p r3.Vec) bool {
	return p.X >= 0 && p.X <= s.sheet.Width &&
		p.Y >= 0 && p.Y <= s.sheet.Depth &&
		p.Z >= 0 && p.Z <= s.sheet.Thickness
}
