package nanomesh

import "github.com/paulmach/orb"

// Electrode is one comb electrode: a layer tag and the ordered rectilinear
// outline of its silhouette (busbar unioned with its fingers). The outline
// is implicitly closed (the last point connects back to the first) and the
// first point is not repeated.
type Electrode struct {
	Layer   string
	Outline orb.Ring
}

// Comb is the interdigitated electrode pair plus its overall extents.
// Both outlines lie within [0,Width]×[0,Height] and never come closer to
// each other than the configured gap.
type Comb struct {
	E1, E2        Electrode
	Width, Height float64
}

// BuildComb computes the two electrode outlines from the comb parameters.
// Deterministic closed-form construction, no failure path; parameter
// validation happens at the config boundary.
//
// Fingers alternate by index parity: even fingers belong to E1 (left busbar,
// fingers pointing right), odd to E2 (right busbar, fingers pointing left).
// Finger i's baseline sits at marginBottom + i·(fingerWidth+gap). E2's
// fingers are offset right by one gap, so every facing pair of edges, tip
// to busbar and finger flank to finger flank, clears exactly the gap.
func BuildComb(p CombCfg) Comb {
	w := p.FingerWidth
	g := p.Gap
	l := p.FingerLength
	b := p.BusWidth

	pitch := w + g
	activeH := float64(p.FingerCount)*pitch - g
	height := p.MarginBottom + activeH + p.MarginTop

	xRightBus := b + l + g
	width := xRightBus + b

	var e1Y, e2Y []float64
	for i := 0; i < p.FingerCount; i++ {
		y := p.MarginBottom + float64(i)*pitch
		if i%2 == 0 {
			e1Y = append(e1Y, y)
		} else {
			e2Y = append(e2Y, y)
		}
	}

	// E1: trace the left busbar bottom-up, detouring around each finger.
	e1 := orb.Ring{{0, 0}, {b, 0}}
	curY := 0.0
	for _, fy := range e1Y {
		if fy > curY {
			e1 = append(e1, orb.Point{b, fy})
		}
		e1 = append(e1,
			orb.Point{b + l, fy},
			orb.Point{b + l, fy + w},
			orb.Point{b, fy + w},
		)
		curY = fy + w
	}
	if height > curY {
		e1 = append(e1, orb.Point{b, height})
	}
	e1 = append(e1, orb.Point{0, height})

	// E2: mirror image, traced top-down along the right busbar.
	e2 := orb.Ring{{xRightBus + b, 0}, {xRightBus + b, height}, {xRightBus, height}}
	curY = height
	for i := len(e2Y) - 1; i >= 0; i-- {
		fy := e2Y[i]
		fyTop := fy + w
		if fyTop < curY {
			e2 = append(e2, orb.Point{xRightBus, fyTop})
		}
		e2 = append(e2,
			orb.Point{xRightBus - l, fyTop},
			orb.Point{xRightBus - l, fy},
			orb.Point{xRightBus, fy},
		)
		curY = fy
	}
	if curY > 0 {
		e2 = append(e2, orb.Point{xRightBus, 0})
	}

	return Comb{
		E1:     Electrode{Layer: "E1", Outline: e1},
		E2:     Electrode{Layer: "E2", Outline: e2},
		Width:  width,
		Height: height,
	}
}
