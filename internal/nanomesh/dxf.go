package nanomesh

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// CombDrawing serializes the electrode pair into a DXF document, one layer
// per electrode. version selects the closed-polyline entity: DXFModern emits
// LWPOLYLINE, DXFLegacy the old-style POLYLINE that R12-era readers expect.
func CombDrawing(c Comb, version string) (*drawing.Drawing, error) {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	layers := []struct {
		e   Electrode
		col color.ColorNumber
	}{
		{c.E1, color.Red},
		{c.E2, color.Yellow},
	}
	for _, l := range layers {
		d.AddLayer(l.e.Layer, l.col, dxf.DefaultLineType, true)
		switch version {
		case DXFLegacy:
			pl := entity.NewPolyline()
			for _, pt := range l.e.Outline {
				pl.AddVertex(pt[0], pt[1], 0.0)
			}
			pl.Close()
			d.AddEntity(pl)
		case DXFModern:
			lwp := entity.NewLwPolyline(len(l.e.Outline))
			for j, pt := range l.e.Outline {
				lwp.Vertices[j] = []float64{pt[0], pt[1]}
			}
			lwp.Close()
			d.AddEntity(lwp)
		default:
			return nil, fmt.Errorf("unknown DXF version %q (want %s or %s)", version, DXFModern, DXFLegacy)
		}
	}
	return d, nil
}

// WriteCombDXF saves the electrode pair as a DXF file.
func WriteCombDXF(path string, c Comb, version string) error {
	d, err := CombDrawing(c, version)
	if err != nil {
		return err
	}
	return d.SaveAs(path)
}
