package nanomesh

import (
	"fmt"
	"time"
)

// DefaultDXFName derives the comb output filename from its parameters, the
// same pattern the interactive front-end uses for downloads.
func DefaultDXFName(p CombCfg) string {
	return fmt.Sprintf("comb_w%g_g%g_L%g_N%d_B%g.dxf",
		p.FingerWidth, p.Gap, p.FingerLength, p.FingerCount, p.BusWidth)
}

// Run executes both pipelines for one config file: generate the fiber mat
// and save it as STL, then build the comb outlines and save them as DXF.
// An empty cfgPath runs with the defaults.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	start := time.Now()
	mesh, stats := BuildNanomesh(cfg)
	fmt.Printf("[MESH] %d fibers (%d fallback), %d vertices, %d faces in %s\n",
		cfg.Fiber.Count, stats.Fallback, len(mesh.Vertices), len(mesh.Faces), time.Since(start))

	if err := WriteSTL(cfg.STLOut, mesh); err != nil {
		return fmt.Errorf("write STL: %w", err)
	}
	fmt.Printf("[STL]  saved %s\n", cfg.STLOut)

	comb := BuildComb(cfg.Comb)
	out := cfg.DXFOut
	if out == "" {
		out = DefaultDXFName(cfg.Comb)
	}
	if err := WriteCombDXF(out, comb, cfg.DXFVersion); err != nil {
		return fmt.Errorf("write DXF: %w", err)
	}
	fmt.Printf("[DXF]  saved %s (%gx%g, %s)\n", out, comb.Width, comb.Height, cfg.DXFVersion)

	if Debug {
		DebugLog("run finished in %s", time.Since(start))
	}
	return nil
}
