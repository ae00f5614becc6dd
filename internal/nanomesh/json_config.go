package nanomesh

import (
	"encoding/json"
	"fmt"
	"os"
)

// SheetCfg is the bounding slab containing all fibers.
type SheetCfg struct {
	Width     float64 `json:"width,omitempty"`
	Depth     float64 `json:"depth,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
}

// FiberCfg controls fiber sampling and per-fiber mesh resolution.
type FiberCfg struct {
	Diameter   float64 `json:"diameter,omitempty"`
	Count      int     `json:"count,omitempty"`
	LengthMin  float64 `json:"lengthMin,omitempty"`
	LengthMax  float64 `json:"lengthMax,omitempty"`
	TiltStdDeg float64 `json:"tiltStdDeg,omitempty"`
	Sections   int     `json:"sections,omitempty"`
	// Subdivide is the number of 4-way subdivision passes per cylinder.
	// Missing or 0 selects the default; -1 disables subdivision.
	Subdivide int `json:"subdivide,omitempty"`
	MaxTries  int `json:"maxTries,omitempty"`
}

// Radius returns half the configured diameter.
func (f FiberCfg) Radius() float64 { return f.Diameter / 2 }

// CombCfg holds the comb-electrode geometry parameters.
type CombCfg struct {
	FingerWidth  float64 `json:"fingerWidth,omitempty"`
	Gap          float64 `json:"gap,omitempty"`
	FingerLength float64 `json:"fingerLength,omitempty"`
	FingerCount  int     `json:"fingerCount,omitempty"`
	BusWidth     float64 `json:"busWidth,omitempty"`
	MarginTop    float64 `json:"marginTop,omitempty"`
	MarginBottom float64 `json:"marginBottom,omitempty"`
}

// Config enumerates every recognized generation option. Zero/missing fields
// are filled with the package defaults on load.
type Config struct {
	Seed       uint64   `json:"seed,omitempty"` // 0 selects the default seed
	Sheet      SheetCfg `json:"sheet"`
	Fiber      FiberCfg `json:"fiber"`
	Comb       CombCfg  `json:"comb"`
	STLOut     string   `json:"stlOut,omitempty"`
	DXFOut     string   `json:"dxfOut,omitempty"` // default derives from the comb parameters
	DXFVersion string   `json:"dxfVersion,omitempty"`
}

// DefaultConfig returns a config with every option at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Seed == 0 {
		cfg.Seed = Seed
	}
	if cfg.Sheet.Width <= 0 {
		cfg.Sheet.Width = SheetWidth
	}
	if cfg.Sheet.Depth <= 0 {
		cfg.Sheet.Depth = SheetDepth
	}
	if cfg.Sheet.Thickness <= 0 {
		cfg.Sheet.Thickness = SheetThickness
	}
	if cfg.Fiber.Diameter <= 0 {
		cfg.Fiber.Diameter = FiberDiameter
	}
	if cfg.Fiber.Count <= 0 {
		cfg.Fiber.Count = FiberCount
	}
	if cfg.Fiber.LengthMin <= 0 {
		cfg.Fiber.LengthMin = LengthMin
	}
	if cfg.Fiber.LengthMax <= 0 {
		cfg.Fiber.LengthMax = LengthMax
	}
	if cfg.Fiber.TiltStdDeg <= 0 {
		cfg.Fiber.TiltStdDeg = TiltStdDeg
	}
	if cfg.Fiber.Sections <= 0 {
		cfg.Fiber.Sections = Sections
	}
	if cfg.Fiber.Subdivide == 0 {
		cfg.Fiber.Subdivide = SubdivideIter
	} else if cfg.Fiber.Subdivide < 0 {
		cfg.Fiber.Subdivide = 0
	}
	if cfg.Fiber.MaxTries <= 0 {
		cfg.Fiber.MaxTries = PlacementTries
	}
	if cfg.Comb.FingerWidth <= 0 {
		cfg.Comb.FingerWidth = FingerWidth
	}
	if cfg.Comb.Gap <= 0 {
		cfg.Comb.Gap = Gap
	}
	if cfg.Comb.FingerLength <= 0 {
		cfg.Comb.FingerLength = FingerLength
	}
	if cfg.Comb.FingerCount <= 0 {
		cfg.Comb.FingerCount = FingerCount
	}
	if cfg.Comb.BusWidth <= 0 {
		cfg.Comb.BusWidth = BusWidth
	}
	if cfg.Comb.MarginTop < 0 {
		cfg.Comb.MarginTop = MarginTop
	}
	if cfg.Comb.MarginBottom <= 0 {
		cfg.Comb.MarginBottom = MarginBottom
	}
	if cfg.STLOut == "" {
		cfg.STLOut = STLOut
	}
	if cfg.DXFVersion == "" {
		cfg.DXFVersion = DXFModern
	}
}

// Validate checks the boundary conditions the core builders rely on; the
// builders themselves do no defensive validation.
func (cfg *Config) Validate() error {
	if cfg.Sheet.Width <= 0 || cfg.Sheet.Depth <= 0 || cfg.Sheet.Thickness <= 0 {
		return fmt.Errorf("sheet dimensions must be positive, got %+v", cfg.Sheet)
	}
	if cfg.Fiber.Diameter <= 0 {
		return fmt.Errorf("fiber diameter must be positive, got %g", cfg.Fiber.Diameter)
	}
	if cfg.Fiber.Count <= 0 {
		return fmt.Errorf("fiber count must be positive, got %d", cfg.Fiber.Count)
	}
	if cfg.Fiber.LengthMin > cfg.Fiber.LengthMax {
		return fmt.Errorf("fiber lengthMin %g > lengthMax %g", cfg.Fiber.LengthMin, cfg.Fiber.LengthMax)
	}
	if cfg.Fiber.Sections < 3 {
		return fmt.Errorf("fiber sections must be ≥3, got %d", cfg.Fiber.Sections)
	}
	if cfg.Fiber.MaxTries <= 0 {
		return fmt.Errorf("fiber maxTries must be positive, got %d", cfg.Fiber.MaxTries)
	}
	c := cfg.Comb
	if c.FingerWidth <= 0 || c.Gap <= 0 || c.FingerLength <= 0 || c.BusWidth <= 0 {
		return fmt.Errorf("comb dimensions must be positive, got %+v", c)
	}
	if c.FingerCount <= 0 {
		return fmt.Errorf("comb fingerCount must be a positive integer, got %d", c.FingerCount)
	}
	if c.MarginTop < 0 || c.MarginBottom < 0 {
		return fmt.Errorf("comb margins must be non-negative, got %+v", c)
	}
	if cfg.DXFVersion != DXFModern && cfg.DXFVersion != DXFLegacy {
		return fmt.Errorf("unknown DXF version %q (want %s or %s)", cfg.DXFVersion, DXFModern, DXFLegacy)
	}
	return nil
}

// loadConfig reads a JSON config file, fills defaults and validates it.
// An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %q: sheet=(%g, %g, %g), fibers=%d, seed=%d",
		path, cfg.Sheet.Width, cfg.Sheet.Depth, cfg.Sheet.Thickness, cfg.Fiber.Count, cfg.Seed)
	return cfg, nil
}
