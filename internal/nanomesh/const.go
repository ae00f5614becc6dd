package nanomesh

// Default generation parameters. Linear units are whatever the sheet is
// measured in (the Streamlit front-end labels them μm); angles are degrees
// in configs and radians internally.
const (
	SheetWidth     = 50.0
	SheetDepth     = 20.0
	SheetThickness = 0.5
	FiberDiameter  = 0.2
	FiberCount     = 500

	// Fiber length is uniform on [LengthMin, LengthMax] (mean 10),
	// independent of sheet size.
	LengthMin = 5.0
	LengthMax = 15.0

	// Orientation: in-plane azimuth is uniform; the out-of-plane tilt is
	// normal with this standard deviation, clipped at ±TiltClipSigma σ.
	TiltStdDeg    = 1.0
	TiltClipSigma = 3.0

	// Mesh resolution: circumferential sides of each cylinder and rounds of
	// 4-way triangle subdivision applied to it.
	Sections      = 24
	SubdivideIter = 2

	// Center placement is rejection-sampled with this retry budget before
	// degrading to the sheet centroid.
	PlacementTries = 2000

	Seed   = 42
	STLOut = "nanomesh.stl"

	// Comb electrode defaults.
	FingerWidth  = 1.0
	Gap          = 1.0
	FingerLength = 10.0
	FingerCount  = 10
	BusWidth     = 5.0
	MarginTop    = 0.0
	MarginBottom = 10.0

	// DXF format variants: the modern one uses LWPOLYLINE entities, the
	// legacy one old-style POLYLINE (R12 readers do not know LWPOLYLINE).
	DXFModern = "R2010"
	DXFLegacy = "R12"

	// Degenerate cross products below this norm fall back to a fixed axis.
	axisEps = 1e-9
)
