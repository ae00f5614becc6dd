package nanomesh

import "github.com/soypat/sdf/render"

var (
	Debug = false // set to true for verbose debug output

	// Compile time check that the mesh triangle reader satisfies the STL
	// renderer contract.
	_ render.Renderer = (*triangleReader)(nil)
)
