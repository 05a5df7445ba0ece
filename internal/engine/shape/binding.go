package shape

import (
	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/mesh"
)

// Binding attaches one weighted target mesh to an engine. The target's
// baseline is captured lazily, on the first recompute in which the binding
// is active, and is never recaptured implicitly afterwards.
type Binding struct {
	Name string

	mesh   *mesh.Mesh
	weight float32

	captured bool
	baseline mesh.Snapshot
}

// Mesh returns the bound target mesh, or nil when unset.
func (b *Binding) Mesh() *mesh.Mesh {
	return b.mesh
}

// Weight returns the binding's blend weight.
func (b *Binding) Weight() float32 {
	return b.weight
}

// Active reports whether the binding contributes to a recompute: it must
// have a target mesh and a weight of significant magnitude.
func (b *Binding) Active() bool {
	return b.mesh != nil && math32.Abs(b.weight) >= WeightEpsilon
}

// captureBaseline snapshots the target's positions once. Subsequent calls
// return without touching the stored snapshot even if the live target has
// since changed; deltas are always measured from the state at first
// activation.
func (b *Binding) captureBaseline() {
	if b.captured {
		return
	}
	b.baseline = mesh.TakeSnapshot(b.mesh)
	b.captured = true
}
