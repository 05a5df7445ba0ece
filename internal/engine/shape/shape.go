// Package shape implements UV-correspondence shape blending: a base mesh
// is deformed toward weighted target meshes, with vertices matched across
// meshes by quantized UV coordinate rather than by index. Targets with
// different vertex ordering or topology can therefore drive the same base
// mesh as long as they share a UV layout.
//
// An Engine instance serves one base mesh and is not safe for concurrent
// use; callers must serialize recomputes per instance.
package shape

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/mesh"
)

const (
	// WeightEpsilon is the significance threshold: weights below it in
	// magnitude deactivate their binding, and deltas below it on every
	// axis are discarded.
	WeightEpsilon = 1e-6

	// GroupTolerance is the distance under which two axis deltas are
	// treated as the same deformation source during blending.
	GroupTolerance = 1e-5
)

// Engine errors.
var (
	ErrNoSuchTarget  = errors.New("shape: no such target binding")
	ErrInvalidWeight = errors.New("shape: weight is not a number")
)

// Engine owns the base-mesh baseline and the list of target bindings, and
// recomputes the blended vertex positions on demand. It keeps no
// computation state between recomputes beyond the baselines.
type Engine struct {
	bindings    []*Binding
	activeIndex int

	baseCaptured bool
	baseBaseline mesh.Snapshot
}

// NewEngine returns an engine with no targets and no captured baselines.
func NewEngine() *Engine {
	return &Engine{activeIndex: -1}
}

// Targets returns the current bindings in order.
func (e *Engine) Targets() []*Binding {
	return e.bindings
}

// AddTarget appends a new, empty binding, makes it the active one, and
// returns it.
func (e *Engine) AddTarget() *Binding {
	b := &Binding{Name: fmt.Sprintf("Target %d", len(e.bindings)+1)}
	e.bindings = append(e.bindings, b)
	e.activeIndex = len(e.bindings) - 1
	return b
}

// RemoveTarget deletes the binding at i and clamps the active index back
// into range. With the last binding gone the active index becomes -1.
func (e *Engine) RemoveTarget(i int) error {
	if i < 0 || i >= len(e.bindings) {
		return ErrNoSuchTarget
	}
	e.bindings = append(e.bindings[:i], e.bindings[i+1:]...)
	if e.activeIndex >= len(e.bindings) {
		e.activeIndex = len(e.bindings) - 1
	}
	return nil
}

// ActiveIndex returns the index of the active binding, or -1 when there
// are no bindings.
func (e *Engine) ActiveIndex() int {
	return e.activeIndex
}

// SetActiveIndex selects the active binding.
func (e *Engine) SetActiveIndex(i int) error {
	if i < 0 || i >= len(e.bindings) {
		return ErrNoSuchTarget
	}
	e.activeIndex = i
	return nil
}

// SetTargetMesh points the binding at i to m. Reassigning to a different
// mesh discards the binding's captured baseline so that deltas are
// measured against the new target, not a stale snapshot of the old one.
func (e *Engine) SetTargetMesh(i int, m *mesh.Mesh) error {
	if i < 0 || i >= len(e.bindings) {
		return ErrNoSuchTarget
	}
	b := e.bindings[i]
	if b.mesh != m {
		b.captured = false
		b.baseline = nil
	}
	b.mesh = m
	return nil
}

// SetWeight sets the blend weight of the binding at i. NaN is rejected;
// values outside [-1, 1] are clamped.
func (e *Engine) SetWeight(i int, w float32) error {
	if i < 0 || i >= len(e.bindings) {
		return ErrNoSuchTarget
	}
	if math32.IsNaN(w) {
		return ErrInvalidWeight
	}
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	e.bindings[i].weight = w
	return nil
}

// Recompute runs a full from-scratch blend and returns the final vertex
// positions, one per base vertex index. The base baseline is captured on
// first call; correspondence indexes are rebuilt every call since either
// mesh may have changed in between. Bindings without a mesh or with an
// insignificant weight cost nothing. Returns nil for a nil or vertex-less
// base mesh.
func (e *Engine) Recompute(base *mesh.Mesh) mesh.Snapshot {
	if base == nil || len(base.Positions) == 0 {
		return nil
	}
	if !e.baseCaptured {
		e.baseBaseline = mesh.TakeSnapshot(base)
		e.baseCaptured = true
	}

	baseIdx := mesh.BuildUVIndex(base)

	buckets := make(map[int][]deltaRecord)
	for _, b := range e.bindings {
		if !b.Active() {
			continue
		}
		b.captureBaseline()
		targetIdx := mesh.BuildUVIndex(b.mesh)
		for _, rec := range collectDeltas(baseIdx, targetIdx, e.baseBaseline, b.baseline, b.weight) {
			buckets[rec.vertex] = append(buckets[rec.vertex], rec)
		}
	}

	return blendDeltas(e.baseBaseline, buckets)
}

// Commit bakes the current blend into a new base baseline, zeroes every
// binding's weight, and returns the committed positions. Target baselines
// are left in place.
func (e *Engine) Commit(base *mesh.Mesh) mesh.Snapshot {
	result := e.Recompute(base)
	if result == nil {
		return nil
	}
	e.baseBaseline = result.Clone()
	e.baseCaptured = true
	for _, b := range e.bindings {
		b.weight = 0
	}
	return result
}

// Reset zeroes every binding's weight and recomputes, restoring the base
// baseline shape.
func (e *Engine) Reset(base *mesh.Mesh) mesh.Snapshot {
	for _, b := range e.bindings {
		b.weight = 0
	}
	return e.Recompute(base)
}

// Baseline returns the captured base baseline, or nil before the first
// recompute.
func (e *Engine) Baseline() mesh.Snapshot {
	return e.baseBaseline
}
