package mesh

import "github.com/revoconner/uvshape/pkg/math"

// Snapshot is a copy of a mesh's vertex positions, ordered by vertex index.
// A snapshot shares no storage with the mesh it was taken from, so later
// edits to the live mesh never show through. Callers treat snapshots as
// immutable once captured.
type Snapshot []math.Vec3

// TakeSnapshot copies the current vertex positions of m. Returns nil for a
// nil or vertex-less mesh.
func TakeSnapshot(m *Mesh) Snapshot {
	if m == nil || len(m.Positions) == 0 {
		return nil
	}
	s := make(Snapshot, len(m.Positions))
	copy(s, m.Positions)
	return s
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}
