// Package mesh defines the mesh data model consumed by the shape engine:
// vertex positions addressed by index, face-loop UV attachments, position
// snapshots, and the UV correspondence index.
package mesh

import "github.com/revoconner/uvshape/pkg/math"

// Loop is one face corner: the vertex index it is attached to and the UV
// coordinate it carries. The vertex index is the only vertex identity used
// anywhere in this package.
type Loop struct {
	Vertex int
	UV     math.Vec2
}

// Mesh is the engine-facing view of a host mesh. Positions are ordered by
// vertex index; Loops enumerate every face corner of every face. HasUV is
// false when the host mesh has no active UV layer, in which case Loops may
// be empty and the mesh cannot participate in UV correspondence.
type Mesh struct {
	Positions []math.Vec3
	Loops     []Loop
	HasUV     bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Positions)
}
