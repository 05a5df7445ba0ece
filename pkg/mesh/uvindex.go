package mesh

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/math"
)

// UV coordinates are quantized to five decimal digits before use as lookup
// keys, absorbing floating-point noise between meshes that share a layout.
// The quantized form is stored as a scaled integer pair so that map-key
// equality is exact.
const uvScale = 1e5

// UVKey is a UV coordinate quantized to five decimal digits.
type UVKey struct {
	U, V int32
}

// QuantizeUV returns the correspondence key for a UV coordinate. Two UV
// coordinates match iff their keys are equal.
func QuantizeUV(uv math.Vec2) UVKey {
	return UVKey{
		U: int32(math32.Floor(uv.X*uvScale + 0.5)),
		V: int32(math32.Floor(uv.Y*uvScale + 0.5)),
	}
}

// UVIndex maps quantized UV coordinates to the vertex indices carrying
// them within one mesh. A vertex on a UV seam appears under multiple keys;
// one key holds multiple vertices when UV islands overlap. Slices hold no
// duplicates and their order carries no meaning.
type UVIndex map[UVKey][]int

// Insert adds vertex under key. Inserting the same vertex twice is a no-op.
func (idx UVIndex) Insert(key UVKey, vertex int) {
	verts := idx[key]
	for _, v := range verts {
		if v == vertex {
			return
		}
	}
	idx[key] = append(verts, vertex)
}

// Keys returns the index's keys in a stable order (U, then V).
func (idx UVIndex) Keys() []UVKey {
	keys := make([]UVKey, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}
		return keys[i].V < keys[j].V
	})
	return keys
}

// BuildUVIndex indexes every face loop of m by quantized UV coordinate.
// A nil mesh or one without an active UV layer yields an empty index, as
// does a mesh with no faces.
func BuildUVIndex(m *Mesh) UVIndex {
	idx := make(UVIndex)
	if m == nil || !m.HasUV {
		return idx
	}
	for _, loop := range m.Loops {
		idx.Insert(QuantizeUV(loop.UV), loop.Vertex)
	}
	return idx
}
