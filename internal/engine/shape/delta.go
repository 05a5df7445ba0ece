package shape

import (
	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/math"
	"github.com/revoconner/uvshape/pkg/mesh"
)

// deltaRecord is one candidate displacement for a base vertex: the raw
// (unweighted) position difference a single UV-matched target pairing
// implies, tagged with the binding's weight. Records live only for the
// duration of one recompute.
type deltaRecord struct {
	vertex int
	delta  math.Vec3
	weight float32
}

// collectDeltas emits one record per (source vertex, target vertex) pair
// sharing a quantized UV key. The pairing is a full cross product: on a
// seam either mesh may hold several coincident vertices for one surface
// point, and no disambiguation beyond UV equality is attempted; the
// blender resolves the resulting conflicts. Records whose delta is below
// the significance threshold on every axis are dropped.
//
// Base keys are walked in sorted order. Downstream grouping is
// order-dependent, so record order must not vary between identical calls.
func collectDeltas(baseIdx, targetIdx mesh.UVIndex, baseSnap, targetSnap mesh.Snapshot, weight float32) []deltaRecord {
	var records []deltaRecord
	for _, key := range baseIdx.Keys() {
		targetVerts, ok := targetIdx[key]
		if !ok {
			continue
		}
		for _, src := range baseIdx[key] {
			if src >= len(baseSnap) {
				continue
			}
			for _, tgt := range targetVerts {
				if tgt >= len(targetSnap) {
					continue
				}
				delta := targetSnap[tgt].Sub(baseSnap[src])
				if !significant(delta) {
					continue
				}
				records = append(records, deltaRecord{
					vertex: src,
					delta:  delta,
					weight: weight,
				})
			}
		}
	}
	return records
}

// significant reports whether at least one axis of d exceeds the
// significance threshold.
func significant(d math.Vec3) bool {
	return math32.Abs(d.X) > WeightEpsilon ||
		math32.Abs(d.Y) > WeightEpsilon ||
		math32.Abs(d.Z) > WeightEpsilon
}
