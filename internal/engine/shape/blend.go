package shape

import (
	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/mesh"
)

// blendDeltas reduces the per-vertex record buckets onto the baseline and
// returns the final positions. Vertices without records keep their exact
// baseline position; each of the three axes is blended independently.
func blendDeltas(baseline mesh.Snapshot, buckets map[int][]deltaRecord) mesh.Snapshot {
	final := baseline.Clone()
	for vertex, records := range buckets {
		if len(records) == 0 || vertex >= len(final) {
			continue
		}
		pos := final[vertex]
		for axis := 0; axis < 3; axis++ {
			offset, ok := blendAxis(records, axis)
			if !ok {
				continue
			}
			pos.SetAxis(axis, baseline[vertex].Axis(axis)+offset)
		}
		final[vertex] = pos
	}
	return final
}

// axisGroup is a cluster of near-equal axis deltas. delta is the first
// member's value; members within GroupTolerance of it never diverge enough
// for the difference to matter.
type axisGroup struct {
	delta     float32
	maxWeight float32
}

// blendAxis combines one vertex's records on one axis into a single
// offset. Deltas are clustered greedily: each joins the first existing
// group within GroupTolerance of its representative, else opens a new one.
// Each group contributes its delta scaled by the maximum (signed) weight
// among its members, and the group contributions are summed.
//
// Keeping only the strongest weight per group is deliberate: several
// targets pushing a vertex by nearly the same amount count once, at the
// strongest setting, instead of stacking additively. Distinct
// displacements still add up across groups.
//
// Returns false when no record reaches the significance threshold on this
// axis; the caller leaves the axis at its baseline value.
func blendAxis(records []deltaRecord, axis int) (float32, bool) {
	found := false
	for _, r := range records {
		if math32.Abs(r.delta.Axis(axis)) > WeightEpsilon {
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	var groups []axisGroup
	for _, r := range records {
		d := r.delta.Axis(axis)
		joined := false
		for i := range groups {
			if math32.Abs(d-groups[i].delta) < GroupTolerance {
				if r.weight > groups[i].maxWeight {
					groups[i].maxWeight = r.weight
				}
				joined = true
				break
			}
		}
		if !joined {
			groups = append(groups, axisGroup{delta: d, maxWeight: r.weight})
		}
	}

	var offset float32
	for _, g := range groups {
		offset += g.delta * g.maxWeight
	}
	return offset, true
}
