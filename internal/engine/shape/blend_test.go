package shape

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/revoconner/uvshape/pkg/math"
	"github.com/revoconner/uvshape/pkg/mesh"
)

func axisRecords(deltas, weights []float32) []deltaRecord {
	records := make([]deltaRecord, len(deltas))
	for i := range deltas {
		records[i] = deltaRecord{
			vertex: 0,
			delta:  math.Vec3{X: deltas[i]},
			weight: weights[i],
		}
	}
	return records
}

func TestBlendAxis_DistinctDeltasSum(t *testing.T) {
	// Two deltas further apart than the grouping tolerance form two
	// groups, and both contributions are summed.
	records := axisRecords([]float32{0.10, 0.34}, []float32{0.5, 0.8})

	got, ok := blendAxis(records, 0)
	if !ok {
		t.Fatal("expected a significant axis")
	}
	want := float32(0.10)*0.5 + float32(0.34)*0.8
	if math32.Abs(got-want) > 1e-6 {
		t.Errorf("blendAxis = %v, want %v", got, want)
	}
}

func TestBlendAxis_SimilarDeltasKeepStrongest(t *testing.T) {
	// Two deltas within the grouping tolerance collapse into one group;
	// only the highest-weighted contribution is applied, once.
	records := axisRecords([]float32{0.10, 0.100001}, []float32{0.5, 0.8})

	got, ok := blendAxis(records, 0)
	if !ok {
		t.Fatal("expected a significant axis")
	}
	want := float32(0.10) * 0.8
	if math32.Abs(got-want) > 1e-6 {
		t.Errorf("blendAxis = %v, want %v", got, want)
	}
}

func TestBlendAxis_SignedMaximumWeight(t *testing.T) {
	// The group keeps the maximum signed weight, not the maximum
	// magnitude: -0.5 wins over -0.8.
	records := axisRecords([]float32{0.25, 0.25}, []float32{-0.8, -0.5})

	got, ok := blendAxis(records, 0)
	if !ok {
		t.Fatal("expected a significant axis")
	}
	want := float32(0.25) * -0.5
	if math32.Abs(got-want) > 1e-6 {
		t.Errorf("blendAxis = %v, want %v", got, want)
	}
}

func TestBlendAxis_InsignificantAxisSkipped(t *testing.T) {
	records := axisRecords([]float32{1e-7, -1e-8}, []float32{1, 1})

	if _, ok := blendAxis(records, 0); ok {
		t.Error("expected axis below significance threshold to be skipped")
	}
}

func TestBlendAxis_AxesIndependent(t *testing.T) {
	// A record significant on X only must not disturb Y or Z.
	records := []deltaRecord{
		{vertex: 0, delta: math.Vec3{X: 0.5}, weight: 1},
	}
	if _, ok := blendAxis(records, 1); ok {
		t.Error("Y axis should be skipped")
	}
	if _, ok := blendAxis(records, 2); ok {
		t.Error("Z axis should be skipped")
	}
	got, ok := blendAxis(records, 0)
	if !ok || got != 0.5 {
		t.Errorf("X axis = %v (ok=%v), want 0.5", got, ok)
	}
}

func TestBlendDeltas_UntouchedVerticesKeepBaseline(t *testing.T) {
	baseline := mesh.Snapshot{{X: 1}, {X: 2}, {X: 3}}
	buckets := map[int][]deltaRecord{
		1: {{vertex: 1, delta: math.Vec3{X: 0.5}, weight: 1}},
	}

	final := blendDeltas(baseline, buckets)
	if final[0] != baseline[0] || final[2] != baseline[2] {
		t.Errorf("vertices without records moved: %v", final)
	}
	if final[1].X != 2.5 {
		t.Errorf("final[1].X = %v, want 2.5", final[1].X)
	}
}

func TestBlendDeltas_DoesNotMutateBaseline(t *testing.T) {
	baseline := mesh.Snapshot{{X: 1}}
	buckets := map[int][]deltaRecord{
		0: {{vertex: 0, delta: math.Vec3{X: 1}, weight: 1}},
	}

	blendDeltas(baseline, buckets)
	if baseline[0].X != 1 {
		t.Errorf("baseline mutated: %v", baseline[0])
	}
}
