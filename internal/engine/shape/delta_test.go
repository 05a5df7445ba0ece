package shape

import (
	"testing"

	"github.com/revoconner/uvshape/pkg/math"
	"github.com/revoconner/uvshape/pkg/mesh"
)

func TestCollectDeltas_MatchedPair(t *testing.T) {
	uv := math.Vec2{X: 0.5, Y: 0.5}
	key := mesh.QuantizeUV(uv)

	baseIdx := mesh.UVIndex{key: {0}}
	targetIdx := mesh.UVIndex{key: {0}}
	baseSnap := mesh.Snapshot{{X: 1, Y: 1, Z: 1}}
	targetSnap := mesh.Snapshot{{X: 2, Y: 1, Z: 0.5}}

	records := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 0.75)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.vertex != 0 {
		t.Errorf("vertex = %d, want 0", r.vertex)
	}
	want := math.Vec3{X: 1, Y: 0, Z: -0.5}
	if r.delta != want {
		t.Errorf("delta = %v, want %v", r.delta, want)
	}
	if r.weight != 0.75 {
		t.Errorf("weight = %v, want 0.75", r.weight)
	}
}

func TestCollectDeltas_CrossProductOnSeams(t *testing.T) {
	// Two base vertices and three target vertices under one key produce
	// every pairing.
	key := mesh.UVKey{U: 10000, V: 10000}
	baseIdx := mesh.UVIndex{key: {0, 1}}
	targetIdx := mesh.UVIndex{key: {0, 1, 2}}
	baseSnap := mesh.Snapshot{{}, {X: 1}}
	targetSnap := mesh.Snapshot{{X: 2}, {X: 3}, {X: 4}}

	records := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 1)
	if len(records) != 6 {
		t.Fatalf("expected 6 records (2x3 cross product), got %d", len(records))
	}
}

func TestCollectDeltas_UnmatchedKeyEmitsNothing(t *testing.T) {
	baseIdx := mesh.UVIndex{{U: 1, V: 1}: {0}}
	targetIdx := mesh.UVIndex{{U: 2, V: 2}: {0}}
	baseSnap := mesh.Snapshot{{}}
	targetSnap := mesh.Snapshot{{X: 5}}

	records := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 1)
	if len(records) != 0 {
		t.Errorf("expected no records for disjoint keys, got %d", len(records))
	}
}

func TestCollectDeltas_InsignificantDeltaDropped(t *testing.T) {
	key := mesh.UVKey{U: 0, V: 0}
	baseIdx := mesh.UVIndex{key: {0}}
	targetIdx := mesh.UVIndex{key: {0}}
	baseSnap := mesh.Snapshot{{X: 1, Y: 2, Z: 3}}
	targetSnap := mesh.Snapshot{{X: 1, Y: 2, Z: 3}}

	records := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 1)
	if len(records) != 0 {
		t.Errorf("expected zero-delta records to be dropped, got %d", len(records))
	}
}

func TestCollectDeltas_OutOfRangeIndicesSkipped(t *testing.T) {
	// An index can reference vertices beyond a snapshot's length when the
	// live mesh grew after baseline capture; those pairings are skipped.
	key := mesh.UVKey{U: 0, V: 0}
	baseIdx := mesh.UVIndex{key: {0, 5}}
	targetIdx := mesh.UVIndex{key: {0, 7}}
	baseSnap := mesh.Snapshot{{}}
	targetSnap := mesh.Snapshot{{X: 1}}

	records := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 1)
	if len(records) != 1 {
		t.Errorf("expected only the in-range pairing, got %d records", len(records))
	}
}

func TestCollectDeltas_Deterministic(t *testing.T) {
	// Record order feeds an order-dependent grouping step, so two calls
	// with identical inputs must produce identical sequences.
	baseIdx := make(mesh.UVIndex)
	targetIdx := make(mesh.UVIndex)
	baseSnap := make(mesh.Snapshot, 16)
	targetSnap := make(mesh.Snapshot, 16)
	for i := 0; i < 16; i++ {
		key := mesh.UVKey{U: int32(i * 7 % 13), V: int32(i)}
		baseIdx.Insert(key, i)
		targetIdx.Insert(key, i)
		baseSnap[i] = math.Vec3{X: float32(i)}
		targetSnap[i] = math.Vec3{X: float32(i) * 1.5, Y: float32(i % 3)}
	}

	first := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 0.5)
	second := collectDeltas(baseIdx, targetIdx, baseSnap, targetSnap, 0.5)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
