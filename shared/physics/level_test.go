package physics

import (
	"testing"

	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/geom"
	"github.com/automoto/construct/shared/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []*Collider) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func boxLevel(t *testing.T) *Level {
	t.Helper()
	lvl := NewLevel()
	for _, b := range []struct {
		kind Kind
		name string
		r    geom.Rect
	}{
		{KindFloor, "far", geom.RectXYWH(1000, 0, 100, 20)},
		{KindWall, "pillar", geom.RectXYWH(40, -200, 20, 200)},
		{KindFloor, "near", geom.RectXYWH(0, 0, 100, 20)},
		{KindFloor, "deep", geom.RectXYWH(40, 500, 20, 20)},
	} {
		node := scene.NewNode(b.name, b.r.MinX, b.r.MinY)
		hb, err := collision.NewBox(node, 0, 0, b.r.Width(), b.r.Height())
		require.NoError(t, err)
		lvl.Add(b.kind, b.name, hb)
	}
	return lvl
}

func TestCollidersKeepInsertionOrder(t *testing.T) {
	lvl := boxLevel(t)
	assert.Equal(t, 4, lvl.Len())
	assert.Equal(t, []string{"far", "near", "deep"}, names(lvl.Colliders(KindFloor)))
	assert.Equal(t, []string{"pillar"}, names(lvl.Colliders(KindWall)))
}

func TestCandidatesWithoutIndexReturnEverything(t *testing.T) {
	lvl := boxLevel(t)
	assert.False(t, lvl.Indexed())
	assert.Equal(t, []string{"far", "near", "deep"}, names(lvl.Candidates(KindFloor, geom.RectXYWH(10, 5, 10, 10))))
}

func TestCandidatesPruneWithIndex(t *testing.T) {
	lvl := boxLevel(t)
	lvl.BuildIndex(16)
	require.True(t, lvl.Indexed())

	assert.Equal(t, []string{"near"}, names(lvl.Candidates(KindFloor, geom.RectXYWH(10, 5, 10, 10))))
	assert.Empty(t, lvl.Candidates(KindFloor, geom.RectXYWH(400, 200, 10, 10)))
	assert.Equal(t, []string{"pillar"}, names(lvl.Candidates(KindWall, geom.RectXYWH(50, -10, 5, 5))))

	wide := lvl.Candidates(KindFloor, geom.RectXYWH(0, 0, 1100, 520))
	assert.Equal(t, []string{"far", "near", "deep"}, names(wide), "candidates come back in insertion order")
}

func TestCandidatesIncludeTouchingNeighbours(t *testing.T) {
	lvl := boxLevel(t)
	lvl.BuildIndex(16)

	// Sits exactly on top of "near".
	got := lvl.Candidates(KindFloor, geom.RectXYWH(10, -50, 10, 50))
	assert.Equal(t, []string{"near"}, names(got))
}

func TestCandidatesOutsideIndexFallBackToScan(t *testing.T) {
	lvl := boxLevel(t)
	lvl.BuildIndex(16)

	got := lvl.Candidates(KindFloor, geom.RectXYWH(-5000, 0, 10, 10))
	assert.Len(t, got, 3)
}

func TestAddDropsIndex(t *testing.T) {
	lvl := boxLevel(t)
	lvl.BuildIndex(0)
	require.True(t, lvl.Indexed())

	lvl.Add(KindWall, "late", nil)
	assert.False(t, lvl.Indexed())
}

func TestUnresolvableCollidersStayCandidates(t *testing.T) {
	lvl := boxLevel(t)
	lvl.Add(KindFloor, "ghost", nil)
	lvl.BuildIndex(16)

	got := lvl.Candidates(KindFloor, geom.RectXYWH(10, 5, 10, 10))
	assert.Equal(t, []string{"near", "ghost"}, names(got))
}

func TestColliderKeyFallsBackToKindAndOrder(t *testing.T) {
	lvl := NewLevel()
	lvl.Add(KindWall, "named", nil)
	c := lvl.Add(KindWall, "", nil)
	assert.Equal(t, "wall#1", c.key())
}
