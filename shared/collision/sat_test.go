package collision

import (
	"math"
	"testing"

	"github.com/automoto/construct/shared/geom"
	"github.com/automoto/construct/shared/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box returns a hitbox whose world top-left corner is (x, y).
func box(t *testing.T, x, y, w, h float64) (*Hitbox, *scene.Node) {
	t.Helper()
	node := scene.NewNode("box", x, y)
	hb, err := NewBox(node, 0, 0, w, h)
	require.NoError(t, err)
	return hb, node
}

func TestSeparatedRectanglesDoNotCollide(t *testing.T) {
	tests := []struct {
		name   string
		bx, by float64
		bw, bh float64
	}{
		{"far right", 50, 0, 10, 10},
		{"far below", 0, 50, 10, 10},
		{"diagonal", 20, 20, 5, 5},
		{"touching right edge", 10, 0, 10, 10},
		{"touching bottom edge", 0, 10, 10, 10},
		{"touching corner", 10, 10, 10, 10},
		{"left of", -30, 3, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := box(t, 0, 0, 10, 10)
			b, _ := box(t, tt.bx, tt.by, tt.bw, tt.bh)

			r, err := Test(a, b)
			require.NoError(t, err)
			assert.False(t, r.Colliding)
			assert.Zero(t, r.Overlap)
			assert.Zero(t, r.Normal)
		})
	}
}

func TestIdenticalRectanglesOverlapBySmallerDimension(t *testing.T) {
	a, _ := box(t, 100, 100, 50, 100)
	b, _ := box(t, 100, 100, 50, 100)

	r, err := Test(a, b)
	require.NoError(t, err)

	assert.True(t, r.Colliding)
	assert.Equal(t, 50.0, r.Overlap)
	assert.Equal(t, geom.Pt(1, 0), r.Normal, "concentric tie resolves to the canonical x axis")
}

func TestSymmetry(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, aw, ah float64
		bx, by, bw, bh float64
	}{
		{"shallow from right", 0, 0, 10, 10, 7, 2, 10, 10},
		{"shallow from below", 0, 0, 10, 10, 1, 8, 10, 10},
		{"contained off center", 0, 0, 100, 100, 10, 40, 5, 5},
		{"wide floor under actor", 0, 150, 400, 20, 75, 120, 50, 50},
		{"apart", 0, 0, 10, 10, 30, 30, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := box(t, tt.ax, tt.ay, tt.aw, tt.ah)
			b, _ := box(t, tt.bx, tt.by, tt.bw, tt.bh)

			ab, err := Test(a, b)
			require.NoError(t, err)
			ba, err := Test(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab.Colliding, ba.Colliding)
			assert.InDelta(t, ab.Overlap, ba.Overlap, 1e-9)
			assert.Equal(t, ab.Normal, ba.Normal.Neg())
		})
	}
}

func TestNormalPointsFromFirstTowardSecond(t *testing.T) {
	a, _ := box(t, 0, 0, 10, 10)
	b, _ := box(t, 7, 2, 10, 10)

	r, err := Test(a, b)
	require.NoError(t, err)
	require.True(t, r.Colliding)
	assert.Equal(t, 3.0, r.Overlap)
	assert.Equal(t, geom.Pt(1, 0), r.Normal)

	r, err = Test(b, a)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(-1, 0), r.Normal)
}

func TestMovingByMTVSeparates(t *testing.T) {
	tests := []struct {
		name   string
		bx, by float64
	}{
		{"from right", 7, 2},
		{"from left", -6, 1},
		{"from above", 2, -9},
		{"from below", -1, 4},
		{"same place", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := box(t, 0, 0, 10, 10)
			b, bNode := box(t, tt.bx, tt.by, 10, 10)

			r, err := Test(a, b)
			require.NoError(t, err)
			require.True(t, r.Colliding)

			bNode.Position = bNode.Position.Add(r.MTV())

			after, err := Test(a, b)
			require.NoError(t, err)
			assert.False(t, after.Colliding, "exactly touching after separation counts as not colliding")
		})
	}
}

func TestRotatedBox(t *testing.T) {
	// A 10x10 square centered on its node, turned 45 degrees: its corners
	// reach ~7.07 from the center along the axes.
	node := scene.NewNode("diamond", 0, 0)
	node.Rotation = math.Pi / 4
	diamond, err := NewBox(node, -5, -5, 10, 10)
	require.NoError(t, err)

	near, _ := box(t, 6, -1, 10, 2)
	r, err := Test(diamond, near)
	require.NoError(t, err)
	assert.True(t, r.Colliding)
	assert.InDelta(t, 5*math.Sqrt2-6, r.Overlap, 1e-9)

	// Inside the diamond's AABB but beyond its slanted edge.
	corner, _ := box(t, 4, 4, 3, 3)
	r, err = Test(diamond, corner)
	require.NoError(t, err)
	assert.False(t, r.Colliding)
}

func TestTriangleAgainstBox(t *testing.T) {
	node := scene.NewNode("tri", 0, 0)
	tri, err := geom.NewPolygon([]geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	require.NoError(t, err)
	hb, err := NewHitbox(tri, node)
	require.NoError(t, err)

	// Sits above the hypotenuse.
	above, _ := box(t, 6, 0, 4, 3)
	ok, err := Overlaps(hb, above)
	require.NoError(t, err)
	assert.False(t, ok)

	below, _ := box(t, 1, 7, 2, 2)
	ok, err = Overlaps(hb, below)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTestOffsetDoesNotMoveOwner(t *testing.T) {
	a, aNode := box(t, 0, 0, 10, 10)
	floor, _ := box(t, 0, 10, 100, 10)

	r, err := Test(a, floor)
	require.NoError(t, err)
	assert.False(t, r.Colliding, "resting exactly on top")

	r, err = TestOffset(a, geom.Pt(0, 1), floor)
	require.NoError(t, err)
	assert.True(t, r.Colliding)
	assert.Equal(t, 1.0, r.Overlap)
	assert.Equal(t, geom.Pt(0, 1), r.Normal)
	assert.Equal(t, geom.Pt(0, 0), aNode.Position)
}

func TestErrors(t *testing.T) {
	t.Run("nil owner", func(t *testing.T) {
		_, err := NewBox(nil, 0, 0, 1, 1)
		assert.ErrorIs(t, err, ErrNoOwner)
	})

	t.Run("missing collider", func(t *testing.T) {
		a, _ := box(t, 0, 0, 1, 1)
		_, err := Test(a, nil)
		assert.ErrorIs(t, err, ErrMissingCollider)
	})

	t.Run("zero scale collapses edges", func(t *testing.T) {
		a, aNode := box(t, 0, 0, 10, 10)
		b, _ := box(t, 0, 0, 10, 10)
		aNode.Scale = geom.Pt(0, 1)

		_, err := Test(a, b)
		assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
	})

	t.Run("non-finite position", func(t *testing.T) {
		a, aNode := box(t, 0, 0, 10, 10)
		b, _ := box(t, 0, 0, 10, 10)
		aNode.Position = geom.Pt(math.Inf(1), 0)

		_, err := Test(a, b)
		assert.ErrorIs(t, err, geom.ErrOutOfRangeTransform)
	})

	t.Run("short outline", func(t *testing.T) {
		_, err := TestVertices([]geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}}, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
		assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
	})
}
