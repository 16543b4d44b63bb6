package planegeom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestLinePassingThroughTwoPoints(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		line, err := LinePassingThroughTwoPoints(0, 0, 0, 0)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrGeometry))
		assert.Equal(t, Line{}, line)
	})

	t.Run("vertical", func(t *testing.T) {
		line, err := LinePassingThroughTwoPoints(2, 3, 2, 7)
		require.NoError(t, err)
		assert.Equal(t, VerticalLine(2), line)
	})

	t.Run("general", func(t *testing.T) {
		line, err := LinePassingThroughTwoPoints(0, 0, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, DistancePointFromLine(line.A, line.B, line.C, 3, 3))
	})
}

func TestIntersectionFromTwoLineSegment(t *testing.T) {
	result := IntersectionFromTwoLineSegment(Point{X: 0, Y: 0}, Point{X: 2, Y: 2}, Point{X: 0, Y: 2}, Point{X: 2, Y: 0})
	assert.Equal(t, Intersecting{Point: Point{X: 1, Y: 1}}, result)

	assert.Equal(t, Parallel{}, IntersectionFromTwoLineSegment(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 1}))
	assert.Equal(t, Colinear{}, IntersectionFromTwoLineSegment(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 1, Y: 0}, Point{X: 3, Y: 0}))
	assert.Equal(t, NoIntersection{}, IntersectionFromTwoLineSegment(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}, Point{X: 3, Y: 0}))
}

func TestFacade(t *testing.T) {
	assert.Equal(t, 0.0, DistanceFromTwoPoints(4, 4, 4, 4))
	assert.True(t, SamePoints(Point{X: 1, Y: 1}, Point{X: 1.0000001, Y: 1}))
	assert.Equal(t, Point{X: 0, Y: 3}, MinVertex(Point{X: 0, Y: 3}, Point{X: 1, Y: 0}))
	assert.Equal(t, Point{X: 1, Y: 0}, MaxVertex(Point{X: 0, Y: 3}, Point{X: 1, Y: 0}))
	assert.Equal(t, -1, CompareVertices(Point{X: 0, Y: 3}, Point{X: 1, Y: 0}))
	assert.Equal(t, 5.0, DistancePointFromLine(0, 1, -5, 0, 0))
	assert.Equal(t, DistanceFromTwoPoints(-5, 3, 0, 0), DistancePointFromLineSegment(0, 0, 10, 0, -5, 3))
	assert.Equal(t, Point{X: 3, Y: 0}, ClosestPointFromLine(0, 1, 0, 3, 4))
	assert.Equal(t, Point{X: -4, Y: 3}, ClosestPointFromLineSegment(0, 3, 5, 3, -4, 1))
	assert.Equal(t, 0.25, PointPositionOnLineSegment(10, 0, 0, 0, 2.5, 0))
	assert.Equal(t, 0.25, MapRange(0.75, 0, 1, 1, 0))
	assert.InDelta(t, 45, AngleBetweenTwoPointsAndOrigin(0, 0, 1, 1), Epsilon)

	p, ok := IntersectionFromTwoLines(1, 0, -1, 0, 1, -2)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 2}, p)
	assert.Equal(t, Line{A: 0, B: 1, C: -3}, HorizontalLine(3))
}
