package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectionString(t *testing.T) {
	assert.Equal(t, "intersecting", Intersecting{Point{1, 1}}.String())
	assert.Equal(t, "parallel", Parallel{}.String())
	assert.Equal(t, "colinear", Colinear{}.String())
	assert.Equal(t, "none", NoIntersection{}.String())
}

func TestIntersectionTypeSwitch(t *testing.T) {
	// Callers are expected to switch over the result. Make sure every outcome
	// reaches its own arm.
	describe := func(result Intersection) string {
		switch result := result.(type) {
		case Intersecting:
			return "hit at " + result.Point.String()
		case Parallel:
			return "parallel"
		case Colinear:
			return "colinear"
		case NoIntersection:
			return "miss"
		}
		return "unreachable"
	}

	origin := Point{0, 0}
	assert.Equal(t, "hit at (1, 1)", describe(IntersectionFromTwoLineSegment(origin, Point{2, 2}, Point{0, 2}, Point{2, 0})))
	assert.Equal(t, "parallel", describe(IntersectionFromTwoLineSegment(origin, Point{1, 0}, Point{0, 1}, Point{1, 1})))
	assert.Equal(t, "colinear", describe(IntersectionFromTwoLineSegment(origin, Point{2, 0}, Point{1, 0}, Point{3, 0})))
	assert.Equal(t, "miss", describe(IntersectionFromTwoLineSegment(origin, Point{1, 0}, Point{2, 0}, Point{3, 0})))
}
