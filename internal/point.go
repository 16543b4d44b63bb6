package internal

import "math"

// Lexicographic order over points: X ascending, ties broken by Y ascending.
// This is the order segment endpoints are sorted in, and it can be used
// directly as a sort comparator. The result is -1, 0 or 1.
func CompareVertices(v0, v1 Point) int {
	if v0.X == v1.X {
		return compareFloats(v0.Y, v1.Y)
	}
	return compareFloats(v0.X, v1.X)
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// The smaller of two points under CompareVertices. Equal points give v0.
func MinVertex(v0, v1 Point) Point {
	if CompareVertices(v0, v1) > 0 {
		return v1
	}
	return v0
}

// The larger of two points under CompareVertices. Equal points give v1.
func MaxVertex(v0, v1 Point) Point {
	if CompareVertices(v0, v1) > 0 {
		return v0
	}
	return v1
}

func DistanceFromTwoPoints(x0, y0, x1, y1 float64) float64 {
	return math.Sqrt((x1-x0)*(x1-x0) + (y1-y0)*(y1-y0))
}

func (p Point) DistanceTo(q Point) float64 {
	return DistanceFromTwoPoints(p.X, p.Y, q.X, q.Y)
}

// Points are the same if both coordinates are within Epsilon of each other.
func SamePoints(p0, p1 Point) bool {
	return Equal(p0.X, p1.X) && Equal(p0.Y, p1.Y)
}

// Angle in degrees of the direction from (x1, y1) to (x2, y2), measured from
// the x axis. Because it is derived from the arcsine of the vertical
// component, the result is always in [-90, 90], so directions pointing left are
// folded onto the right half plane.
//
// The points must differ. Coincident points give NaN.
func AngleBetweenTwoPointsAndOrigin(x1, y1, x2, y2 float64) float64 {
	length := DistanceFromTwoPoints(x1, y1, x2, y2)
	return -math.Asin((y1-y2)/length) * 180 / math.Pi
}
