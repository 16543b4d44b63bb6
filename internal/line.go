package internal

import "math"

func HorizontalLine(y float64) Line {
	return Line{A: 0, B: 1, C: -y}
}

func VerticalLine(x float64) Line {
	return Line{A: 1, B: 0, C: -x}
}

// Build the line through (x1, y1) and (x2, y2). Panics with an error wrapping
// ErrGeometry if the points are identical, since they don't determine a line.
//
// Axis aligned inputs are detected with exact comparisons and produce the
// normalized HorizontalLine/VerticalLine coefficients.
func LinePassingThroughTwoPoints(x1, y1, x2, y2 float64) Line {
	// (x2 - x1)(y - y1) = (y2 - y1)(x - x1)
	// (y1 - y2)x + (x2 - x1)y + (y2x1 - x2y1) = 0
	if x1 == x2 && y1 == y2 {
		fatalf("no line through identical points (%g, %g)", x1, y1)
	}
	if x1 == x2 {
		return VerticalLine(x1)
	}
	if y1 == y2 {
		return HorizontalLine(y1)
	}

	return Line{
		A: y1 - y2,
		B: x2 - x1,
		C: y2*x1 - x2*y1,
	}
}

// The value of A*x + B*y + C. Zero on the line, and the sign tells you which
// side of the line the point is on.
func (l Line) Evaluate(x, y float64) float64 {
	return l.A*x + l.B*y + l.C
}

// Check if the point lies on the line, within Epsilon of perpendicular
// distance.
func (l Line) Contains(p Point) bool {
	return DistancePointFromLine(l.A, l.B, l.C, p.X, p.Y) <= Epsilon
}

// https://en.wikipedia.org/wiki/Distance_from_a_point_to_a_line
func DistancePointFromLine(a, b, c, x, y float64) float64 {
	return math.Abs(a*x+b*y+c) / math.Sqrt(a*a+b*b)
}

// Orthogonal projection of (x, y) onto the line a*x + b*y + c = 0.
func ClosestPointFromLine(a, b, c, x, y float64) Point {
	denom := a*a + b*b
	return Point{
		X: (b*(b*x-a*y) - a*c) / denom,
		Y: (a*(-b*x+a*y) - b*c) / denom,
	}
}

// Intersect the lines {a, b, c} and {j, k, l}. The second return value is
// false when the lines are parallel, which includes the case where they are
// the same line. Telling those two apart is left to the segment level.
func IntersectionFromTwoLines(a, b, c, j, k, l float64) (Point, bool) {
	det := b*j - a*k
	if det == 0 {
		return Point{}, false
	}

	return Point{
		X: (c*k - b*l) / det,
		Y: (a*l - c*j) / det,
	}, true
}

func (l Line) Intersect(other Line) (Point, bool) {
	return IntersectionFromTwoLines(l.A, l.B, l.C, other.A, other.B, other.C)
}
