package internal

import "math"

func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// The point at parameter u along the segment, where 0 is Start and 1 is End.
// Values outside [0, 1] extrapolate along the segment's line.
func (s Segment) PointAt(u float64) Point {
	return Point{
		X: s.Start.X + u*(s.End.X-s.Start.X),
		Y: s.Start.Y + u*(s.End.Y-s.Start.Y),
	}
}

// Copy of the segment with its endpoints in CompareVertices order.
func (s Segment) Sorted() Segment {
	return Segment{MinVertex(s.Start, s.End), MaxVertex(s.Start, s.End)}
}

// The line through the segment. Panics with an error wrapping ErrGeometry for
// a zero length segment.
func (s Segment) Line() Line {
	return LinePassingThroughTwoPoints(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// Classify segments p1-p2 and p3-p4 by solving for the parametric
// intersection. See Intersection for the possible results.
//
// Parameters are accepted with Epsilon of slack on both ends, so segments that
// meet at an endpoint count as intersecting even with some floating point
// noise.
func IntersectionFromTwoLineSegment(p1, p2, p3, p4 Point) Intersection {
	// https://github.com/psalaets/line-intersect/blob/master/lib/check-intersection.js
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y
	x4, y4 := p4.X, p4.Y

	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	numA := (x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)
	numB := (x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)

	if math.Abs(denom) <= Epsilon {
		if math.Abs(numA) <= Epsilon && math.Abs(numB) <= Epsilon {
			return classifyColinear(Segment{p1, p2}, Segment{p3, p4})
		}
		return Parallel{}
	}

	uA := numA / denom
	uB := numB / denom

	if inUnitInterval(uA) && inUnitInterval(uB) {
		return Intersecting{Segment{p1, p2}.PointAt(uA)}
	}

	return NoIntersection{}
}

func (s Segment) Intersect(other Segment) Intersection {
	return IntersectionFromTwoLineSegment(s.Start, s.End, other.Start, other.End)
}

func inUnitInterval(u float64) bool {
	return u >= 0-Epsilon && u <= 1+Epsilon
}

// Segments on a common line either overlap or they don't. Sort each segment's
// endpoints, call the one that starts first the left segment, and check
// whether the right segment starts before the left one ends. When the left
// segment ends at the same x the right one starts (always the case for
// vertical segments), that check is done on y instead.
func classifyColinear(s0, s1 Segment) Intersection {
	left, right := s0.Sorted(), s1.Sorted()
	if CompareVertices(left.Start, right.Start) > 0 {
		left, right = right, left
	}

	var overlaps bool
	if left.End.X == right.Start.X {
		overlaps = right.Start.Y <= left.End.Y
	} else {
		overlaps = right.Start.X <= left.End.X
	}

	if overlaps {
		return Colinear{}
	}
	return NoIntersection{}
}

// Distance from (xp, yp) to the closest point of segment (x1, y1)-(x2, y2).
// Unlike ClosestPointFromLineSegment, this respects the segment's extent. A
// zero length segment is treated as the point (x1, y1).
func DistancePointFromLineSegment(x1, y1, x2, y2, xp, yp float64) float64 {
	// http://stackoverflow.com/a/6853926/1398836
	dx := x2 - x1
	dy := y2 - y1

	dot := (xp-x1)*dx + (yp-y1)*dy
	lenSq := dx*dx + dy*dy
	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	var footX, footY float64
	switch {
	case param < 0:
		footX, footY = x1, y1
	case param > 1:
		footX, footY = x2, y2
	default:
		footX = x1 + param*dx
		footY = y1 + param*dy
	}

	return DistanceFromTwoPoints(xp, yp, footX, footY)
}

// Foot of the perpendicular from (xp, yp) to the line through the segment.
//
// Note that this does NOT clamp to the segment, so the result can lie beyond
// either endpoint. Use DistancePointFromLineSegment if you need the extent
// respected.
func ClosestPointFromLineSegment(x1, y1, x2, y2, xp, yp float64) Point {
	if x1 == x2 {
		return Point{x1, yp}
	}
	if y1 == y2 {
		return Point{xp, y1}
	}

	// Segment line as y = m*x + q, and the perpendicular through the point as
	// y = mi*x + qi
	m := (y2 - y1) / (x2 - x1)
	q := y1 - m*x1

	mi := -1 / m
	qi := yp - mi*xp

	x := (qi - q) / (m - mi)
	y := m*x + q

	return Point{x, y}
}

// How far along the segment (xp, yp) is, as a fraction of the segment's
// length. The fraction is always measured from the endpoint with the smaller
// x, regardless of which one was passed first.
//
// The point is assumed to be on (or near) the segment. Only its distance from
// (x1, y1) is used, and the result is not clamped, so points past the far end
// give values above 1. A zero length segment gives NaN or Inf.
func PointPositionOnLineSegment(x1, y1, x2, y2, xp, yp float64) float64 {
	length := DistanceFromTwoPoints(x1, y1, x2, y2)
	distance := DistanceFromTwoPoints(x1, y1, xp, yp)

	offset := distance / length
	if x1 > x2 {
		offset = MapRange(offset, 0, 1, 1, 0)
	}

	return offset
}
