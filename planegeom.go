// Small 2D geometry toolkit for points, lines and line segments.
//
// Lines are kept in implicit form (A*x + B*y + C = 0). Segments are pairs of
// points. Most functions take raw coordinates, which is what the call sites
// doing hit testing against drawn geometry usually have on hand.
//
// Everything here is a pure function of its inputs and is safe to call from
// any number of goroutines.
package planegeom

import "github.com/osuushi/planegeom/internal"

type Point = internal.Point
type Line = internal.Line
type Segment = internal.Segment

// Result of IntersectionFromTwoLineSegment. Switch on the concrete type:
// Intersecting, Parallel, Colinear or NoIntersection.
type Intersection = internal.Intersection
type Intersecting = internal.Intersecting
type Parallel = internal.Parallel
type Colinear = internal.Colinear
type NoIntersection = internal.NoIntersection

// Tolerance used by every approximate comparison in the package.
const Epsilon = internal.Epsilon

// Wrapped by errors for inputs that don't determine a result. Test for it with
// errors.Is.
var ErrGeometry = internal.ErrGeometry

// Order points by X, then Y. Returns -1, 0 or 1.
func CompareVertices(v0, v1 Point) int { return internal.CompareVertices(v0, v1) }
func MinVertex(v0, v1 Point) Point     { return internal.MinVertex(v0, v1) }
func MaxVertex(v0, v1 Point) Point     { return internal.MaxVertex(v0, v1) }

func DistanceFromTwoPoints(x0, y0, x1, y1 float64) float64 {
	return internal.DistanceFromTwoPoints(x0, y0, x1, y1)
}

// Check if the points are equal within Epsilon on both axes.
func SamePoints(p0, p1 Point) bool { return internal.SamePoints(p0, p1) }

// Angle in degrees, in [-90, 90], of the direction from (x1, y1) to (x2, y2).
// Coincident points give NaN.
func AngleBetweenTwoPointsAndOrigin(x1, y1, x2, y2 float64) float64 {
	return internal.AngleBetweenTwoPointsAndOrigin(x1, y1, x2, y2)
}

// Remap value from [low1, high1] to [low2, high2]. NaN or infinite if
// low1 == high1.
func MapRange(value, low1, high1, low2, high2 float64) float64 {
	return internal.MapRange(value, low1, high1, low2, high2)
}

func HorizontalLine(y float64) Line { return internal.HorizontalLine(y) }
func VerticalLine(x float64) Line   { return internal.VerticalLine(x) }

// Build the line through two points. The error wraps ErrGeometry if the points
// are identical.
func LinePassingThroughTwoPoints(x1, y1, x2, y2 float64) (line Line, err error) {
	defer func() {
		recoveredErr := internal.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			line = Line{}
			err = recoveredErr
		}
	}()
	return internal.LinePassingThroughTwoPoints(x1, y1, x2, y2), nil
}

// Distance from (x, y) to the line a*x + b*y + c = 0.
func DistancePointFromLine(a, b, c, x, y float64) float64 {
	return internal.DistancePointFromLine(a, b, c, x, y)
}

// Orthogonal projection of (x, y) onto the line a*x + b*y + c = 0.
func ClosestPointFromLine(a, b, c, x, y float64) Point {
	return internal.ClosestPointFromLine(a, b, c, x, y)
}

// Intersect lines {a, b, c} and {j, k, l}. Returns false for parallel (or
// identical) lines.
func IntersectionFromTwoLines(a, b, c, j, k, l float64) (Point, bool) {
	return internal.IntersectionFromTwoLines(a, b, c, j, k, l)
}

// Classify segments p1-p2 and p3-p4.
func IntersectionFromTwoLineSegment(p1, p2, p3, p4 Point) Intersection {
	return internal.IntersectionFromTwoLineSegment(p1, p2, p3, p4)
}

// Distance from (xp, yp) to the segment, respecting the segment's extent.
func DistancePointFromLineSegment(x1, y1, x2, y2, xp, yp float64) float64 {
	return internal.DistancePointFromLineSegment(x1, y1, x2, y2, xp, yp)
}

// Foot of the perpendicular from (xp, yp) to the segment's line. This is NOT
// clamped to the segment.
func ClosestPointFromLineSegment(x1, y1, x2, y2, xp, yp float64) Point {
	return internal.ClosestPointFromLineSegment(x1, y1, x2, y2, xp, yp)
}

// Fraction of the way along the segment, measured from its leftmost endpoint.
// Not clamped.
func PointPositionOnLineSegment(x1, y1, x2, y2, xp, yp float64) float64 {
	return internal.PointPositionOnLineSegment(x1, y1, x2, y2, xp, yp)
}
