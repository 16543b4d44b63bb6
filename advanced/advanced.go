// Typed access to the geometry core.
//
// The top level package mostly speaks in raw coordinates. This package exposes
// the same operations as methods on Point, Line and Segment values, along with
// constructors that panic instead of returning errors. Code that builds many
// lines from points it already knows to be distinct can use those, and recover
// once at its own boundary with HandleGeometryPanicRecover.
package advanced

import "github.com/osuushi/planegeom/internal"

type Point = internal.Point
type Line = internal.Line
type Segment = internal.Segment

type Intersection = internal.Intersection
type Intersecting = internal.Intersecting
type Parallel = internal.Parallel
type Colinear = internal.Colinear
type NoIntersection = internal.NoIntersection

// Debug rendering of segments, lines and points. See Scene.SavePNG.
type Scene = internal.Scene
type SceneIntersection = internal.SceneIntersection

// Panics with an error wrapping this are domain errors, and are the only
// panics HandleGeometryPanicRecover converts.
var ErrGeometry = internal.ErrGeometry

// Line through two points. Panics with an error wrapping ErrGeometry if they
// are identical.
func MustLineThroughPoints(p0, p1 Point) Line {
	return internal.LinePassingThroughTwoPoints(p0.X, p0.Y, p1.X, p1.Y)
}

// Line through a segment, or an error for a zero length segment.
func LineThroughSegment(segment Segment) (line Line, err error) {
	defer func() {
		recoveredErr := HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			line = Line{}
			err = recoveredErr
		}
	}()
	return segment.Line(), nil
}

// Convert a recovered value into an error. Use it in a deferred function
// around calls to the Must* constructors:
//
//	defer func() {
//		if recoveredErr := advanced.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
//			err = recoveredErr
//		}
//	}()
//
// Anything recovered that doesn't wrap ErrGeometry is panicked again, including
// runtime errors.
func HandleGeometryPanicRecover(r interface{}) error {
	return internal.HandleGeometryPanicRecover(r)
}
