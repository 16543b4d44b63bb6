package internal

import "fmt"

// Points are plain values. Nothing in this package holds on to a point after a
// call returns, so there is no need for the pointer identity the rest of a
// geometry pipeline might want.
type Point struct {
	X float64
	Y float64
}

// A line in implicit form, i.e. the set of points where A*x + B*y + C = 0.
//
// A and B must not both be zero. The constructors in this package never
// produce such a line, but a struct literal can.
type Line struct {
	A, B, C float64
}

// A segment is just an ordered pair of points. Start and End may coincide, and
// the functions that care about that say so.
type Segment struct {
	Start Point
	End   Point
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("%gx + %gy + %g = 0", l.A, l.B, l.C)
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
