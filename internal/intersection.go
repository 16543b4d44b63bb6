package internal

// Two segments can relate in four categorically different ways, and callers
// generally need to handle each one differently. Only one of them carries a
// point, so rather than a kind enum with an optional point, each outcome is its
// own type and callers use a type switch.
type Intersection interface {
	String() string

	// Dummy method so that only the types below are Intersections.
	intersectionTypeHint()
}

// Intersection types enumerated here with type hint
func (Intersecting) intersectionTypeHint()   {}
func (Parallel) intersectionTypeHint()       {}
func (Colinear) intersectionTypeHint()       {}
func (NoIntersection) intersectionTypeHint() {}

// The segments cross (or touch) at Point.
type Intersecting struct {
	Point Point
}

// The segments lie on distinct parallel lines.
type Parallel struct{}

// The segments lie on the same line and overlap, or at least touch.
type Colinear struct{}

// The segments don't meet. Either they are colinear but disjoint, or their
// lines cross outside of at least one segment.
type NoIntersection struct{}

func (Intersecting) String() string   { return "intersecting" }
func (Parallel) String() string       { return "parallel" }
func (Colinear) String() string       { return "colinear" }
func (NoIntersection) String() string { return "none" }
