package internal

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planegeom/dbg"
	"github.com/pkg/errors"
)

// Padding around the shape so that lines running off to infinity are obvious
const dbgDrawPadding = 100

// A bag of geometry to render for debugging. Segments are pointers so that
// they get stable readable names from dbg.Name.
type Scene struct {
	Segments []*Segment
	Lines    []Line
	Points   []Point
}

func (s *Scene) AddSegment(start, end Point) *Segment {
	segment := &Segment{start, end}
	s.Segments = append(s.Segments, segment)
	return segment
}

// Pairwise classification of every segment in the scene, keyed by the pair.
type SceneIntersection struct {
	A, B   *Segment
	Result Intersection
}

func (s *Scene) Intersections() []SceneIntersection {
	var result []SceneIntersection
	for i, a := range s.Segments {
		for _, b := range s.Segments[i+1:] {
			result = append(result, SceneIntersection{a, b, a.Intersect(*b)})
		}
	}
	return result
}

// Bounding box of everything with a finite extent. Lines are infinite, so they
// don't contribute.
func (s *Scene) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, segment := range s.Segments {
		extend(segment.Start)
		extend(segment.End)
	}
	for _, p := range s.Points {
		extend(p)
	}
	return minX, minY, maxX, maxY, !math.IsInf(minX, 1)
}

// Render the scene to a PNG at path. Scale is pixels per unit.
func (s *Scene) SavePNG(path string, scale float64) error {
	c, err := s.render(scale)
	if err != nil {
		return err
	}
	return c.SavePNG(path)
}

// Helper to draw and print a scene in the terminal (iTerm only) for debugging.
func (s *Scene) dbgDraw(scale float64) {
	if err := s.SavePNG("/tmp/planegeom.png", scale); err != nil {
		panic(err)
	}
	imgcat.CatFile("/tmp/planegeom.png", os.Stdout)
}

// Draw the scene and print it to the terminal when the environment asks for
// it. Meant to be sprinkled into tests while debugging.
func (s *Scene) DbgDrawIfEnabled(scale float64) {
	if os.Getenv("PLANEGEOM_DEBUG_DRAW") != "" {
		s.dbgDraw(scale)
	}
}

// Stroke width in device pixels. gg strokes after the transform is applied,
// so this doesn't change with the scale.
const dbgDrawLineWidth = 3

func (s *Scene) render(scale float64) (*gg.Context, error) {
	minX, minY, maxX, maxY, ok := s.bounds()
	if !ok {
		return nil, errors.New("nothing to draw: scene has no segments or points")
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Reverse the above operations to get the inverse matrix. The gg library has
	// no matrix inverse, or even a way to get to the context matrix, so it comes
	// to this.
	inverseMatrix := gg.Identity().
		Translate(minX, minY).
		Scale(1/scale, 1/scale).
		Translate(-dbgDrawPadding, -dbgDrawPadding).
		Scale(1, -1).
		Translate(0, -float64(height))
	canvasBounds := getCanvasBounds(c, inverseMatrix)

	c.SetLineWidth(dbgDrawLineWidth)
	for _, line := range s.Lines {
		drawLine(c, line, canvasBounds)
	}
	for _, segment := range s.Segments {
		drawSegment(c, segment)
	}
	for _, intersection := range s.Intersections() {
		if hit, ok := intersection.Result.(Intersecting); ok {
			drawPoint(c, hit.Point, scale, 1, 0.3, 0.3)
		}
	}
	for _, p := range s.Points {
		drawPoint(c, p, scale, 1, 1, 0)
	}
	return c, nil
}

// Lines run off the edge of the canvas, so clip them against the canvas bounds
// in user space.
func drawLine(c *gg.Context, line Line, bounds image.Rectangle) {
	var start, end Point
	if line.B == 0 {
		x := -line.C / line.A
		start = Point{x, float64(bounds.Min.Y)}
		end = Point{x, float64(bounds.Max.Y)}
	} else {
		solveForY := func(x float64) float64 {
			return -(line.A*x + line.C) / line.B
		}
		start = Point{float64(bounds.Min.X), solveForY(float64(bounds.Min.X))}
		end = Point{float64(bounds.Max.X), solveForY(float64(bounds.Max.X))}
	}
	c.SetRGBA(0.3, 0.2, 1, 0.7)
	c.DrawLine(start.X, start.Y, end.X, end.Y)
	c.Stroke()
}

func drawSegment(c *gg.Context, segment *Segment) {
	c.SetRGB(0, 1, 0)
	c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
	c.Stroke()

	// Write the name of the segment at its midpoint. Text has to be drawn in
	// native coordinates, or it comes out upside down.
	mid := segment.PointAt(0.5)
	x, y := c.TransformPoint(mid.X, mid.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(dbg.Name(segment), x, y, 0.5, -0.5)
	c.Pop()
}

func drawPoint(c *gg.Context, p Point, scale, r, g, b float64) {
	c.SetRGB(r, g, b)
	c.DrawCircle(p.X, p.Y, 4/scale)
	c.Fill()
}

// Canvas bounds (with a little overdraw) in user space, given the inverse of
// the context's transform.
func getCanvasBounds(c *gg.Context, matrix gg.Matrix) image.Rectangle {
	bounds := image.Rect(-10, -10, c.Width()+20, c.Height()+20)
	minX, minY := matrix.TransformPoint(float64(bounds.Min.X), float64(bounds.Min.Y))
	maxX, maxY := matrix.TransformPoint(float64(bounds.Max.X), float64(bounds.Max.Y))
	// The y flip swaps which corner is the minimum
	return image.Rect(int(math.Floor(minX)), int(math.Floor(maxY)), int(math.Ceil(maxX)), int(math.Ceil(minY)))
}
