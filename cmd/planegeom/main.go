package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planegeom"
	"github.com/osuushi/planegeom/advanced"
	"github.com/osuushi/planegeom/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line access to the geometry functions, mostly for poking at edge
// cases by hand.
//
// Coordinates are positional arguments. Put "--" before the first argument if
// any of them are negative, or they'll be read as flags.
//
// The intersect command reads segments from stdin instead, as newline
// separated points in the form "x y", with each segment separated by an extra
// newline. Every pair of segments is classified.
func main() {
	log := logrus.New()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("planegeom failed")
	}
}

type floatArgs []*float64

func (a floatArgs) values() []float64 {
	values := make([]float64, len(a))
	for i, arg := range a {
		values[i] = *arg
	}
	return values
}

func addFloatArgs(cmd *kingpin.CmdClause, names ...string) floatArgs {
	args := make(floatArgs, len(names))
	for i, name := range names {
		args[i] = cmd.Arg(name, name+" coordinate").Required().Float64()
	}
	return args
}

func run(argv []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	app := kingpin.New("planegeom", "2D point, line and segment geometry.")
	verbose := app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	compareCmd := app.Command("compare", "Compare two points lexicographically (x, then y).")
	compareArgs := addFloatArgs(compareCmd, "x0", "y0", "x1", "y1")

	distanceCmd := app.Command("distance", "Euclidean distance between two points.")
	distanceArgs := addFloatArgs(distanceCmd, "x0", "y0", "x1", "y1")

	sameCmd := app.Command("same", "Check if two points are equal within tolerance.")
	sameArgs := addFloatArgs(sameCmd, "x0", "y0", "x1", "y1")

	angleCmd := app.Command("angle", "Angle in degrees of the direction between two points.")
	angleArgs := addFloatArgs(angleCmd, "x1", "y1", "x2", "y2")

	mapRangeCmd := app.Command("map-range", "Remap a value from one interval to another.")
	mapRangeArgs := addFloatArgs(mapRangeCmd, "value", "low1", "high1", "low2", "high2")

	lineCmd := app.Command("line", "Implicit line (a b c) through two points.")
	lineArgs := addFloatArgs(lineCmd, "x1", "y1", "x2", "y2")

	lineDistanceCmd := app.Command("line-distance", "Distance from a point to the line a*x + b*y + c = 0.")
	lineDistanceArgs := addFloatArgs(lineDistanceCmd, "a", "b", "c", "x", "y")

	projectCmd := app.Command("project", "Project a point onto the line a*x + b*y + c = 0.")
	projectArgs := addFloatArgs(projectCmd, "a", "b", "c", "x", "y")

	lineIntersectCmd := app.Command("line-intersect", "Intersect the lines {a b c} and {j k l}.")
	lineIntersectArgs := addFloatArgs(lineIntersectCmd, "a", "b", "c", "j", "k", "l")

	intersectCmd := app.Command("intersect", "Classify every pair of segments read from stdin.")
	drawPath := intersectCmd.Flag("draw", "Render the segments to this PNG file.").String()
	drawScale := intersectCmd.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	showImage := intersectCmd.Flag("imgcat", "Also print the rendering to the terminal (iTerm only).").Bool()

	segmentDistanceCmd := app.Command("segment-distance", "Distance from a point to a segment.")
	segmentDistanceArgs := addFloatArgs(segmentDistanceCmd, "x1", "y1", "x2", "y2", "xp", "yp")

	closestCmd := app.Command("closest", "Foot of the perpendicular from a point to a segment's line.")
	closestArgs := addFloatArgs(closestCmd, "x1", "y1", "x2", "y2", "xp", "yp")

	positionCmd := app.Command("position", "Fraction of the way along a segment, from its leftmost end.")
	positionArgs := addFloatArgs(positionCmd, "x1", "y1", "x2", "y2", "xp", "yp")

	command, err := app.Parse(argv)
	if err != nil {
		return err
	}

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	au := aurora.NewAurora(!*noColor)
	printf := func(format string, args ...interface{}) {
		fmt.Fprintf(stdout, format, args...)
	}

	switch command {
	case compareCmd.FullCommand():
		v := compareArgs.values()
		p0, p1 := planegeom.Point{X: v[0], Y: v[1]}, planegeom.Point{X: v[2], Y: v[3]}
		printf("%d\n", planegeom.CompareVertices(p0, p1))
		printf("min %s\nmax %s\n", planegeom.MinVertex(p0, p1), planegeom.MaxVertex(p0, p1))

	case distanceCmd.FullCommand():
		v := distanceArgs.values()
		printf("%g\n", planegeom.DistanceFromTwoPoints(v[0], v[1], v[2], v[3]))

	case sameCmd.FullCommand():
		v := sameArgs.values()
		printf("%t\n", planegeom.SamePoints(planegeom.Point{X: v[0], Y: v[1]}, planegeom.Point{X: v[2], Y: v[3]}))

	case angleCmd.FullCommand():
		v := angleArgs.values()
		printf("%g\n", planegeom.AngleBetweenTwoPointsAndOrigin(v[0], v[1], v[2], v[3]))

	case mapRangeCmd.FullCommand():
		v := mapRangeArgs.values()
		printf("%g\n", planegeom.MapRange(v[0], v[1], v[2], v[3], v[4]))

	case lineCmd.FullCommand():
		v := lineArgs.values()
		line, err := planegeom.LinePassingThroughTwoPoints(v[0], v[1], v[2], v[3])
		if err != nil {
			return err
		}
		log.WithField("line", line.String()).Debug("built line")
		printf("%g %g %g\n", line.A, line.B, line.C)

	case lineDistanceCmd.FullCommand():
		v := lineDistanceArgs.values()
		printf("%g\n", planegeom.DistancePointFromLine(v[0], v[1], v[2], v[3], v[4]))

	case projectCmd.FullCommand():
		v := projectArgs.values()
		printf("%s\n", planegeom.ClosestPointFromLine(v[0], v[1], v[2], v[3], v[4]))

	case lineIntersectCmd.FullCommand():
		v := lineIntersectArgs.values()
		p, ok := planegeom.IntersectionFromTwoLines(v[0], v[1], v[2], v[3], v[4], v[5])
		if !ok {
			printf("%s\n", au.Yellow("parallel"))
			break
		}
		printf("%s\n", p)

	case intersectCmd.FullCommand():
		scene, err := readScene(stdin, log)
		if err != nil {
			return err
		}
		for _, pair := range scene.Intersections() {
			log.WithFields(logrus.Fields{
				"a":      dbg.Name(pair.A),
				"b":      dbg.Name(pair.B),
				"result": pair.Result.String(),
			}).Debug("classified segments")
			printf("%d %d: %s\n", indexOf(scene, pair.A), indexOf(scene, pair.B), describe(au, pair.Result))
		}
		if *drawPath != "" {
			if err := scene.SavePNG(*drawPath, *drawScale); err != nil {
				return errors.Wrap(err, "rendering scene")
			}
			log.WithField("path", *drawPath).Info("rendered scene")
			if *showImage {
				imgcat.CatFile(*drawPath, os.Stdout)
			}
		}

	case segmentDistanceCmd.FullCommand():
		v := segmentDistanceArgs.values()
		printf("%g\n", planegeom.DistancePointFromLineSegment(v[0], v[1], v[2], v[3], v[4], v[5]))

	case closestCmd.FullCommand():
		v := closestArgs.values()
		printf("%s\n", planegeom.ClosestPointFromLineSegment(v[0], v[1], v[2], v[3], v[4], v[5]))

	case positionCmd.FullCommand():
		v := positionArgs.values()
		printf("%g\n", planegeom.PointPositionOnLineSegment(v[0], v[1], v[2], v[3], v[4], v[5]))
	}
	return nil
}

func describe(au aurora.Aurora, result planegeom.Intersection) string {
	switch result := result.(type) {
	case planegeom.Intersecting:
		return fmt.Sprintf("%s %s", au.Green(result.String()), result.Point)
	case planegeom.Parallel:
		return au.Yellow(result.String()).String()
	case planegeom.Colinear:
		return au.Cyan(result.String()).String()
	default:
		return au.Red(result.String()).String()
	}
}

func indexOf(scene *advanced.Scene, segment *advanced.Segment) int {
	for i, s := range scene.Segments {
		if s == segment {
			return i
		}
	}
	return -1
}

// Read segments from the input, one "x y" point per line, with blank lines
// between segments.
func readScene(in io.Reader, log *logrus.Logger) (*advanced.Scene, error) {
	scene := &advanced.Scene{}
	scanner := bufio.NewScanner(in)
	var points []planegeom.Point
	lineNumber := 0

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		if len(points) != 2 {
			return errors.Errorf("segment ending on line %d has %d points, expected 2", lineNumber, len(points))
		}
		segment := scene.AddSegment(points[0], points[1])
		log.WithFields(logrus.Fields{
			"segment": dbg.Name(segment),
			"start":   segment.Start.String(),
			"end":     segment.End.String(),
		}).Debug("read segment")
		points = nil
		return nil
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the segment
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading segments")
	}

	// Handle trailing segment if any
	if err := flush(); err != nil {
		return nil, err
	}
	if len(scene.Segments) < 2 {
		return nil, errors.Errorf("need at least two segments, got %d", len(scene.Segments))
	}
	return scene, nil
}

func parsePoint(line string) (planegeom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return planegeom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return planegeom.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return planegeom.Point{}, errors.Wrap(err, "parsing y")
	}
	return planegeom.Point{X: x, Y: y}, nil
}
