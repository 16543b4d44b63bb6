package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into segment pairs. This is not a full
// (or even correct) svg parser. It finds the first two <line> elements and
// reads the expected classification from the root element's data-expect
// attribute, plus data-x and data-y for the expected intersection point. If
// anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type segmentFixture struct {
	A, B     Segment
	Expect   string
	Expected Point // only meaningful when Expect is "intersecting"
}

func fixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}

func LoadFixture(name string) segmentFixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lines := rootEl.FindAll("line")
	if len(lines) != 2 {
		log.Fatalf("Expected two lines in fixture %q, found %d", name, len(lines))
	}

	result := segmentFixture{
		A:      parseSegment(name, lines[0].Attributes),
		B:      parseSegment(name, lines[1].Attributes),
		Expect: rootEl.Attributes["data-expect"],
	}
	if result.Expect == "" {
		log.Fatalf("Fixture %q has no data-expect attribute", name)
	}
	if result.Expect == "intersecting" {
		result.Expected = Point{
			X: parseAttribute(name, rootEl.Attributes, "data-x"),
			Y: parseAttribute(name, rootEl.Attributes, "data-y"),
		}
	}
	return result
}

func parseSegment(name string, attributes map[string]string) Segment {
	return Segment{
		Start: Point{parseAttribute(name, attributes, "x1"), parseAttribute(name, attributes, "y1")},
		End:   Point{parseAttribute(name, attributes, "x2"), parseAttribute(name, attributes, "y2")},
	}
}

func parseAttribute(name string, attributes map[string]string, key string) float64 {
	raw, ok := attributes[key]
	if !ok {
		log.Fatalf("Missing attribute %q in fixture %q", key, name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", key, raw, name, err)
	}
	return value
}
