// Package patterns is a read-only catalog of classic Life presets.
package patterns

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Lookup for names missing from the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// Offset is a cell position relative to a placement origin.
type Offset struct {
	DX, DY int
}

// Pattern is a named set of live cell offsets.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	minX, maxX := p.Cells[0].DX, p.Cells[0].DX
	minY, maxY := p.Cells[0].DY, p.Cells[0].DY
	for _, c := range p.Cells[1:] {
		minX = min(minX, c.DX)
		maxX = max(maxX, c.DX)
		minY = min(minY, c.DY)
		maxY = max(maxY, c.DY)
	}
	return maxX - minX + 1, maxY - minY + 1
}

func offsets(pairs ...[2]int) []Offset {
	out := make([]Offset, len(pairs))
	for i, p := range pairs {
		out[i] = Offset{DX: p[0], DY: p[1]}
	}
	return out
}

var catalog = []Pattern{
	{Name: "block", Cells: offsets([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})},
	{Name: "beehive", Cells: offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 2})},
	{Name: "loaf", Cells: offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{3, 1}, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 3})},
	{Name: "boat", Cells: offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2})},
	{Name: "tub", Cells: offsets([2]int{1, 0}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2})},
	{Name: "blinker", Cells: offsets([2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})},
	{Name: "toad", Cells: offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})},
	{Name: "beacon", Cells: offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})},
	{Name: "pulsar", Cells: pulsar()},
	{Name: "glider", Cells: offsets([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})},
	{Name: "lwss", Cells: offsets(
		[2]int{1, 0}, [2]int{4, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{4, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
	)},
	{Name: "mwss", Cells: offsets(
		[2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}, [2]int{5, 0},
		[2]int{0, 1}, [2]int{0, 2}, [2]int{5, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3},
	)},
	{Name: "hwss", Cells: offsets(
		[2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}, [2]int{5, 0}, [2]int{6, 0},
		[2]int{0, 1}, [2]int{0, 2}, [2]int{6, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3}, [2]int{5, 3},
	)},
}

// pulsar mirrors one quadrant of the period-3 oscillator across both axes.
func pulsar() []Offset {
	quadrant := [][2]int{
		{2, 0}, {3, 0}, {4, 0},
		{0, 2}, {0, 3}, {0, 4},
		{5, 2}, {5, 3}, {5, 4},
		{2, 5}, {3, 5}, {4, 5},
	}
	out := make([]Offset, 0, 4*len(quadrant))
	for _, q := range quadrant {
		x, y := q[0], q[1]
		out = append(out,
			Offset{DX: x, DY: y},
			Offset{DX: 12 - x, DY: y},
			Offset{DX: x, DY: 12 - y},
			Offset{DX: 12 - x, DY: 12 - y},
		)
	}
	return out
}

// Names returns the catalog names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}

// Lookup returns a copy of the named pattern.
func Lookup(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range catalog {
		if p.Name == key {
			return Pattern{Name: p.Name, Cells: append([]Offset(nil), p.Cells...)}, nil
		}
	}
	return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q", name)
}

// ParseList resolves a comma-separated list of pattern names.
func ParseList(list string) ([]Pattern, error) {
	var out []Pattern
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
