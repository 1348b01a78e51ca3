package solver

import (
	"sort"
	"strconv"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
)

// Orientations returns every geometrically distinct rotation/reflection of a
// piece's base cells. Each pose is normalized and the poses of a symmetric
// piece collapse together, so the result has between 1 and 8 entries. The
// order is deterministic for a given base shape: rotations first to last,
// the mirror of each rotation right after it.
func Orientations(base []domain.Cell) []domain.Orientation {
	seen := make(map[string]struct{}, 8)
	out := make([]domain.Orientation, 0, 8)
	add := func(cells []domain.Cell) {
		o := Normalize(cells)
		k := orientationKey(o)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, o)
		}
	}
	cur := append([]domain.Cell(nil), base...)
	for i := 0; i < 4; i++ {
		add(cur)
		add(reflect(cur))
		cur = rotate(cur)
	}
	return out
}

// Normalize shifts cells so the minimum row and minimum column are zero and
// sorts them row-major. Normalizing an already normalized orientation is a
// no-op.
func Normalize(cells []domain.Cell) domain.Orientation {
	minR, minC := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make(domain.Orientation, len(cells))
	for i, c := range cells {
		out[i] = domain.Cell{Row: c.Row - minR, Col: c.Col - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// rotate turns a pose 90 degrees: (r,c) -> (c,-r).
func rotate(cells []domain.Cell) []domain.Cell {
	out := make([]domain.Cell, len(cells))
	for i, c := range cells {
		out[i] = domain.Cell{Row: c.Col, Col: -c.Row}
	}
	return out
}

// reflect mirrors a pose across the horizontal axis: (r,c) -> (-r,c).
func reflect(cells []domain.Cell) []domain.Cell {
	out := make([]domain.Cell, len(cells))
	for i, c := range cells {
		out[i] = domain.Cell{Row: -c.Row, Col: c.Col}
	}
	return out
}

// orientationKey builds a value-equality key for a normalized pose.
func orientationKey(o domain.Orientation) string {
	b := make([]byte, 0, 4*len(o))
	for _, c := range o {
		b = strconv.AppendInt(b, int64(c.Row), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(c.Col), 10)
		b = append(b, ';')
	}
	return string(b)
}

// SameOrientation reports whether two normalized poses are identical.
func SameOrientation(a, b domain.Orientation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
