package seating

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"seat-ca/internal/core"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Floor never holds anyone and never changes.
	Floor Cell = iota
	// Empty is a seat nobody sits in.
	Empty
	// Occupied is a seat somebody sits in.
	Occupied
)

// Errors returned while parsing a layout.
var (
	ErrEmptyGrid   = errors.New("seating: empty grid")
	ErrJaggedGrid  = errors.New("seating: rows differ in length")
	ErrInvalidCell = errors.New("seating: invalid cell")
)

// ParseCell converts the textual form of a cell.
func ParseCell(b byte) (Cell, error) {
	switch b {
	case '.':
		return Floor, nil
	case 'L':
		return Empty, nil
	case '#':
		return Occupied, nil
	}
	return Floor, fmt.Errorf("%w: %q", ErrInvalidCell, b)
}

// Byte returns the character used to render c.
func (c Cell) Byte() byte {
	switch c {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	default:
		return '.'
	}
}

func (c Cell) String() string { return string(c.Byte()) }

// Grid is a rectangular seating layout.
type Grid struct {
	*core.ByteGrid
}

// NewGrid returns a w*h grid made entirely of floor.
func NewGrid(w, h int) *Grid {
	return &Grid{ByteGrid: core.NewByteGrid(w, h)}
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell { return Cell(g.ByteGrid.At(x, y)) }

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.ByteGrid.Set(x, y, uint8(c)) }

// Occupied counts occupied seats.
func (g *Grid) Occupied() int { return g.Count(uint8(Occupied)) }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid { return &Grid{ByteGrid: g.ByteGrid.Clone()} }

// Equal reports whether g and o hold the same layout. Two grids are equal
// exactly when their String forms are.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.ByteGrid.Equal(o.ByteGrid)
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteByte(g.At(x, y).Byte())
		}
	}
	return sb.String()
}

// maxLineLen is the longest layout line Parse accepts.
const maxLineLen = 1 << 24

// Parse reads a layout. Each line is trimmed and split on whitespace and the
// fields are joined to form one row; blank lines are skipped.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for line := 1; sc.Scan(); line++ {
		text := strings.Join(strings.Fields(sc.Text()), "")
		if text == "" {
			continue
		}
		row := make([]Cell, len(text))
		for i := 0; i < len(text); i++ {
			c, err := ParseCell(text[i])
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			row[i] = c
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: got %d cells, expected %d", line, ErrJaggedGrid, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seating: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, c)
		}
	}
	return g, nil
}

// ParseString is Parse over an in-memory layout.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load reads a layout from the file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Random builds a w*h layout where each position is a seat with probability
// density and floor otherwise. All seats start empty.
func Random(w, h int, density float64, rng *core.RNG) *Grid {
	g := NewGrid(w, h)
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(density) {
			cells[i] = uint8(Empty)
		}
	}
	return g
}
