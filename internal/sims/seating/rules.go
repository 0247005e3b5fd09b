package seating

// Neighbors counts occupied seats among the up to eight cells touching
// (x, y). Positions outside the grid count as unoccupied.
func (g *Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.At(nx, ny) == Occupied {
				n++
			}
		}
	}
	return n
}

// Next returns the state (x, y) takes in the following generation.
func (g *Grid) Next(x, y int) Cell {
	switch c := g.At(x, y); c {
	case Empty:
		if g.Neighbors(x, y) == 0 {
			return Occupied
		}
		return Empty
	case Occupied:
		if g.Neighbors(x, y) >= 4 {
			return Empty
		}
		return Occupied
	default:
		return c
	}
}

// Step returns the next generation of g. The source grid is left untouched.
func Step(g *Grid) *Grid {
	next := NewGrid(g.W, g.H)
	stepInto(next, g)
	return next
}

// stepInto writes the generation following src into dst. Both grids must
// share dimensions and must not alias.
func stepInto(dst, src *Grid) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			dst.Set(x, y, src.Next(x, y))
		}
	}
}

// Report describes the grid after one pass of Run.
type Report struct {
	Iteration int
	Occupied  int
	Grid      *Grid
}

// Run steps g until a generation equals its predecessor. observe, when not
// nil, is called after every pass that changed the grid.
//
// The iteration counter is bumped before the comparison, so the final
// Report's Iteration counts the confirming pass as well: a layout that
// settles after k changing steps finishes with Iteration k+1. The first
// observed pass is iteration 1 and already holds the first real step; there
// is no leading pass that just echoes the input.
func Run(g *Grid, observe func(Report)) Report {
	var last *Grid
	n := 0
	for {
		n++
		g = Step(g)
		if g.Equal(last) {
			break
		}
		last = g
		if observe != nil {
			observe(Report{Iteration: n, Occupied: g.Occupied(), Grid: g})
		}
	}
	return Report{Iteration: n, Occupied: g.Occupied(), Grid: g}
}
