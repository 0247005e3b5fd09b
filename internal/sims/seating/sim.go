package seating

import "seat-ca/internal/core"

// Sim drives a seating layout generation by generation so it can be shown
// by the viewer. It double-buffers the grid instead of allocating per step.
type Sim struct {
	cfg     Config
	initial *Grid
	cur     *Grid
	nxt     *Grid

	generation int
	stable     bool
}

// New returns a Sim starting from a copy of layout.
func New(layout *Grid) *Sim {
	s := &Sim{initial: layout.Clone()}
	s.Reset(0)
	return s
}

// NewWithConfig builds a Sim from cfg, loading the layout file if one is
// configured.
func NewWithConfig(cfg Config) (*Sim, error) {
	if cfg.Path == "" {
		s := &Sim{cfg: cfg}
		s.Reset(0)
		return s, nil
	}
	layout, err := Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	s := New(layout)
	s.cfg = cfg
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "seating" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cur.W, H: s.cur.H} }

// Cells exposes the current layout; values are Cell states.
func (s *Sim) Cells() []uint8 { return s.cur.Cells() }

// Grid returns the current layout.
func (s *Sim) Grid() *Grid { return s.cur }

// Generation returns how many steps have changed the layout since Reset.
func (s *Sim) Generation() int { return s.generation }

// Occupied counts occupied seats in the current layout.
func (s *Sim) Occupied() int { return s.cur.Occupied() }

// Stable reports whether the last step left the layout unchanged.
func (s *Sim) Stable() bool { return s.stable }

// Reset restores the starting layout. Sims without a layout file draw a new
// random layout from seed.
func (s *Sim) Reset(seed int64) {
	if s.initial == nil {
		layout := Random(s.cfg.Width, s.cfg.Height, s.cfg.Density, core.NewRNG(seed))
		s.cur = layout
	} else {
		s.cur = s.initial.Clone()
	}
	s.nxt = NewGrid(s.cur.W, s.cur.H)
	s.generation = 0
	s.stable = false
}

// Step advances the layout by one generation. Once stable, Step is a no-op.
func (s *Sim) Step() {
	if s.stable {
		return
	}
	stepInto(s.nxt, s.cur)
	if s.nxt.Equal(s.cur) {
		s.stable = true
		return
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
}

func init() {
	core.Register("seating", func(cfg map[string]string) (core.Sim, error) {
		s, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
