package memory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoStart is returned when the starting sequence is empty.
	ErrNoStart = errors.New("memory: empty starting sequence")
	// ErrRounds is returned for round targets below 1.
	ErrRounds = errors.New("memory: round target must be at least 1")
)

// ParseStart parses a comma-separated list of integers such as "0,3,6".
func ParseStart(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrNoStart
	}
	fields := strings.Split(s, ",")
	nums := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("memory: starting number %d: %w", i+1, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// maxDense bounds the slice part of history to 512 MiB.
const maxDense = 1 << 27

// history maps a spoken value to the round index it was last recorded at.
// Values below len(dense) live in a slice holding index+1 so the zero value
// means "never recorded"; everything else falls back to a map.
type history struct {
	dense  []int32
	sparse map[int]int
}

func newHistory(capacity int) *history {
	switch {
	case capacity < 0 || capacity > math.MaxInt32:
		capacity = 0
	case capacity > maxDense:
		capacity = maxDense
	}
	return &history{dense: make([]int32, capacity), sparse: make(map[int]int)}
}

func (h *history) get(v int) (int, bool) {
	if v >= 0 && v < len(h.dense) {
		r := h.dense[v]
		return int(r) - 1, r != 0
	}
	r, ok := h.sparse[v]
	return r, ok
}

func (h *history) set(v, round int) {
	if v >= 0 && v < len(h.dense) {
		h.dense[v] = int32(round + 1)
		return
	}
	h.sparse[v] = round
}

// Game holds the running state of one memory game.
type Game struct {
	hist  *history
	last  int
	round int
}

// NewGame seeds a game with start. capacity is a hint for the number of
// rounds that will be played; every value spoken after the starting numbers
// is smaller than the round it is spoken on, so sizing it to the round
// target keeps lookups off the map.
func NewGame(start []int, capacity int) (*Game, error) {
	if len(start) == 0 {
		return nil, ErrNoStart
	}
	g := &Game{hist: newHistory(capacity)}
	for i, n := range start {
		if i > 0 {
			g.hist.set(g.last, i-1)
		}
		g.last = n
	}
	g.round = len(start)
	return g, nil
}

// Round returns how many rounds have been played, starting numbers included.
func (g *Game) Round() int { return g.round }

// Last returns the number spoken on the latest round.
func (g *Game) Last() int { return g.last }

// Next plays one round and returns the number spoken.
func (g *Game) Next() int {
	i := g.round
	r, ok := g.hist.get(g.last)
	g.hist.set(g.last, i-1)
	if ok {
		g.last = i - 1 - r
	} else {
		g.last = 0
	}
	g.round++
	return g.last
}

// Play returns the number spoken on round rounds (1-indexed).
func Play(start []int, rounds int) (int, error) {
	if rounds < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrRounds, rounds)
	}
	if len(start) == 0 {
		return 0, ErrNoStart
	}
	if rounds <= len(start) {
		return start[rounds-1], nil
	}
	g, err := NewGame(start, rounds)
	if err != nil {
		return 0, err
	}
	for g.Round() < rounds {
		g.Next()
	}
	return g.Last(), nil
}
