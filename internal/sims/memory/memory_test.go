package memory

import (
	"errors"
	"math"
	"slices"
	"testing"
)

// replay plays the game by scanning the full sequence for every round.
func replay(start []int, rounds int) []int {
	seq := append([]int(nil), start...)
	for len(seq) < rounds {
		last := seq[len(seq)-1]
		next := 0
		for j := len(seq) - 2; j >= 0; j-- {
			if seq[j] == last {
				next = len(seq) - 1 - j
				break
			}
		}
		seq = append(seq, next)
	}
	return seq[:rounds]
}

func TestParseStart(t *testing.T) {
	got, err := ParseStart("0, 3,6")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{0, 3, 6}) {
		t.Fatalf("unexpected numbers %v", got)
	}

	if _, err := ParseStart(""); !errors.Is(err, ErrNoStart) {
		t.Fatalf("expected ErrNoStart, got %v", err)
	}
	if _, err := ParseStart("1,x,3"); err == nil {
		t.Fatal("expected an error for a non-integer")
	}
	if _, err := ParseStart("1,,3"); err == nil {
		t.Fatal("expected an error for an empty field")
	}
}

func TestPlayKnownScenarios(t *testing.T) {
	cases := []struct {
		start  []int
		rounds int
		want   int
	}{
		{[]int{0, 3, 6}, 4, 0},
		{[]int{0, 3, 6}, 5, 3},
		{[]int{0, 3, 6}, 6, 3},
		{[]int{0, 3, 6}, 7, 1},
		{[]int{0, 3, 6}, 8, 0},
		{[]int{0, 3, 6}, 9, 4},
		{[]int{0, 3, 6}, 10, 0},
		{[]int{0, 3, 6}, 2020, 436},
		{[]int{1, 3, 2}, 2020, 1},
		{[]int{2, 1, 3}, 2020, 10},
		{[]int{1, 2, 3}, 2020, 27},
		{[]int{2, 3, 1}, 2020, 78},
		{[]int{3, 2, 1}, 2020, 438},
		{[]int{3, 1, 2}, 2020, 1836},
	}
	for _, c := range cases {
		got, err := Play(c.start, c.rounds)
		if err != nil {
			t.Fatalf("Play(%v, %d): %v", c.start, c.rounds, err)
		}
		if got != c.want {
			t.Fatalf("Play(%v, %d)=%d, expected %d", c.start, c.rounds, got, c.want)
		}
	}
}

func TestPlayWithinStartingNumbers(t *testing.T) {
	start := []int{5, 9, 2}
	for r := 1; r <= len(start); r++ {
		got, err := Play(start, r)
		if err != nil {
			t.Fatal(err)
		}
		if got != start[r-1] {
			t.Fatalf("round %d: got %d, expected %d", r, got, start[r-1])
		}
	}
}

func TestPlayErrors(t *testing.T) {
	if _, err := Play([]int{0, 3, 6}, 0); !errors.Is(err, ErrRounds) {
		t.Fatalf("expected ErrRounds, got %v", err)
	}
	if _, err := Play(nil, 10); !errors.Is(err, ErrNoStart) {
		t.Fatalf("expected ErrNoStart, got %v", err)
	}
	if _, err := NewGame(nil, 10); !errors.Is(err, ErrNoStart) {
		t.Fatalf("expected ErrNoStart, got %v", err)
	}
}

func TestIncrementalMatchesReplay(t *testing.T) {
	starts := [][]int{
		{0, 3, 6},
		{1, 3, 2},
		{7},
		{4, 4, 4},
		{0, 0},
		{-2, 5, -2},
		{1000000, 12, 0},
	}
	const rounds = 400
	for _, start := range starts {
		want := replay(start, rounds)

		g, err := NewGame(start, rounds)
		if err != nil {
			t.Fatal(err)
		}
		got := append([]int(nil), start...)
		for g.Round() < rounds {
			got = append(got, g.Next())
		}
		if !slices.Equal(got, want) {
			t.Fatalf("start %v: incremental sequence diverged from replay", start)
		}

		for r := 1; r <= rounds; r += 37 {
			v, err := Play(start, r)
			if err != nil {
				t.Fatal(err)
			}
			if v != want[r-1] {
				t.Fatalf("start %v round %d: Play=%d, replay=%d", start, r, v, want[r-1])
			}
		}
	}
}

func TestSparseHistoryMatchesDense(t *testing.T) {
	start := []int{0, 3, 6}
	const rounds = 5000

	dense, err := NewGame(start, rounds)
	if err != nil {
		t.Fatal(err)
	}
	sparse, err := NewGame(start, 0)
	if err != nil {
		t.Fatal(err)
	}
	for dense.Round() < rounds {
		if a, b := dense.Next(), sparse.Next(); a != b {
			t.Fatalf("round %d: dense=%d sparse=%d", dense.Round(), a, b)
		}
	}
}

func TestHistoryDenseIsBounded(t *testing.T) {
	h := newHistory(math.MaxInt32)
	if len(h.dense) != maxDense {
		t.Fatalf("dense history has %d slots, expected %d", len(h.dense), maxDense)
	}

	h = newHistory(1000)
	h.set(5000, 12)
	h.set(-4, 3)
	if r, ok := h.get(5000); !ok || r != 12 {
		t.Fatalf("value past the dense range: got (%d, %v)", r, ok)
	}
	if r, ok := h.get(-4); !ok || r != 3 {
		t.Fatalf("negative value: got (%d, %v)", r, ok)
	}
	if _, ok := h.get(7); ok {
		t.Fatal("unrecorded value reported as present")
	}
	if len(h.sparse) != 2 {
		t.Fatalf("expected 2 map entries, got %d", len(h.sparse))
	}

	if h := newHistory(math.MaxInt32 + 1); len(h.dense) != 0 {
		t.Fatal("targets past MaxInt32 must not use the slice")
	}
}

func TestDeterministic(t *testing.T) {
	a, _ := Play([]int{2, 1, 3}, 100000)
	b, _ := Play([]int{2, 1, 3}, 100000)
	if a != b {
		t.Fatalf("same input produced %d and %d", a, b)
	}
}

func TestPlayThirtyMillion(t *testing.T) {
	if testing.Short() {
		t.Skip("long run")
	}
	got, err := Play([]int{0, 3, 6}, 30000000)
	if err != nil {
		t.Fatal(err)
	}
	if got != 175594 {
		t.Fatalf("expected 175594, got %d", got)
	}
}

func BenchmarkPlay(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Play([]int{0, 3, 6}, 1000000); err != nil {
			b.Fatal(err)
		}
	}
}
