package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seat-ca/internal/sims/seating"
)

func TestReportSingleSeat(t *testing.T) {
	cases := []struct {
		name  string
		quiet bool
		want  string
	}{
		{"verbose", false, "\n1 occupied: 1\n#\n---\nn: 2, num_occ: 1\n#\n"},
		{"quiet", true, "n: 2, num_occ: 1\n#\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid, err := seating.ParseString("L")
			if err != nil {
				t.Fatal(err)
			}
			var sb strings.Builder
			report(&sb, grid, c.quiet)
			if got := sb.String(); got != c.want {
				t.Fatalf("got %q, expected %q", got, c.want)
			}
		})
	}
}

func TestReportExampleGolden(t *testing.T) {
	grid, err := seating.Load(filepath.Join("..", "..", "internal", "sims", "seating", "testdata", "example.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "example.golden"))
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	final := report(&sb, grid, false)
	if got := sb.String(); got != string(want) {
		t.Fatalf("output mismatch:\n%s\nexpected:\n%s", got, want)
	}
	if final.Occupied != 37 {
		t.Fatalf("expected 37 occupied seats, got %d", final.Occupied)
	}

	sb.Reset()
	report(&sb, grid, true)
	wantQuiet := "n: 6, num_occ: 37\n" + final.Grid.String() + "\n"
	if got := sb.String(); got != wantQuiet {
		t.Fatalf("quiet output mismatch:\n%s\nexpected:\n%s", got, wantQuiet)
	}
	if !strings.HasSuffix(string(want), wantQuiet) {
		t.Fatal("quiet output should equal the summary of the full run")
	}
}
