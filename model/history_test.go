package model

import "testing"

func TestHistoryStillLife(t *testing.T) {
	game := FromGrid(gridOf(t,
		"....",
		".OO.",
		".OO.",
		"....",
	))
	h := NewHistory(3)

	if h.Observe(game.Grid()) {
		t.Fatal("expected first observation not to be stagnant")
	}
	game.Step()
	if !h.Observe(game.Grid()) {
		t.Fatal("expected block to be stagnant after one step")
	}
}

func TestHistoryOscillator(t *testing.T) {
	game := FromGrid(gridOf(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	))
	h := NewHistory(2)

	for gen, want := range []bool{false, false, true, true} {
		if got := h.Observe(game.Grid()); got != want {
			t.Fatalf("generation %d: expected stagnant=%v, got %v", gen, want, got)
		}
		game.Step()
	}
}

func TestHistoryWindowTooShortForPeriod(t *testing.T) {
	game := FromGrid(gridOf(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	))
	h := NewHistory(1)

	for gen := range 6 {
		if h.Observe(game.Grid()) {
			t.Fatalf("generation %d: expected period-2 oscillator to escape a window of 1", gen)
		}
		game.Step()
	}
}

func TestHistoryReset(t *testing.T) {
	g := NewGrid[Cell](2, 2)
	h := NewHistory(0)

	h.Observe(g)
	h.Reset()
	if h.Observe(g) {
		t.Fatal("expected reset history to forget earlier generations")
	}
}

func TestFingerprintIncludesDimensions(t *testing.T) {
	if Fingerprint(NewGrid[Cell](1, 2)) == Fingerprint(NewGrid[Cell](2, 1)) {
		t.Fatal("expected fingerprints of 1x2 and 2x1 grids to differ")
	}

	a := NewGrid[Cell](3, 3)
	b := a.Clone()
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("expected equal grids to share a fingerprint")
	}
	b.Set(Alive, 2, 2)
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatal("expected different grids to have different fingerprints")
	}
}
