package model

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// History remembers fingerprints of recent generations to detect still lifes
// and short-period oscillators.
type History struct {
	window int
	hashes []uint64
}

// NewHistory keeps the last window fingerprints; window is at least 1
func NewHistory(window int) *History {
	window = max(window, 1)
	return &History{
		window: window,
		hashes: make([]uint64, 0, window),
	}
}

// Observe records g and reports whether it repeats a generation still in the window
func (h *History) Observe(g *Grid[Cell]) bool {
	hash := Fingerprint(g)

	stagnant := false
	for _, seen := range h.hashes {
		if seen == hash {
			stagnant = true
			break
		}
	}

	if len(h.hashes) == h.window {
		h.hashes = append(h.hashes[:0], h.hashes[1:]...)
	}
	h.hashes = append(h.hashes, hash)
	return stagnant
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// Fingerprint returns a 64-bit hash of the grid's dimensions and cells
func Fingerprint(g *Grid[Cell]) uint64 {
	d := xxhash.New()

	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.rows))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.cols))
	_, _ = d.Write(dims[:])

	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		buf[i] = byte(cell)
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}
