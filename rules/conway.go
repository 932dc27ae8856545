package rules

// Saturation is the live-neighbour count past which no rule distinguishes
// further. Counting may stop once it is reached.
const Saturation = 4

/*
Next applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3.
Everything else is dead in the next generation.
*/
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
