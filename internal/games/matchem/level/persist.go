package level

import (
	"errors"
	"fmt"
)

// Restore errors.
var (
	ErrGridSize    = errors.New("level: index count does not match grid size")
	ErrInvalidCard = errors.New("level: invalid card index")
)

// Indices returns the card index of every cell in row-major order. Only
// indices are persisted; animation state is rebuilt on restore.
func (g *Grid) Indices() []int32 {
	out := make([]int32, len(g.cells))
	for i := range g.cells {
		out[i] = int32(g.cells[i].Index)
	}
	return out
}

// RestoreIndices deals a level for levelIndex and then replaces its cards
// with the saved ones. Nothing changes when the indices are rejected.
func (g *Grid) RestoreIndices(levelIndex int, indices []int32) error {
	if len(indices) != len(g.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrGridSize, len(indices), len(g.cells))
	}
	for i, v := range indices {
		if !validIndex(int(v)) {
			return fmt.Errorf("%w: %d at cell %d", ErrInvalidCard, v, i)
		}
	}

	g.CreateLevel(levelIndex)
	for i, v := range indices {
		c := &g.cells[i]
		c.Index = int(v)
		c.OffsetX, c.OffsetY = 0, 0
	}

	g.CheckDestroyWholeLevel(true)
	g.HasMovesLeft()
	g.destroyingRound = 0
	return nil
}

func validIndex(idx int) bool {
	return idx == NoCard || idx == EmptyCard || idx == JokerCard || IsCard(idx)
}
