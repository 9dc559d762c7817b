package scoring

import (
	"fmt"

	"kingdomino/internal/kingdom"
)

// QualifiesMiddleKingdom reports whether the castle sits at the centre of a
// size x size bounding box.
func QualifiesMiddleKingdom(b *kingdom.Board, castle kingdom.Position, size int) (bool, error) {
	if err := checkCastle(b, castle); err != nil {
		return false, err
	}
	if size < 1 {
		return false, fmt.Errorf("%w: size %d", kingdom.ErrInvalidViewport, size)
	}

	bx := BoundingBox(b, castle)
	if !bx.IsSquare(size) {
		return false, nil
	}
	return bx.Center() == castle, nil
}

// QualifiesHarmony reports whether the bounding box is size x size and every
// cell of the viewport at origin holds a tile. The castle cell is exempt.
func QualifiesHarmony(b *kingdom.Board, castle, origin kingdom.Position, size int) (bool, error) {
	if err := checkCastle(b, castle); err != nil {
		return false, err
	}
	if err := checkViewport(b, origin, size); err != nil {
		return false, err
	}

	for r := origin.Row; r < origin.Row+size; r++ {
		for c := origin.Col; c < origin.Col+size; c++ {
			if r == castle.Row && c == castle.Col {
				continue
			}
			if !b.Tiles[r][c].Terrain.IsSet() {
				return false, nil
			}
		}
	}

	return BoundingBox(b, castle).IsSquare(size), nil
}

func checkCastle(b *kingdom.Board, castle kingdom.Position) error {
	if !b.InBounds(castle) {
		return fmt.Errorf("%w: castle at %s on %dx%d board", kingdom.ErrOutOfRange, castle, b.Rows, b.Cols)
	}
	return nil
}

// checkViewport requires the whole window to lie on the board.
func checkViewport(b *kingdom.Board, origin kingdom.Position, size int) error {
	if size < 1 {
		return fmt.Errorf("%w: size %d", kingdom.ErrInvalidViewport, size)
	}
	far := kingdom.Position{Row: origin.Row + size - 1, Col: origin.Col + size - 1}
	if !b.InBounds(origin) || !b.InBounds(far) {
		return fmt.Errorf("%w: %dx%d viewport at %s on %dx%d board",
			kingdom.ErrOutOfRange, size, size, origin, b.Rows, b.Cols)
	}
	return nil
}
