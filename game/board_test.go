package game_test

import (
	"math/rand"
	"testing"

	"minesweeper/game"
)

func at(x, y int) game.Coordinate { return game.Coordinate{X: x, Y: y} }

func adjacent(t *testing.T, b *game.Board, c game.Coordinate) int {
	t.Helper()
	n, ok := b.Cell(c).Adjacent()
	if !ok {
		t.Fatalf("cell %v is %v, expected revealed", c, b.Cell(c).State())
	}
	return n
}

func TestNewBoardInitialState(t *testing.T) {
	b := game.NewBoard(3, 2, game.NewMineSet(at(1, 0), at(2, 1)))
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("expected 3x2 board, got %dx%d", b.Width(), b.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := game.CellHidden
			if b.Mines().Has(at(x, y)) {
				want = game.CellHiddenMine
			}
			if got := b.Cell(at(x, y)).State(); got != want {
				t.Errorf("cell (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
	if b.IsWon() {
		t.Fatal("fresh board must not be won")
	}
}

func TestNewGeneratesBoard(t *testing.T) {
	b, err := game.New(rand.New(rand.NewSource(7)), 9, 9, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mines := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if b.Cell(at(x, y)).State() == game.CellHiddenMine {
				mines++
			}
		}
	}
	if mines != 10 {
		t.Fatalf("expected 10 hidden mines, got %d", mines)
	}
}

func TestAdjacentMines(t *testing.T) {
	b := game.NewBoard(3, 3, game.NewMineSet(at(0, 0), at(2, 2)))
	cases := []struct {
		c    game.Coordinate
		want int
	}{
		{at(1, 1), 2},
		{at(0, 1), 1},
		{at(1, 0), 1},
		{at(2, 0), 0},
		{at(0, 2), 0},
		{at(2, 1), 1},
	}
	for _, tc := range cases {
		if got := b.AdjacentMines(tc.c); got != tc.want {
			t.Errorf("AdjacentMines(%v): got %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	b := game.NewBoard(3, 3, game.NewMineSet(at(0, 0), at(2, 2)))
	if out := b.Reveal(at(1, 1)); out != game.Continue {
		t.Fatalf("expected Continue, got %v", out)
	}
	if n := adjacent(t, b, at(1, 1)); n != 2 {
		t.Fatalf("expected 2 adjacent mines, got %d", n)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if s := b.Cell(at(x, y)).State(); s == game.CellRevealed {
				t.Fatalf("cell (%d,%d) revealed without cascade", x, y)
			}
		}
	}
}

func TestRevealTwiceIsNoop(t *testing.T) {
	b := game.NewBoard(4, 4, game.NewMineSet(at(3, 3)))
	b.Reveal(at(0, 0))
	before := game.NewView(b)

	if out := b.Reveal(at(0, 0)); out != game.Continue {
		t.Fatalf("expected Continue, got %v", out)
	}
	if out := b.Reveal(at(2, 2)); out != game.Continue {
		t.Fatalf("expected Continue, got %v", out)
	}
	after := game.NewView(b)
	for y := range before.Cells {
		for x := range before.Cells[y] {
			if before.Cells[y][x] != after.Cells[y][x] {
				t.Fatalf("cell (%d,%d) changed: %v -> %v", x, y, before.Cells[y][x], after.Cells[y][x])
			}
		}
	}
}

func TestRevealMineFreeBoardRevealsEverything(t *testing.T) {
	for _, start := range []game.Coordinate{at(0, 0), at(7, 5), at(3, 2)} {
		b := game.NewBoard(8, 6, game.NewMineSet())
		b.Reveal(start)
		for y := 0; y < 6; y++ {
			for x := 0; x < 8; x++ {
				if n := adjacent(t, b, at(x, y)); n != 0 {
					t.Fatalf("cell (%d,%d): expected 0, got %d", x, y, n)
				}
			}
		}
		if !b.IsWon() {
			t.Fatalf("board not won after revealing from %v", start)
		}
	}
}

func TestRevealFloodStopsAtNumbers(t *testing.T) {
	// ligne de 5 cases, mine au bout
	b := game.NewBoard(5, 1, game.NewMineSet(at(4, 0)))
	b.Reveal(at(0, 0))
	for x := 0; x < 3; x++ {
		if n := adjacent(t, b, at(x, 0)); n != 0 {
			t.Fatalf("cell (%d,0): expected 0, got %d", x, n)
		}
	}
	if n := adjacent(t, b, at(3, 0)); n != 1 {
		t.Fatalf("cell (3,0): expected 1, got %d", n)
	}
	if s := b.Cell(at(4, 0)).State(); s != game.CellHiddenMine {
		t.Fatalf("mine touched by flood fill: %v", s)
	}
	if !b.IsWon() {
		t.Fatal("expected win once every safe cell is revealed")
	}
}

func TestRevealLargeBoardIsIterative(t *testing.T) {
	b := game.NewBoard(500, 500, game.NewMineSet(at(499, 499)))
	b.Reveal(at(0, 0))
	if !b.IsWon() {
		t.Fatal("expected the whole safe area to be revealed")
	}
}

func TestRevealMineDetonatesAllMines(t *testing.T) {
	mines := game.NewMineSet(at(0, 0), at(2, 2), at(0, 2))
	b := game.NewBoard(3, 3, mines)
	b.Reveal(at(1, 1))

	if out := b.Reveal(at(2, 2)); out != game.Detonated {
		t.Fatalf("expected Detonated, got %v", out)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got := b.Cell(at(x, y)).State()
			switch {
			case mines.Has(at(x, y)):
				if got != game.CellDetonated {
					t.Errorf("mine (%d,%d): got %v, want detonated", x, y, got)
				}
			case x == 1 && y == 1:
				if got != game.CellRevealed {
					t.Errorf("cell (1,1): got %v, want revealed", got)
				}
			default:
				if got != game.CellHidden {
					t.Errorf("cell (%d,%d): got %v, want hidden", x, y, got)
				}
			}
		}
	}
	if !b.IsDetonated() {
		t.Fatal("IsDetonated should report the explosion")
	}
}

func TestRevealOutOfBoundsIgnored(t *testing.T) {
	b := game.NewBoard(2, 2, game.NewMineSet(at(0, 0)))
	for _, c := range []game.Coordinate{at(-1, 0), at(0, -1), at(2, 0), at(0, 2)} {
		if out := b.Reveal(c); out != game.Continue {
			t.Fatalf("Reveal(%v): expected Continue, got %v", c, out)
		}
	}
	if s := b.Cell(at(5, 5)).State(); s != game.CellHidden {
		t.Fatalf("out of range Cell: got %v", s)
	}
}

func TestIsWon(t *testing.T) {
	b := game.NewBoard(2, 2, game.NewMineSet(at(0, 0)))
	steps := []game.Coordinate{at(1, 0), at(0, 1), at(1, 1)}
	for i, c := range steps {
		if b.IsWon() {
			t.Fatalf("won too early before step %d", i)
		}
		b.Reveal(c)
	}
	if !b.IsWon() {
		t.Fatal("expected win with all safe cells revealed")
	}
	if s := b.Cell(at(0, 0)).State(); s != game.CellHiddenMine {
		t.Fatalf("mine should stay hidden on win, got %v", s)
	}
}

func TestOneByOneWithoutMines(t *testing.T) {
	b := game.NewBoard(1, 1, game.NewMineSet())
	if out := b.Reveal(at(0, 0)); out != game.Continue {
		t.Fatalf("expected Continue, got %v", out)
	}
	if n := adjacent(t, b, at(0, 0)); n != 0 {
		t.Fatalf("expected Revealed(0), got %d", n)
	}
	if !b.IsWon() {
		t.Fatal("expected win")
	}
}

func TestTwoByTwoSingleMine(t *testing.T) {
	b := game.NewBoard(2, 2, game.NewMineSet(at(0, 0)))
	b.Reveal(at(1, 1))
	if n := adjacent(t, b, at(1, 1)); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	for _, c := range []game.Coordinate{at(1, 0), at(0, 1)} {
		if s := b.Cell(c).State(); s != game.CellHidden {
			t.Fatalf("cell %v should still be hidden, got %v", c, s)
		}
	}
	if b.IsWon() {
		t.Fatal("expected no win with two safe cells hidden")
	}
}
