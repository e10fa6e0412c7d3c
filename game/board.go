package game

// Board est la grille d'une partie avec ses mines.
// Pas d'accès concurrent.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major
	mines  MineSet
}

// NewBoard crée une grille width x height : les mines démarrent en
// CellHiddenMine, les autres cases en CellHidden. Les mines hors grille
// sont ignorées.
func NewBoard(width, height int, mines MineSet) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		mines:  mines,
	}
	for _, c := range mines.Coordinates() {
		if b.InBounds(c) {
			b.cells[b.index(c)].state = CellHiddenMine
		}
	}
	return b
}

// New tire les mines avec rng et retourne le plateau initial.
func New(rng Source, width, height, mines int) (*Board, error) {
	set, err := GenerateMines(rng, mines, width, height)
	if err != nil {
		return nil, err
	}
	return NewBoard(width, height, set), nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) Mines() MineSet { return b.mines }

func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Cell retourne la case en c (Cell vide si hors plateau).
func (b *Board) Cell(c Coordinate) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.cells[b.index(c)]
}

func (b *Board) index(c Coordinate) int { return c.Y*b.width + c.X }

// around appelle fn pour chaque voisine de c dans le plateau.
func (b *Board) around(c Coordinate, fn func(n Coordinate)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if b.InBounds(n) {
				fn(n)
			}
		}
	}
}

// AdjacentMines compte les mines parmi les 8 voisines (au plus) de c.
func (b *Board) AdjacentMines(c Coordinate) int {
	count := 0
	b.around(c, func(n Coordinate) {
		if b.mines.Has(n) {
			count++
		}
	})
	return count
}
