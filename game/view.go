package game

// CellView est la vue publique d'une case : une mine cachée s'affiche
// comme une case cachée.
type CellView struct {
	State string `json:"state"`           // "hidden", "revealed" ou "detonated"
	Count int    `json:"count,omitempty"` // voisines minées, seulement si "revealed"
}

// View est l'instantané JSON d'un plateau envoyé aux clients.
type View struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Mines     int          `json:"mines"`
	Cells     [][]CellView `json:"cells"` // [y][x]
	Won       bool         `json:"won"`
	Detonated bool         `json:"detonated"`
	Finished  bool         `json:"finished"`
}

// NewView construit la vue du plateau b.
func NewView(b *Board) View {
	v := View{
		Width:     b.width,
		Height:    b.height,
		Mines:     b.mines.Len(),
		Cells:     make([][]CellView, b.height),
		Detonated: b.IsDetonated(),
	}
	v.Won = !v.Detonated && b.IsWon()
	v.Finished = v.Won || v.Detonated

	for y := 0; y < b.height; y++ {
		row := make([]CellView, b.width)
		for x := 0; x < b.width; x++ {
			cell := b.cells[b.index(Coordinate{X: x, Y: y})]
			switch cell.state {
			case CellRevealed:
				row[x] = CellView{State: "revealed", Count: int(cell.adjacent)}
			case CellDetonated:
				row[x] = CellView{State: "detonated"}
			default:
				row[x] = CellView{State: "hidden"}
			}
		}
		v.Cells[y] = row
	}
	return v
}
