package game

// IsWon retourne true si plus aucune case sûre n'est cachée, quel que soit
// l'état des mines.
func (b *Board) IsWon() bool {
	for _, c := range b.cells {
		if c.state == CellHidden {
			return false
		}
	}
	return true
}

// IsDetonated retourne true si une mine a explosé.
func (b *Board) IsDetonated() bool {
	for _, m := range b.mines.Coordinates() {
		if b.Cell(m).state == CellDetonated {
			return true
		}
	}
	return false
}
