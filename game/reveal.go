package game

// Reveal joue la case c. Sur une mine, toutes les mines explosent.
// Sinon la case est découverte et, si elle n'a aucune voisine minée, la
// découverte s'étend à toute la zone de zéros et à sa bordure numérotée.
// Rejouer une case déjà découverte ne change rien.
func (b *Board) Reveal(c Coordinate) Outcome {
	if b.mines.Has(c) {
		for _, m := range b.mines.Coordinates() {
			if b.InBounds(m) {
				b.cells[b.index(m)] = Cell{state: CellDetonated}
			}
		}
		return Detonated
	}

	n, ok := b.revealOne(c)
	if !ok || n != 0 {
		return Continue
	}

	// La file ne contient que des zéros découverts : jamais de mine, et
	// chaque case y entre au plus une fois.
	queue := []Coordinate{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		b.around(cur, func(nb Coordinate) {
			if n, ok := b.revealOne(nb); ok && n == 0 {
				queue = append(queue, nb)
			}
		})
	}
	return Continue
}

// revealOne découvre une seule case CellHidden et retourne son nombre de
// voisines minées. ok vaut false hors plateau ou si la case n'est pas CellHidden.
func (b *Board) revealOne(c Coordinate) (n int, ok bool) {
	if !b.InBounds(c) {
		return 0, false
	}
	cell := &b.cells[b.index(c)]
	if cell.state != CellHidden {
		return 0, false
	}
	n = b.AdjacentMines(c)
	cell.state = CellRevealed
	cell.adjacent = uint8(n)
	return n, true
}
