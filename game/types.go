package game

// Coordinate identifie une case : X est la colonne, Y la ligne, toutes deux à partir de 0.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellState est l'étiquette de variante d'une Cell.
type CellState uint8

const (
	CellHidden     CellState = iota // case sûre pas encore découverte
	CellHiddenMine                  // mine, identique à CellHidden pour le joueur
	CellRevealed                    // case sûre découverte, porte le nombre de mines voisines
	CellDetonated                   // mine après l'explosion
)

func (s CellState) String() string {
	switch s {
	case CellHidden:
		return "hidden"
	case CellHiddenMine:
		return "hidden-mine"
	case CellRevealed:
		return "revealed"
	case CellDetonated:
		return "detonated"
	}
	return "unknown"
}

// Cell est une case du plateau. Le nombre de voisines minées n'a de sens
// qu'une fois la case découverte.
type Cell struct {
	state    CellState
	adjacent uint8
}

func (c Cell) State() CellState { return c.state }

// Adjacent retourne le nombre de mines voisines. ok vaut false tant que
// la case n'est pas découverte.
func (c Cell) Adjacent() (n int, ok bool) {
	if c.state != CellRevealed {
		return 0, false
	}
	return int(c.adjacent), true
}

// Outcome est le résultat d'un coup.
type Outcome int

const (
	Continue Outcome = iota
	Detonated
)

func (o Outcome) String() string {
	if o == Detonated {
		return "detonated"
	}
	return "continue"
}
