package term

import (
	"errors"
	"fmt"
	"strings"

	"minesweeper/game"
)

// Alphabet étiquette les colonnes et les lignes du plateau.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrInvalidLocation = errors.New("invalid location")

// Labels retourne les n premières lettres de Alphabet.
func Labels(n int) string {
	switch {
	case n < 0:
		n = 0
	case n > len(Alphabet):
		n = len(Alphabet)
	}
	return Alphabet[:n]
}

// ParseCoordinate convertit une saisie "colonne ligne" comme "cb" en
// coordonnées. Seul le retour à la ligne final est ignoré.
func ParseCoordinate(input string, width, height int) (game.Coordinate, error) {
	s := strings.ToUpper(strings.TrimRight(input, "\r\n"))
	if len(s) != 2 {
		return game.Coordinate{}, fmt.Errorf("%q: %w", input, ErrInvalidLocation)
	}
	x := strings.IndexByte(Labels(width), s[0])
	y := strings.IndexByte(Labels(height), s[1])
	if x < 0 || y < 0 {
		return game.Coordinate{}, fmt.Errorf("%q: %w", input, ErrInvalidLocation)
	}
	return game.Coordinate{X: x, Y: y}, nil
}
