package term

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"minesweeper/game"
)

// Glyphes des cases. Une mine cachée s'affiche comme une case cachée.
const (
	glyphHidden    = "░░"
	glyphDetonated = "██"
)

// ErrBoardTooLarge : une dimension dépasse le nombre de lettres disponibles.
var ErrBoardTooLarge = errors.New("board too large to label")

// Render dessine le plateau avec ses étiquettes et une bordure en
// caractères de boîte.
func Render(w io.Writer, b *game.Board) error {
	if b.Width() > len(Alphabet) || b.Height() > len(Alphabet) {
		return fmt.Errorf("%dx%d: %w", b.Width(), b.Height(), ErrBoardTooLarge)
	}

	var sb strings.Builder
	cols, rows := Labels(b.Width()), Labels(b.Height())

	sb.WriteString("      ")
	for x := 0; x < b.Width(); x++ {
		sb.WriteByte(cols[x])
		sb.WriteString("    ")
	}
	sb.WriteString("\n")

	border(&sb, b.Width(), "┌", "┬", "┐")
	for y := 0; y < b.Height(); y++ {
		fmt.Fprintf(&sb, "  %c ", rows[y])
		for x := 0; x < b.Width(); x++ {
			sb.WriteString("│ ")
			sb.WriteString(glyph(b.Cell(game.Coordinate{X: x, Y: y})))
			sb.WriteString(" ")
		}
		sb.WriteString("│\n")
		if y < b.Height()-1 {
			border(&sb, b.Width(), "├", "┼", "┤")
		} else {
			border(&sb, b.Width(), "└", "┴", "┘")
		}
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// border trace une ligne horizontale entre deux rangées de cases.
func border(sb *strings.Builder, width int, start, connector, end string) {
	sb.WriteString("    ")
	sb.WriteString(start)
	for x := 0; x < width; x++ {
		sb.WriteString("────")
		if x < width-1 {
			sb.WriteString(connector)
		} else {
			sb.WriteString(end)
		}
	}
	sb.WriteString("\n")
}

// glyph retourne les deux colonnes affichées au centre d'une case.
func glyph(c game.Cell) string {
	switch c.State() {
	case game.CellRevealed:
		n, _ := c.Adjacent()
		if n == 0 {
			return "  "
		}
		return fmt.Sprintf("%d ", n)
	case game.CellDetonated:
		return glyphDetonated
	default:
		return glyphHidden
	}
}
