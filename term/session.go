package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"minesweeper/game"
)

// clearScreen replace le curseur en haut à gauche et efface le terminal.
const clearScreen = "\033[H\033[2J"

var ErrInputClosed = errors.New("input closed")

// Result est l'issue d'une partie terminée.
type Result int

const (
	Won Result = iota + 1
	Lost
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Session déroule une partie au tour par tour sur un terminal.
type Session struct {
	board *game.Board
	in    *bufio.Reader
	out   io.Writer
	log   logrus.FieldLogger

	// ClearScreen efface le terminal avant chaque affichage.
	ClearScreen bool
}

func NewSession(b *game.Board, in io.Reader, out io.Writer, log logrus.FieldLogger) *Session {
	return &Session{
		board:       b,
		in:          bufio.NewReader(in),
		out:         out,
		log:         log,
		ClearScreen: true,
	}
}

// Run joue jusqu'à la victoire, l'explosion ou la fin de l'entrée.
func (s *Session) Run() (Result, error) {
	// plateau sans case sûre : gagné d'office
	if s.board.IsWon() {
		return Won, s.finish(msgWin)
	}

	for turn := 1; ; turn++ {
		if err := s.draw(); err != nil {
			return 0, err
		}
		c, err := s.readCoordinate()
		if err != nil {
			return 0, err
		}

		outcome := s.board.Reveal(c)
		s.log.WithFields(logrus.Fields{
			"turn":    turn,
			"x":       c.X,
			"y":       c.Y,
			"outcome": outcome,
		}).Debug("coup joué")

		if outcome == game.Detonated {
			s.log.WithField("turn", turn).Info("partie perdue")
			return Lost, s.finish(msgGameOver)
		}
		if s.board.IsWon() {
			s.log.WithField("turn", turn).Info("partie gagnée")
			return Won, s.finish(msgWin)
		}
	}
}

func (s *Session) draw() error {
	if s.ClearScreen {
		if _, err := io.WriteString(s.out, clearScreen); err != nil {
			return err
		}
	}
	return Render(s.out, s.board)
}

func (s *Session) finish(msgid string) error {
	if err := s.draw(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, tr(msgid))
	return err
}

// readCoordinate redemande tant que la saisie n'est pas une case valide.
func (s *Session) readCoordinate() (game.Coordinate, error) {
	for {
		if _, err := io.WriteString(s.out, tr(msgPrompt)); err != nil {
			return game.Coordinate{}, err
		}
		line, err := s.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return game.Coordinate{}, ErrInputClosed
			}
			return game.Coordinate{}, fmt.Errorf("read input: %w", err)
		}

		c, perr := ParseCoordinate(line, s.board.Width(), s.board.Height())
		if perr == nil {
			return c, nil
		}
		s.log.WithField("input", line).Debug("saisie invalide")
		if _, err := fmt.Fprintln(s.out, tr(msgInvalidInput)); err != nil {
			return game.Coordinate{}, err
		}
	}
}
