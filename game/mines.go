package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrTooManyMines      = errors.New("mineCount exceeds grid capacity")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrNegativeMineCount = errors.New("mine count must not be negative")
)

// Source fournit l'aléa pour placer les mines (*rand.Rand convient).
type Source interface {
	Intn(n int) int
}

// MineSet est l'ensemble immuable des mines d'une partie.
type MineSet struct {
	set mapset.Set[Coordinate]
}

// NewMineSet construit un MineSet ; les doublons sont fusionnés.
func NewMineSet(coords ...Coordinate) MineSet {
	s := mapset.New[Coordinate]()
	for _, c := range coords {
		s.Put(c)
	}
	return MineSet{set: s}
}

func (m MineSet) Has(c Coordinate) bool { return m.set.Has(c) }

func (m MineSet) Len() int { return m.set.Size() }

// Coordinates retourne les mines triées ligne par ligne.
func (m MineSet) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, m.Len())
	m.set.Each(func(c Coordinate) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// GenerateMines place count mines distinctes au hasard sur une grille
// width x height. Chaque tirage couvre toute la grille et est rejeté si
// la case est déjà prise.
func GenerateMines(rng Source, count, width, height int) (MineSet, error) {
	if width < 1 || height < 1 {
		return MineSet{}, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if count < 0 {
		return MineSet{}, fmt.Errorf("%d: %w", count, ErrNegativeMineCount)
	}
	if count > width*height {
		return MineSet{}, fmt.Errorf("%d mines on %dx%d: %w", count, width, height, ErrTooManyMines)
	}

	s := mapset.New[Coordinate]()
	for s.Size() < count {
		c := Coordinate{X: rng.Intn(width), Y: rng.Intn(height)}
		if !s.Has(c) {
			s.Put(c)
		}
	}
	return MineSet{set: s}, nil
}
