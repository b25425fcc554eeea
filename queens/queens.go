// Package queens is an N-Queens client for the bestfirst engine. A path is
// the list of squares holding a queen, one queen per row.
package queens

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/pdrpinto/bestfirst"
)

// Penalty is the step cost PenalisedCost charges for a queen that is attacked.
const Penalty = 1 << 20

var (
	ErrBoardSize   = errors.New("queens: board size must be positive")
	ErrOffBoard    = errors.New("queens: fixed queen is off the board")
	ErrRowTaken    = errors.New("queens: two fixed queens share a row")
	ErrFixedAttack = errors.New("queens: fixed queens attack each other")
)

// Square is a board position.
type Square struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (s Square) String() string { return fmt.Sprintf("(%d, %d)", s.Row, s.Col) }

// Attacks reports whether two queens on s and other attack each other.
// Queens on the same row are not considered; the search never places two.
func (s Square) Attacks(other Square) bool {
	return s.Col == other.Col || abs(s.Row-other.Row) == abs(s.Col-other.Col)
}

// Board describes an N x N board with optional pre-placed queens.
type Board struct {
	N     int
	Fixed []Square
}

// NewBoard validates the size and the fixed queens.
func NewBoard(n int, fixed ...Square) (Board, error) {
	if n <= 0 {
		return Board{}, ErrBoardSize
	}
	board := Board{N: n, Fixed: fixed}
	if board.OffBoard(fixed) {
		return Board{}, ErrOffBoard
	}
	rows := lo.Map(fixed, func(s Square, _ int) int { return s.Row })
	if len(lo.Uniq(rows)) != len(rows) {
		return Board{}, ErrRowTaken
	}
	if conflicts(fixed) > 0 {
		return Board{}, ErrFixedAttack
	}
	return board, nil
}

// InitialPath is where the search starts: the fixed queens, in order.
func (b Board) InitialPath() []Square {
	return append([]Square(nil), b.Fixed...)
}

// OffBoard reports whether any square lies outside the board.
func (b Board) OffBoard(path []Square) bool {
	return lo.SomeBy(path, func(s Square) bool {
		return s.Row < 0 || s.Row >= b.N || s.Col < 0 || s.Col >= b.N
	})
}

// nextRow is the first row without a queen, or N when the board is full.
func (b Board) nextRow(path []Square) int {
	taken := lo.SliceToMap(path, func(s Square) (int, struct{}) { return s.Row, struct{}{} })
	for row := 0; row < b.N; row++ {
		if _, ok := taken[row]; !ok {
			return row
		}
	}
	return b.N
}

// Expand places a queen in every column of the next free row.
func (b Board) Expand(candidate *bestfirst.Candidate[Square]) []Square {
	row := b.nextRow(candidate.Path())
	if row >= b.N {
		return nil
	}
	next := make([]Square, 0, b.N)
	for col := 0; col < b.N; col++ {
		next = append(next, Square{Row: row, Col: col})
	}
	return next
}

// ExpandPromising is Expand restricted to squares no placed queen attacks.
func (b Board) ExpandPromising(candidate *bestfirst.Candidate[Square]) []Square {
	path := candidate.Path()
	return lo.Filter(b.Expand(candidate), func(s Square, _ int) bool {
		return !lo.SomeBy(path, s.Attacks)
	})
}

// IsGoal holds when N queens are placed on distinct rows and none attack.
func (b Board) IsGoal(candidate *bestfirst.Candidate[Square]) bool {
	path := candidate.Path()
	if len(path) != b.N || b.OffBoard(path) {
		return false
	}
	rows := lo.Uniq(lo.Map(path, func(s Square, _ int) int { return s.Row }))
	if len(rows) != b.N {
		return false
	}
	return conflicts(path) == 0
}

// UnitCost charges 1 per queen.
func (b Board) UnitCost(_, _ *bestfirst.Candidate[Square]) float64 { return 1 }

// PenalisedCost charges 1 per queen, or Penalty when the new queen is attacked.
func (b Board) PenalisedCost(current, successor *bestfirst.Candidate[Square]) float64 {
	placed, ok := successor.Last()
	if !ok {
		return 1
	}
	if lo.SomeBy(current.Path(), placed.Attacks) {
		return Penalty
	}
	return 1
}

// Zero is the null heuristic.
func (b Board) Zero(*bestfirst.Candidate[Square]) float64 { return 0 }

// RemainingQueens is the number of queens still to place. It is exact for
// conflict-free completions under UnitCost, hence admissible.
func (b Board) RemainingQueens(candidate *bestfirst.Candidate[Square]) float64 {
	return float64(max(b.N-candidate.Len(), 0))
}

// Conflicts counts attacking pairs among the placed queens.
func (b Board) Conflicts(candidate *bestfirst.Candidate[Square]) float64 {
	return float64(conflicts(candidate.Path()))
}

// Heuristic looks up a heuristic by name: "zero", "remaining" or "conflicts".
func (b Board) Heuristic(name string) (bestfirst.Heuristic[Square], error) {
	switch name {
	case "", "zero":
		return b.Zero, nil
	case "remaining":
		return b.RemainingQueens, nil
	case "conflicts":
		return b.Conflicts, nil
	}
	return nil, fmt.Errorf("queens: unknown heuristic %q", name)
}

func conflicts(path []Square) int {
	count := 0
	for i := range path {
		for j := i + 1; j < len(path); j++ {
			if path[i].Attacks(path[j]) {
				count++
			}
		}
	}
	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
