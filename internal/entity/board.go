package entity

import "fmt"

// BoardSize is the width and height of the board.
const BoardSize = 3

// Cell is the content of one square of the board.
type Cell int

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Mark returns the symbol drawn for the cell.
func (that Cell) Mark() string {
	switch that {
	case PlayerOne:
		return "x"
	case PlayerTwo:
		return "o"
	default:
		return " "
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "player 1"
	case PlayerTwo:
		return "player 2"
	default:
		return "empty"
	}
}

// Move identifies a square by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a snapshot of the grid. It is a value type: copies never alias.
type Board [BoardSize][BoardSize]Cell

// Place returns a copy of the board with cell written at move.
// The receiver is not modified.
func (that Board) Place(move Move, cell Cell) Board {
	that[move.Row][move.Col] = cell
	return that
}

func (that Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

func (that Board) IsEmptyAt(move Move) bool {
	return that.At(move) == Empty
}

// EmptyCells lists the free squares in row-major order.
func (that Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) CountOf(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}
