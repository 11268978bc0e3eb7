package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinLines are the eight winning lines: rows, columns, then both diagonals.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluate classifies the board. Player one's lines are checked before
// player two's, so a board where both have a line reports Win(PlayerOne).
func Evaluate(board entity.Board) entity.GameStatus {
	for _, player := range [...]entity.Cell{entity.PlayerOne, entity.PlayerTwo} {
		if hasLine(board, player) {
			return entity.WinFor(player)
		}
	}

	for _, row := range board {
		for _, cell := range row {
			if cell == entity.Empty {
				return entity.UnfinishedStatus()
			}
		}
	}

	return entity.TieStatus()
}

func hasLine(board entity.Board, player entity.Cell) bool {
	for _, line := range WinLines {
		if isLineOf(board, line, player) {
			return true
		}
	}

	return false
}

// isLineOf - checks whether every cell of the line belongs to player.
func isLineOf(board entity.Board, line [3]entity.Move, player entity.Cell) bool {
	for _, move := range line {
		if board.At(move) != player {
			return false
		}
	}

	return true
}
