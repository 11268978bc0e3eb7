package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// winScore is the score of a win found at depth zero. Deeper wins score
// less, so the computer prefers quick wins and slow losses.
const winScore = 10

// Result is the outcome of a search. Either part may be absent: a terminal
// board has a score but no move, an unscorable board has neither.
type Result struct {
	score    int
	move     entity.Move
	hasScore bool
	hasMove  bool
}

func (that Result) Score() (int, bool) {
	return that.score, that.hasScore
}

// Move is the best move at the searched level. Only the top-level result's
// move is meant to be played.
func (that Result) Move() (entity.Move, bool) {
	return that.move, that.hasMove
}

// BestMove searches for the computer's reply on a board where the human has
// just moved. An absent move means the board is already terminal.
func BestMove(board entity.Board) Result {
	return Search(board, entity.Maximize, entity.PlayerTwo, 0)
}

// Search runs a full minimax over every continuation of board. player places
// the next mark; mode alternates with every ply and depth grows by one.
// The computer (PlayerTwo) maximizes.
//
// Candidates are tried in row-major order and only a strictly better score
// replaces the current best, so ties keep the earliest move.
func Search(board entity.Board, mode entity.SearchMode, player entity.Cell, depth int) Result {
	if result, ok := terminalResult(Evaluate(board), depth); ok {
		return result
	}

	var best Result
	for _, move := range board.EmptyCells() {
		// board is a value: each branch gets its own copy
		child := Search(board.Place(move, player), mode.Opposite(), player.Opponent(), depth+1)

		score, ok := child.Score()
		if !ok {
			continue
		}

		if !best.hasScore || isBetter(mode, score, best.score) {
			best = Result{score: score, move: move, hasScore: true, hasMove: true}
		}
	}

	return best
}

// terminalResult scores a finished board. ok is false while the game goes on.
func terminalResult(status entity.GameStatus, depth int) (Result, bool) {
	switch status.Kind {
	case entity.Tie:
		return Result{score: 0, hasScore: true}, true
	case entity.Win:
		switch status.Winner {
		case entity.PlayerTwo:
			return Result{score: winScore - depth, hasScore: true}, true
		case entity.PlayerOne:
			return Result{score: -winScore + depth, hasScore: true}, true
		default:
			return Result{}, true
		}
	default:
		return Result{}, false
	}
}

func isBetter(mode entity.SearchMode, score, best int) bool {
	if mode == entity.Maximize {
		return score > best
	}
	return score < best
}
