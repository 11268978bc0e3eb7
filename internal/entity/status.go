package entity

// StatusKind tags the result of evaluating a board.
type StatusKind int

const (
	Unfinished StatusKind = iota
	Win
	Tie
)

// GameStatus is Win(Winner), Tie or Unfinished. Winner is Empty unless Kind is Win.
type GameStatus struct {
	Kind   StatusKind
	Winner Cell
}

func WinFor(player Cell) GameStatus {
	return GameStatus{Kind: Win, Winner: player}
}

func TieStatus() GameStatus {
	return GameStatus{Kind: Tie}
}

func UnfinishedStatus() GameStatus {
	return GameStatus{Kind: Unfinished}
}

// IsTerminal reports whether the game is over.
func (that GameStatus) IsTerminal() bool {
	return that.Kind != Unfinished
}

func (that GameStatus) String() string {
	switch that.Kind {
	case Win:
		return "win(" + that.Winner.String() + ")"
	case Tie:
		return "tie"
	default:
		return "unfinished"
	}
}

// SearchMode says whether a search level looks for the highest or the lowest score.
type SearchMode int

const (
	Maximize SearchMode = iota
	Minimize
)

func (that SearchMode) Opposite() SearchMode {
	if that == Maximize {
		return Minimize
	}
	return Maximize
}

func (that SearchMode) String() string {
	if that == Maximize {
		return "maximize"
	}
	return "minimize"
}
