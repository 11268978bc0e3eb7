package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	playerOneColor = "2" // green
	playerTwoColor = "4" // blue
)

// Renderer draws boards on a terminal.
type Renderer struct {
	output *termenv.Output
	clear  bool
}

// NewRenderer - colors marks and clears the screen before each board when
// styled is true; otherwise writes plain text only.
func NewRenderer(w io.Writer, styled bool) *Renderer {
	if !styled {
		return &Renderer{
			output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)),
		}
	}

	return &Renderer{
		output: termenv.NewOutput(w),
		clear:  true,
	}
}

func (that *Renderer) Draw(board entity.Board) {
	if that.clear {
		that.output.ClearScreen()
	}

	var sb strings.Builder
	for _, row := range board {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(that.mark(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	_, _ = io.WriteString(that.output, sb.String())
}

func (that *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(that.output, a...)
}

func (that *Renderer) mark(cell entity.Cell) string {
	switch cell {
	case entity.PlayerOne:
		return that.output.String(cell.Mark()).Foreground(that.output.Color(playerOneColor)).String()
	case entity.PlayerTwo:
		return that.output.String(cell.Mark()).Foreground(that.output.Color(playerTwoColor)).String()
	default:
		return cell.Mark()
	}
}
