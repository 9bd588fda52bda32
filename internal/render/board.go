package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Renderer draws boards for a terminal with the given colour profile.
type Renderer struct {
	frame lipgloss.Style
	x     lipgloss.Style
	o     lipgloss.Style
	empty lipgloss.Style
	label lipgloss.Style
}

func New(w io.Writer, profile termenv.Profile) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &Renderer{
		frame: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		x:     r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		o:     r.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
		empty: r.NewStyle().Foreground(lipgloss.Color("#626262")),
		label: r.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	}
}

// Board draws the grid with 1-based row and column labels.
func (that *Renderer) Board(board tictactoe.Board) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := range tictactoe.Size {
		sb.WriteString(that.label.Render(fmt.Sprintf(" %d  ", col+1)))
	}
	sb.WriteString("\n")

	for row := range tictactoe.Size {
		if row > 0 {
			sb.WriteString("  ---+---+---\n")
		}

		sb.WriteString(that.label.Render(fmt.Sprintf("%d ", row+1)))
		for col := range tictactoe.Size {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + that.cell(board[row][col]) + " ")
		}

		if row < tictactoe.Size-1 {
			sb.WriteString("\n")
		}
	}

	return that.frame.Render(sb.String())
}

// Result describes a finished board.
func (that *Renderer) Result(board tictactoe.Board) string {
	switch board.Winner() {
	case tictactoe.PlayerX:
		return that.x.Render("X") + " wins"
	case tictactoe.PlayerO:
		return that.o.Render("O") + " wins"
	default:
		if board.IsFull() {
			return "Draw"
		}
		return "Game in progress"
	}
}

func (that *Renderer) cell(cell tictactoe.Cell) string {
	switch cell {
	case tictactoe.MarkX:
		return that.x.Render("X")
	case tictactoe.MarkO:
		return that.o.Render("O")
	default:
		return that.empty.Render(" ")
	}
}
