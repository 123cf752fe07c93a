package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

var (
	pegColor   = color.New(color.FgGreen, color.Bold)
	emptyColor = color.New(color.Faint)
	fromColor  = color.New(color.FgRed)
	toColor    = color.New(color.FgYellow, color.Bold)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// renderBoard draws the layout with hole ids. Pegs are bright, empty holes
// faint. When last is set its source holes and landing hole are highlighted.
func renderBoard(w io.Writer, l *domain.Layout, pegs domain.PegSet, last *domain.Move) {
	for _, row := range l.Grid() {
		var b strings.Builder
		for _, h := range row {
			if h == domain.NoHole {
				b.WriteString("    ")
				continue
			}
			cell := fmt.Sprintf("%3d", h)
			if pegs.Contains(h) {
				cell += "●"
			} else {
				cell += "·"
			}
			switch {
			case last != nil && h == last.To:
				b.WriteString(toColor.Sprint(cell))
			case last != nil && (h == last.From || h == last.Over):
				b.WriteString(fromColor.Sprint(cell))
			case pegs.Contains(h):
				b.WriteString(pegColor.Sprint(cell))
			default:
				b.WriteString(emptyColor.Sprint(cell))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func renderMoves(w io.Writer, moves []domain.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(w, "no legal moves")
		return
	}
	for i, m := range moves {
		fmt.Fprintf(w, "%3d. %s\n", i+1, m)
	}
}

func renderTitle(w io.Writer, format string, args ...any) {
	titleColor.Fprintf(w, format+"\n", args...)
}
