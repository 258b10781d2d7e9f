package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/crosswordgen/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintPuzzle outputs a puzzle. In text format a clueless puzzle shows
// blank cells and answer lengths instead of answers.
func (o *Output) PrintPuzzle(p *response.Puzzle, clueless bool) {
	if o.format == "json" {
		o.printJSON(p)
		return
	}
	o.printPuzzle(p, clueless)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *response.Puzzle:
		o.printPuzzle(v, false)
	case response.WordList:
		o.printWordList(v)
	case response.WordListNames:
		o.printWordListNames(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPuzzle(p *response.Puzzle, clueless bool) {
	if p.ID != "" {
		fmt.Fprintf(o.w, "Puzzle: %s\n", p.ID)
	}
	fmt.Fprintf(o.w, "Size: %d×%d, %d words\n\n", p.Rows, p.Cols, len(p.WordsUsed))

	board := p.Board
	if clueless {
		board = p.Clueless
	}
	for _, line := range board {
		fmt.Fprintln(o.w, line)
	}

	o.printClues("Across", p.Across, clueless)
	o.printClues("Down", p.Down, clueless)

	if len(p.WordsRejected) > 0 {
		fmt.Fprintf(o.w, "\nRejected: %s\n", strings.Join(p.WordsRejected, ", "))
	}
}

func (o *Output) printClues(title string, clues []response.Clue, clueless bool) {
	if len(clues) == 0 {
		return
	}
	fmt.Fprintf(o.w, "\n%s\n", title)
	for _, c := range clues {
		if clueless {
			fmt.Fprintf(o.w, "  %d. (%d)\n", c.Number, len(c.Word))
		} else {
			fmt.Fprintf(o.w, "  %d. %s\n", c.Number, c.Word)
		}
	}
}

func (o *Output) printWordList(l response.WordList) {
	fmt.Fprintf(o.w, "Word list: %s (%d words)\n", l.Name, len(l.Words))
	fmt.Fprintf(o.w, "Updated: %s\n", l.UpdatedAt.Format("2006-01-02 15:04:05"))
	for _, w := range l.Words {
		fmt.Fprintf(o.w, "  %s\n", w)
	}
}

func (o *Output) printWordListNames(n response.WordListNames) {
	if len(n.Names) == 0 {
		fmt.Fprintln(o.w, "No word lists")
		return
	}
	for _, name := range n.Names {
		fmt.Fprintln(o.w, name)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
