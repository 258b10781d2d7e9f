// Package tui is the interactive play screen: it generates a puzzle in the
// background, draws the board and moves a cursor over it.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/generator"
	"github.com/mcoot/crosswordgen/internal/services/navigator"
)

// chromeLines is the number of screen lines not available to the board
const chromeLines = 4

var (
	boardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	neighborStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Config controls the play screen
type Config struct {
	Words   []string
	Options generator.Options
	// FitToWindow bounds generation by the terminal size wherever Options
	// leaves a bound at zero
	FitToWindow bool
}

type puzzleMsg struct {
	puzzle *generator.Puzzle
	err    error
}

// Model is the bubbletea model for the play screen
type Model struct {
	ctx       context.Context
	generator generator.ServiceInterface
	cfg       Config

	width  int
	height int

	generating  bool
	puzzle      *generator.Puzzle
	nav         *navigator.Navigator
	showAnswers bool
	err         error
}

// New creates the play screen model
func New(ctx context.Context, gen generator.ServiceInterface, cfg Config) Model {
	return Model{
		ctx:        ctx,
		generator:  gen,
		cfg:        cfg,
		generating: !cfg.FitToWindow,
	}
}

// Init starts generation, unless it has to wait for the window size
func (m Model) Init() tea.Cmd {
	if m.cfg.FitToWindow {
		return nil
	}
	return m.startGeneration()
}

func (m *Model) startGeneration() tea.Cmd {
	m.generating = true
	m.err = nil

	opts := m.cfg.Options
	if m.cfg.FitToWindow {
		if opts.MaxHeight == 0 {
			opts.MaxHeight = max(m.height-chromeLines, 0)
		}
		if opts.MaxWidth == 0 {
			opts.MaxWidth = m.width
		}
	}

	ctx, gen, words := m.ctx, m.generator, m.cfg.Words
	return func() tea.Msg {
		puzzle, err := gen.Generate(ctx, words, opts)
		return puzzleMsg{puzzle: puzzle, err: err}
	}
}

// Update handles key presses, resizes and finished generations
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.width == 0 && m.height == 0
		m.width, m.height = msg.Width, msg.Height
		if first && m.cfg.FitToWindow && !m.generating && m.puzzle == nil {
			return m, m.startGeneration()
		}
		return m, nil

	case puzzleMsg:
		m.generating = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		nav, err := navigator.New(msg.puzzle.RenderedBoard())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.puzzle, m.nav = msg.puzzle, nav
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.generating {
			return m, nil
		}
		return m, m.startGeneration()
	case "s":
		m.showAnswers = !m.showAnswers
		return m, nil
	}

	if m.nav == nil {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		m.nav.MoveUp()
	case "down", "j":
		m.nav.MoveDown()
	case "left", "h":
		m.nav.MoveLeft()
	case "right", "l":
		m.nav.MoveRight()
	}
	return m, nil
}

// View draws the screen
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("error: "+m.err.Error()) + "\n\n" + statusStyle.Render("r retry · q quit")
	}
	if m.generating || m.puzzle == nil {
		return "generating…"
	}

	var b strings.Builder
	b.WriteString(m.renderBoard())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	return b.String()
}

// span is a highlighted run of characters on one board line
type span struct {
	col, length int
	style       lipgloss.Style
}

func (m Model) renderBoard() string {
	lines := m.puzzle.Clueless
	if m.showAnswers {
		lines = m.puzzle.Board
	}

	highlights := make(map[int][]span)
	for _, nb := range m.nav.Neighbors() {
		n := len([]rune(nb.Text))
		if n == 0 {
			continue
		}
		highlights[nb.Row] = append(highlights[nb.Row], span{col: nb.Col, length: n, style: neighborStyle})
	}
	loc := m.nav.Loc()
	highlights[loc.Row] = append(highlights[loc.Row], span{col: loc.Col, length: 3, style: cursorStyle})

	rendered := make([]string, len(lines))
	for y, line := range lines {
		rendered[y] = renderLine([]rune(line), highlights[y])
	}
	return strings.Join(rendered, "\n")
}

// renderLine styles the given spans of a line and the rest with boardStyle.
// Later spans win where spans overlap.
func renderLine(line []rune, spans []span) string {
	styles := make([]*lipgloss.Style, len(line))
	for i := range spans {
		sp := &spans[i]
		for x := sp.col; x < sp.col+sp.length && x < len(line); x++ {
			if x >= 0 {
				styles[x] = &sp.style
			}
		}
	}

	var b strings.Builder
	for start := 0; start < len(line); {
		end := start + 1
		for end < len(line) && styles[end] == styles[start] {
			end++
		}
		style := boardStyle
		if styles[start] != nil {
			style = *styles[start]
		}
		b.WriteString(style.Render(string(line[start:end])))
		start = end
	}
	return b.String()
}

func (m Model) statusLine() string {
	pos := m.nav.Position()

	var clues []string
	for _, entry := range m.nav.CluesAt() {
		dir := "across"
		if entry.Orientation == model.Vertical {
			dir = "down"
		}
		clues = append(clues, fmt.Sprintf("%d %s", entry.Number, dir))
	}

	answers := "show"
	if m.showAnswers {
		answers = "hide"
	}
	return fmt.Sprintf("row %d col %d · %s · %d/%d words · arrows move · r regenerate · s %s answers · q quit",
		pos.Row+1, pos.Col+1, strings.Join(clues, ", "),
		len(m.puzzle.WordsUsed), len(m.puzzle.WordsUsed)+len(m.puzzle.WordsRejected), answers)
}

// Position returns the cursor position, or false before a puzzle is ready
func (m Model) Position() (model.Position, bool) {
	if m.nav == nil {
		return model.Position{}, false
	}
	return m.nav.Position(), true
}

// Puzzle returns the current puzzle, or nil while none is ready
func (m Model) Puzzle() *generator.Puzzle {
	return m.puzzle
}

// Run shows the play screen until the user quits or ctx is cancelled
func Run(ctx context.Context, gen generator.ServiceInterface, cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, gen, cfg), opts...).Run()
	return err
}
