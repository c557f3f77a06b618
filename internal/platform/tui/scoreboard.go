package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/storage"
)

const (
	cardWidth = 26
	topRuns   = 50
)

// variant is one scored mode of the runner.
type variant struct {
	id    string
	title string
}

var variants = []variant{
	{id: geodash.GameID, title: "Progressive"},
	{id: geodash.ClassicGameID, title: "Classic"},
}

// variantBoard holds what the scoreboard knows about one variant.
type variantBoard struct {
	variant
	best int // From the persisted high score record
	runs int
	avg  float64
	last string
	top  []storage.ScoreEntry
	err  error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Switch}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best score and run history of both variants.
type ScoreboardModel struct {
	boards    []variantBoard
	selected  int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Back hands control to the parent model instead of quitting
}

// NewScoreboardModel creates a scoreboard opened on the progressive variant.
func NewScoreboardModel(store storage.Backend, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.boards = make([]variantBoard, len(variants))
	for i, v := range variants {
		m.boards[i] = loadBoard(store, v)
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// newEmbeddedScoreboard creates a scoreboard shown inside another model,
// opened on the variant being played.
func newEmbeddedScoreboard(store storage.Backend, gameID string, width, height int) ScoreboardModel {
	m := NewScoreboardModel(store, width, height)
	m.embedded = true
	for i, b := range m.boards {
		if b.id == gameID {
			m.selected = i
			m.updateTableRows()
			break
		}
	}
	return m
}

// loadBoard reads the high score record, the aggregates and the top runs of v.
func loadBoard(store storage.Backend, v variant) variantBoard {
	b := variantBoard{variant: v}
	if store == nil {
		return b
	}

	best, err := store.HighScore(v.id)
	if err != nil {
		b.err = err
		return b
	}
	b.best = best

	stats, err := store.GetGameStats(v.id)
	if err != nil {
		b.err = err
		return b
	}
	b.runs, b.avg = stats.GamesCount, stats.AvgScore
	if !stats.LastPlayed.IsZero() {
		b.last = stats.LastPlayed.Format("Jan 02 15:04")
	}

	b.top, b.err = store.TopScores(v.id, topRuns)
	return b
}

func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := m.width - 24
	if dateWidth > 18 {
		dateWidth = 18
	}
	if dateWidth < 12 {
		dateWidth = 12
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-14, 3)), // Title, cards and help take the rest
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) updateTableRows() {
	top := m.boards[m.selected].top
	rows := make([]table.Row, len(top))
	for i, s := range top {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the id of the variant whose runs are listed.
func (m ScoreboardModel) Selected() string {
	return m.boards[m.selected].id
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.selected = (m.selected + 1) % len(m.boards)
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the variant cards above the run table of the selected one.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(core.ColorAccent.Hex())).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("GEOMETRY DASH - HIGH SCORES", m.width)))
	b.WriteString("\n")

	cards := make([]string, len(m.boards))
	for i, board := range m.boards {
		cards[i] = m.renderCard(board, i == m.selected)
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, cards...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderRuns()), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderCard renders the summary of one variant.
func (m ScoreboardModel) renderCard(board variantBoard, selected bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(cardWidth).
		Padding(0, 1).
		MarginRight(1)
	head := lipgloss.NewStyle().Bold(true)
	if selected {
		style = style.BorderForeground(lipgloss.Color(core.ColorAccent.Hex()))
		head = head.Foreground(lipgloss.Color(core.ColorAccent.Hex()))
	}

	lines := []string{head.Render(board.title)}
	if board.err != nil {
		lines = append(lines, "scores unavailable")
		return style.Render(strings.Join(lines, "\n"))
	}
	lines = append(lines,
		fmt.Sprintf("Best: %d", board.best),
		fmt.Sprintf("Runs: %d", board.runs),
	)
	if board.runs > 0 {
		lines = append(lines, fmt.Sprintf("Avg: %.0f", board.avg), "Last: "+board.last)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderRuns renders the table or empty message.
func (m ScoreboardModel) renderRuns() string {
	if len(m.boards[m.selected].top) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded yet.\nClear an obstacle to set a score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user pressed back, false if quitting.
func RunScoreboard(store storage.Backend, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// centerText pads text on the left so it sits centered in width columns.
// Multi-line text is padded as a block.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-w)/2)
	return pad + strings.ReplaceAll(text, "\n", "\n"+pad)
}
