package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/glgrep/internal/ops"
	"github.com/altinukshini/glgrep/internal/ui"
)

// UpdateMsg carries one completed search task into the view. Sent from the
// orchestrator's progress callback via Program.Send.
type UpdateMsg ops.Progress

// DoneMsg tells the view the whole fan-out has joined.
type DoneMsg struct{}

type Model struct {
	spinner   spinner.Model
	bar       progress.Model
	completed int
	total     int
	last      string
	failed    int
	done      bool
}

func New(total int) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(ui.StyleInfo),
	)
	return Model{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   total,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateMsg:
		m.completed = msg.Completed
		m.total = msg.Total
		m.last = msg.Project
		if msg.Err != nil {
			m.failed++
		}
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 24
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.completed) / float64(m.total)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %d/%d",
		m.spinner.View(), m.bar.ViewAs(pct), m.completed, m.total)
	if m.last != "" {
		fmt.Fprintf(&b, " %s", ui.StyleMuted.Render("Searching in "+m.last))
	}
	if m.failed > 0 {
		fmt.Fprintf(&b, " %s", ui.StyleError.Render(fmt.Sprintf("(%d failed)", m.failed)))
	}
	b.WriteString("\n")
	return b.String()
}
