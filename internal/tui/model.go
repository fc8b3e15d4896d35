package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update reports one converted file.
type Update struct {
	Index   int
	Total   int
	Path    string
	Success bool
}

// Model is the interactive progress view of a batch run.
type Model struct {
	updates    <-chan Update
	cancel     context.CancelFunc
	bar        progress.Model
	started    time.Time
	width      int
	total      int
	processed  int
	failed     int
	current    string
	cancelling bool
	quitting   bool
}

type doneMsg struct{}

type updateMsg Update

// NewModel creates the view. cancel is called when the user asks to stop;
// the view keeps running until updates is closed.
func NewModel(total int, updates <-chan Update, cancel context.CancelFunc) Model {
	return Model{
		updates: updates,
		cancel:  cancel,
		bar:     progress.New(progress.WithGradient(string(ColorAccent), string(ColorAccentAlt)), progress.WithWidth(40)),
		started: time.Now(),
		total:   total,
	}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.processed = msg.Index
		if msg.Total > 0 {
			m.total = msg.Total
		}
		if !msg.Success {
			m.failed++
		}
		m.current = msg.Path
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.cancelling && m.cancel != nil {
				m.cancel()
			}
			m.cancelling = true
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.processed) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)

	lines := []string{
		titleStyle.Render("csv2excel"),
		labelStyle.Render(fmt.Sprintf("Files: %d/%d", m.processed, m.total)) + dimStyle.Render(fmt.Sprintf("  failed:%d", m.failed)),
	}
	if m.current != "" {
		lines = append(lines, dimStyle.Render("Last: "+filepath.Base(m.current)))
	}
	lines = append(lines,
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		m.bar.ViewAs(ratio),
	)
	if m.cancelling {
		lines = append(lines, warnStyle.Render("Cancelling after the current file..."))
	} else {
		lines = append(lines, dimStyle.Render("q: cancel"))
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan Update) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func barWidth(termWidth int) int {
	w := termWidth - 10
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
