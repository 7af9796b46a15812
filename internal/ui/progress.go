// Package ui renders interactive progress for workspace scans.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pragmata/internal/scan"
)

type fileItem struct {
	path    string
	status  string
	actions int
}

type eventMsg scan.Event
type doneMsg struct{}

type progressModel struct {
	title   string
	events  <-chan scan.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	doneN   int
	width   int
	done    bool
}

// NewProgressModel returns a Bubble Tea model that renders scan progress for
// the given files, consuming events until the channel closes.
func NewProgressModel(title string, files []string, events <-chan scan.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.applyEvent(scan.Event(msg))
		var cmd tea.Cmd
		if len(m.items) > 0 {
			cmd = m.prog.SetPercent(float64(m.doneN) / float64(len(m.items)))
		}
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) applyEvent(ev scan.Event) {
	idx, ok := m.index[ev.Path]
	if !ok {
		return
	}
	m.doneN++
	item := &m.items[idx]
	item.actions = ev.Actions
	switch {
	case ev.Err != nil:
		item.status = "failed"
	case ev.Actions == 0:
		item.status = "clean"
	default:
		item.status = fmt.Sprintf("%d fixes", ev.Actions)
	}
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %s (%d/%d)", m.spinner.View(), m.title, m.doneN, len(m.items))
	if m.done {
		header = fmt.Sprintf("done: %s", m.title)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		b.WriteString(fmt.Sprintf("  %s %s\n", runewidth.FillRight(name, nameWidth), item.status))
	}
	b.WriteString("\n")
	b.WriteString(m.prog.View())
	b.WriteString("\n")
	return b.String()
}

func truncate(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
