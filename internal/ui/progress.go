// Package ui renders the build pipeline's progress as an interactive
// terminal view when stdout is a TTY.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zigcore/internal/compiler"
)

// Status is the state of one pipeline stage.
type Status uint8

const (
	StatusPending Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports a stage transition. Detail is shown alongside an error
// status (typically the diagnostic count).
type Event struct {
	Stage  compiler.Stage
	Status Status
	Detail string
}

type eventMsg Event
type doneMsg struct{}

type stageItem struct {
	stage  compiler.Stage
	status string
	detail string
}

type progressModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	prog    progress.Model
	items   []stageItem
	index   map[compiler.Stage]int
	width   int
	done    bool
}

var allStages = []compiler.Stage{
	compiler.StageParse,
	compiler.StageAnalyze,
	compiler.StageLower,
	compiler.StageVerify,
	compiler.StageEmit,
	compiler.StageLink,
}

// NewProgressModel returns a Bubble Tea model rendering the build pipeline's
// stage-by-stage progress as events arrive on the channel.
func NewProgressModel(title string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 60

	items := make([]stageItem, 0, len(allStages))
	index := make(map[compiler.Stage]int, len(allStages))
	for i, stage := range allStages {
		items = append(items, stageItem{stage: stage, status: "queued"})
		index[stage] = i
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

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
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
		updated, cmd := m.prog.Update(msg)
		m.prog = updated.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, item := range m.items {
		name := stageName(item.stage)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
		line := fmt.Sprintf("  %s %s", statusStyled, name)
		if item.detail != "" {
			line += " (" + item.detail + ")"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
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

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	idx, ok := m.index[ev.Stage]
	if !ok {
		return nil
	}
	m.items[idx].status = statusLabel(ev.Status)
	m.items[idx].detail = ev.Detail

	completed := 0.0
	for _, item := range m.items {
		if item.status == "done" || item.status == "error" {
			completed++
		}
	}
	return m.prog.SetPercent(completed / float64(len(m.items)))
}

func stageName(s compiler.Stage) string {
	switch s {
	case compiler.StageParse:
		return "parse"
	case compiler.StageAnalyze:
		return "analyze"
	case compiler.StageLower:
		return "lower"
	case compiler.StageVerify:
		return "verify"
	case compiler.StageEmit:
		return "emit"
	case compiler.StageLink:
		return "link"
	default:
		return string(s)
	}
}

func statusLabel(s Status) string {
	switch s {
	case StatusPending:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "working":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}
