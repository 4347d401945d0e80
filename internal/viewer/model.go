// Package viewer is the terminal Gantt viewer. It holds a fetched snapshot
// and recomputes progress on a timer without refetching.
package viewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"project-tracker/pkg/progress"
)

// DefaultInterval is the progress recomputation period.
const DefaultInterval = 60 * time.Second

// Config configures a Model.
type Config struct {
	Title     string
	Tasks     []Item
	Projects  []Item
	Estimator *progress.Estimator
	Interval  time.Duration
	DayWidth  int
}

// Model is the bubbletea model of the viewer.
type Model struct {
	title        string
	tasks        []Item
	projects     []Item
	estimator    *progress.Estimator
	interval     time.Duration
	dayWidth     int
	showProjects bool
	refreshedAt  time.Time
	refreshes    int
}

type tickMsg time.Time

// New builds a Model. Missing interval and estimator fall back to DefaultInterval and the system clock.
func New(cfg Config) Model {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Estimator == nil {
		cfg.Estimator = progress.New(nil)
	}
	return Model{
		title:       cfg.Title,
		tasks:       cfg.Tasks,
		projects:    cfg.Projects,
		estimator:   cfg.Estimator,
		interval:    cfg.Interval,
		dayWidth:    cfg.DayWidth,
		refreshedAt: cfg.Estimator.Now(),
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "p":
			m.showProjects = !m.showProjects
			return m, nil
		case "r":
			return m.recompute(), nil
		}
	case tickMsg:
		return m.recompute(), m.tick()
	}
	return m, nil
}

func (m Model) recompute() Model {
	m.tasks = Recompute(m.estimator, m.tasks)
	m.projects = Recompute(m.estimator, m.projects)
	m.refreshedAt = m.estimator.Now()
	m.refreshes++
	return m
}

func (m Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  (progress computed %s)\n\n", m.title, m.refreshedAt.Format("15:04:05"))

	if m.showProjects {
		if len(m.projects) == 0 {
			b.WriteString("No projects.\n")
		} else {
			_ = RenderProjects(&b, m.projects)
		}
	} else {
		b.WriteString(RenderGantt(m.tasks, m.refreshedAt, m.dayWidth))
	}

	fmt.Fprintf(&b, "\ntab: gantt/projects • r: recompute • q: quit • auto every %s\n", m.interval)
	return b.String()
}

// Tasks returns the current task snapshot.
func (m Model) Tasks() []Item { return m.tasks }

// Projects returns the current project snapshot.
func (m Model) Projects() []Item { return m.projects }
