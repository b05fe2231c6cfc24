package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	reportTitle    = "各种倒计时"
	yearlyIndex    = 3
	fallbackWidth  = 80
	minimumBarSize = 1
)

// --- Lipgloss Styles ---
var (
	titlePanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleTextStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	yearMapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(yearlyColor))
)

// barWidth sizes the bar to a fraction of the terminal.
func barWidth(termWidth, divisor int) int {
	if termWidth <= 0 {
		termWidth = fallbackWidth
	}
	return max(minimumBarSize, termWidth/divisor)
}

// barRatio drops the fractional percent before filling, so 99.9% never
// draws a full bar.
func barRatio(percent float64) float64 {
	return math.Trunc(percent) / 100
}

func renderEntry(e StatEntry, width int) string {
	color := lipgloss.Color(e.Color)
	text := lipgloss.NewStyle().Foreground(color)

	bar := progress.New(
		progress.WithSolidFill(e.Color),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		text.Bold(true).Render(e.Label),
		text.Render(e.Description),
		bar.ViewAs(barRatio(e.Percent)),
		text.Render(fmt.Sprintf("(%.1f%%)", e.Percent)),
	)
}

func renderReport(r Report, cfg Config, termWidth int) string {
	width := barWidth(termWidth, cfg.BarDivisor)

	var b strings.Builder
	b.WriteString(titlePanelStyle.Render(titleTextStyle.Render(reportTitle)))
	b.WriteString("\n")
	if r.Header != "" {
		b.WriteString(headerStyle.Render(r.Header))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, e := range r.Entries {
		b.WriteString(renderEntry(e, width))
		b.WriteString("\n")
		if cfg.YearMap && i == yearlyIndex {
			b.WriteString(yearMapStyle.Render(yearMap(r.Now)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Model is the live Bubble Tea view. Each refresh tick carries the one clock
// sample every entry of that frame is computed from.
type Model struct {
	config          Config
	builder         *StatsBuilder
	report          Report
	width           int
	refreshInterval time.Duration
	err             error
}

func InitialModel(cfg Config, builder *StatsBuilder) Model {
	return Model{
		config:          cfg,
		builder:         builder,
		refreshInterval: time.Duration(cfg.RefreshIntervalMs) * time.Millisecond,
	}
}

// Err reports the failure that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

type refreshTickMsg time.Time

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return refreshTickMsg(time.Now())
	}
}

func (m *Model) refreshTickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case refreshTickMsg:
		report, err := m.builder.Report(time.Time(msg), m.config.Extras)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.report = report
		return m, m.refreshTickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.err != nil {
		return ""
	}
	if m.report.Now.IsZero() {
		return "Loading..."
	}

	return renderReport(m.report, m.config, m.width) +
		footerStyle.Render(fmt.Sprintf("updated %s · q to quit", m.report.Now.Format("15:04:05")))
}
