package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/mulcheck/internal/suite"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	tuiPassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	tuiFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// checkModel is the Bubble Tea model for browsing check results.
type checkModel struct {
	report   *suite.Report
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newCheckModel(rpt *suite.Report) checkModel {
	h := help.New()
	content := renderCheckContent(rpt)
	return checkModel{
		report:  rpt,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderCheckContent(rpt *suite.Report) string {
	var sb strings.Builder

	verdict := "PASS"
	if !rpt.Ok() {
		verdict = "FAIL"
	}
	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Mulcheck: %d check(s) run, %d failed (%s)",
			len(rpt.Results), rpt.Summary.Failed, verdict)))
	sb.WriteString("\n\n")

	if len(rpt.Results) == 0 {
		sb.WriteString(statusStyle.Render("No checks run."))
		sb.WriteString("\n")
		return sb.String()
	}

	rows := make([][]string, 0, len(rpt.Results))
	for _, res := range rpt.Results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		rows = append(rows, []string{
			res.Case.Name,
			fmt.Sprintf("%d", res.Case.A),
			fmt.Sprintf("%d", res.Case.B),
			fmt.Sprintf("%d", res.Case.Want),
			fmt.Sprintf("%d", res.Got),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col == 5 && row >= 0 && row < len(rows) {
				if rows[row][5] == "PASS" {
					return tuiPassStyle
				}
				return tuiFailStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("CASE", "A", "B", "WANT", "GOT", "STATUS").
		Rows(rows...)

	sb.WriteString(t.String())
	sb.WriteString("\n")

	for _, res := range rpt.Results {
		if res.Pass {
			continue
		}
		sb.WriteString(tuiFailStyle.Render(
			fmt.Sprintf("%s: multiply(%d, %d) = %d, want %d",
				res.Case.Name, res.Case.A, res.Case.B, res.Got, res.Case.Want)))
		sb.WriteString("\n")
	}

	if skipped := rpt.Summary.Total - len(rpt.Results); skipped > 0 {
		sb.WriteString(statusStyle.Render(
			fmt.Sprintf("%d check(s) skipped after first failure", skipped)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m checkModel) Init() tea.Cmd {
	return nil
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m checkModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveCheck launches the Bubble Tea TUI for browsing check
// results.
func runInteractiveCheck(rpt *suite.Report) error {
	model := newCheckModel(rpt)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
