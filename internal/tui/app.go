package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonvc/tripbudget/internal/tools"
)

type mode int

const (
	modeSummary mode = iota
	modeReport
	modeEntry
)

var tabModes = []mode{modeSummary, modeReport}

func tabLabel(m mode) string {
	switch m {
	case modeSummary:
		return "Expenses"
	case modeReport:
		return "Budget Report"
	default:
		return ""
	}
}

type clearedMsg struct {
	res tools.Result
}

type App struct {
	invoker        tools.Invoker
	transportTypes []string
	mode           mode
	tabIndex       int
	width, height  int
	err            error
	statusMsg      string
	confirmClear   bool

	summary summaryModel
	report  reportModel
	entry   entryModel
}

// NewApp drives the tools through inv. transportTypes feeds the hint of the
// transport form.
func NewApp(inv tools.Invoker, transportTypes []string) *App {
	return &App{
		invoker:        inv,
		transportTypes: transportTypes,
		mode:           modeSummary,
	}
}

func (a *App) Init() tea.Cmd {
	return a.refreshAll()
}

func (a *App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.summary.init(a.invoker),
		a.report.init(a.invoker),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.summary.width = msg.Width
		a.summary.height = msg.Height - 6
		a.report.width = msg.Width
		a.report.height = msg.Height - 6
		a.entry.width = msg.Width
		return a, nil
	}

	// Loads are fired for every view at once, so route them regardless of mode.
	switch typedMsg := msg.(type) {
	case summaryLoadedMsg:
		var cmd tea.Cmd
		a.summary, cmd = a.summary.update(msg)
		return a, cmd
	case reportLoadedMsg:
		var cmd tea.Cmd
		a.report, cmd = a.report.update(msg)
		return a, cmd
	case clearedMsg:
		if er, ok := typedMsg.res.(*tools.ErrorResult); ok {
			a.err = er
			return a, nil
		}
		a.err = nil
		a.statusMsg = typedMsg.res.String()
		return a, a.refreshAll()
	}

	// Modal form: delegate everything
	if a.mode == modeEntry {
		var cmd tea.Cmd
		a.entry, cmd = a.entry.update(msg, a.invoker)
		if a.entry.done {
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = a.entry.statusMsg
			a.err = nil
			return a, a.refreshAll()
		}
		if a.entry.cancelled {
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = "Expense not added"
		}
		return a, cmd
	}

	if a.confirmClear {
		if msg, ok := msg.(tea.KeyMsg); ok {
			a.confirmClear = false
			if key.Matches(msg, keys.Confirm) {
				inv := a.invoker
				return a, func() tea.Msg {
					return clearedMsg{res: inv.ClearAllExpenses(context.Background())}
				}
			}
			a.statusMsg = "Nothing cleared"
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, a.refreshTab()

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, a.refreshTab()

		case key.Matches(msg, keys.Add):
			a.mode = modeEntry
			a.entry = newEntry(a.transportTypes)
			a.entry.width = a.width
			return a, nil

		case key.Matches(msg, keys.Clear):
			a.confirmClear = true
			a.err = nil
			return a, nil

		case key.Matches(msg, keys.Refresh):
			return a, a.refreshAll()
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeSummary:
		a.summary, cmd = a.summary.update(msg)
	case modeReport:
		a.report, cmd = a.report.update(msg)
	}
	return a, cmd
}

func (a *App) refreshTab() tea.Cmd {
	switch a.mode {
	case modeSummary:
		return a.summary.init(a.invoker)
	case modeReport:
		return a.report.init(a.invoker)
	}
	return nil
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex && a.mode != modeEntry {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeSummary:
		content = a.summary.view()
	case modeReport:
		content = a.report.view()
	case modeEntry:
		content = a.entry.view()
	}

	status := ""
	if a.statusMsg != "" {
		status = successStyle.Render(a.statusMsg)
	}
	if a.confirmClear {
		status = errorStyle.Render("Delete every recorded expense? (y/N)")
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	helpText := dimStyle.Render("tab:switch  a:add  x:clear all  r:refresh  up/down:select  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		status,
		helpText,
	)
}
