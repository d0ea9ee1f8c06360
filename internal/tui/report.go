package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonvc/tripbudget/internal/tools"
)

type reportLoadedMsg struct {
	res tools.Result
}

// reportModel shows the total_budget report exactly as an agent receives it.
type reportModel struct {
	report  string
	noData  bool
	loading bool
	err     error
	width   int
	height  int
}

func (m *reportModel) init(inv tools.Invoker) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		return reportLoadedMsg{res: inv.TotalBudget(context.Background())}
	}
}

func (m reportModel) update(msg tea.Msg) (reportModel, tea.Cmd) {
	if msg, ok := msg.(reportLoadedMsg); ok {
		m.loading = false
		m.err = nil
		switch res := msg.res.(type) {
		case *tools.BudgetResult:
			m.report = res.Report
			m.noData = res.NoData
		case *tools.ErrorResult:
			m.err = res
		}
	}
	return m, nil
}

func (m *reportModel) view() string {
	if m.loading {
		return "Loading report..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.noData {
		return hintBoxStyle.Render(m.report)
	}
	return boxStyle.Render(m.report)
}
