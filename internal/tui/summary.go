package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/tools"
)

type summaryLoadedMsg struct {
	res tools.Result
}

type summaryModel struct {
	summary *tools.SummaryResult
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

func (m *summaryModel) init(inv tools.Invoker) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		return summaryLoadedMsg{res: inv.GetExpenseSummary(context.Background())}
	}
}

func (m summaryModel) update(msg tea.Msg) (summaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		m.loading = false
		m.summary, m.err = nil, nil
		switch res := msg.res.(type) {
		case *tools.SummaryResult:
			m.summary = res
			if m.cursor >= len(res.Categories) {
				m.cursor = max(len(res.Categories)-1, 0)
			}
		case *tools.ErrorResult:
			m.err = res
		default:
			m.err = fmt.Errorf("unexpected result %T", msg.res)
		}

	case tea.KeyMsg:
		if m.summary == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.summary.Categories)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *summaryModel) view() string {
	if m.loading {
		return "Loading expenses..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.summary == nil || m.summary.NoData {
		return dimStyle.Render(ledger.NoDataMessage)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Trip Expenses"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-14s %6s %14s", "CATEGORY", "ITEMS", "SUBTOTAL")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	descW := m.width - 24
	if descW < 20 {
		descW = 40
	}

	for i, ct := range m.summary.Categories {
		line := fmt.Sprintf("  %-14s %6d %14s", ct.Category, len(ct.Items), ledger.FormatMoney(ct.Subtotal))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")

		if i != m.cursor {
			continue
		}
		for _, it := range ct.Items {
			desc := it.Description
			if len(desc) > descW {
				desc = desc[:descW-2] + ".."
			}
			b.WriteString(fmt.Sprintf("      • %12s  %s\n", amountStyle.Render(ledger.FormatMoney(it.Amount)), dimStyle.Render(desc)))
		}
	}

	b.WriteString(fmt.Sprintf("\n  %-21s %14s %s", "Total", ledger.FormatMoney(m.summary.Total), m.summary.Currency))
	return b.String()
}
