package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonvc/tripbudget/internal/tools"
)

type entryKind int

const (
	kindFood entryKind = iota
	kindHotel
	kindTransport
)

var entryKinds = []struct {
	label  string
	first  string
	second string
}{
	kindFood:      {"Food", "Days", "Cost per day (₹)"},
	kindHotel:     {"Hotel", "Nights", "Price per night (₹)"},
	kindTransport: {"Transport", "Distance (km)", "Transport type"},
}

type entryField int

const (
	fieldKind entryField = iota
	fieldFirst
	fieldSecond
)

type expenseAddedMsg struct {
	res tools.Result
}

type entryModel struct {
	kind           entryKind
	focus          entryField
	first          textinput.Model
	second         textinput.Model
	transportTypes []string

	submitting bool
	err        error
	done       bool
	cancelled  bool
	statusMsg  string
	width      int
}

func newEntry(transportTypes []string) entryModel {
	first := textinput.New()
	first.CharLimit = 12

	second := textinput.New()
	second.CharLimit = 20

	m := entryModel{
		kind:           kindFood,
		focus:          fieldKind,
		first:          first,
		second:         second,
		transportTypes: transportTypes,
	}
	m.setPlaceholders()
	return m
}

func (m *entryModel) setPlaceholders() {
	switch m.kind {
	case kindFood:
		m.first.Placeholder = "e.g. 5"
		m.second.Placeholder = "e.g. 500"
	case kindHotel:
		m.first.Placeholder = "e.g. 4"
		m.second.Placeholder = "e.g. 2000"
	case kindTransport:
		m.first.Placeholder = "e.g. 300"
		m.second.Placeholder = strings.Join(m.transportTypes, ", ")
	}
}

func (m *entryModel) setFocus(f entryField) tea.Cmd {
	m.focus = f
	m.first.Blur()
	m.second.Blur()
	switch f {
	case fieldFirst:
		return m.first.Focus()
	case fieldSecond:
		return m.second.Focus()
	}
	return nil
}

func (m entryModel) update(msg tea.Msg, inv tools.Invoker) (entryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case expenseAddedMsg:
		m.submitting = false
		if er, ok := msg.res.(*tools.ErrorResult); ok {
			m.err = er
			return m, nil
		}
		m.done = true
		m.statusMsg = "Added " + msg.res.String()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape) {
			m.cancelled = true
			return m, nil
		}
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.PrevField):
			if m.focus > fieldKind {
				return m, m.setFocus(m.focus - 1)
			}
			return m, nil
		case key.Matches(msg, keys.NextField):
			if m.focus < fieldSecond {
				return m, m.setFocus(m.focus + 1)
			}
			return m, nil
		case key.Matches(msg, keys.Enter):
			if m.focus < fieldSecond {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit(inv)
		}

		switch m.focus {
		case fieldKind:
			switch {
			case key.Matches(msg, keys.Left):
				m.kind = (m.kind + entryKind(len(entryKinds)) - 1) % entryKind(len(entryKinds))
				m.setPlaceholders()
			case key.Matches(msg, keys.Right):
				m.kind = (m.kind + 1) % entryKind(len(entryKinds))
				m.setPlaceholders()
			}
			return m, nil
		case fieldFirst:
			var cmd tea.Cmd
			m.first, cmd = m.first.Update(msg)
			return m, cmd
		case fieldSecond:
			var cmd tea.Cmd
			m.second, cmd = m.second.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m entryModel) submit(inv tools.Invoker) (entryModel, tea.Cmd) {
	form := entryKinds[m.kind]

	first, err := parseQuantity(form.first, m.first.Value())
	if err != nil {
		m.err = err
		return m, nil
	}

	var call func(ctx context.Context) tools.Result
	switch m.kind {
	case kindTransport:
		typ := strings.TrimSpace(m.second.Value())
		if typ == "" {
			m.err = errors.New("transport type is required")
			return m, nil
		}
		call = func(ctx context.Context) tools.Result { return inv.TransportCost(ctx, first, typ) }
	default:
		second, err := parseQuantity(form.second, m.second.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		if m.kind == kindFood {
			call = func(ctx context.Context) tools.Result { return inv.FoodCost(ctx, first, second) }
		} else {
			call = func(ctx context.Context) tools.Result { return inv.HotelCost(ctx, first, second) }
		}
	}

	m.err = nil
	m.submitting = true
	return m, func() tea.Msg {
		return expenseAddedMsg{res: call(context.Background())}
	}
}

func parseQuantity(label, v string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(label))
	}
	if n < 0 {
		return 0, fmt.Errorf("%s cannot be negative", strings.ToLower(label))
	}
	return n, nil
}

func (m *entryModel) view() string {
	var b strings.Builder
	form := entryKinds[m.kind]

	b.WriteString(titleStyle.Render("Add Expense"))
	b.WriteString("\n")

	var kinds []string
	for i, k := range entryKinds {
		if entryKind(i) == m.kind {
			kinds = append(kinds, selectedStyle.Render("["+k.label+"]"))
		} else {
			kinds = append(kinds, dimStyle.Render(" "+k.label+" "))
		}
	}
	cursor := func(f entryField) string {
		if m.focus == f {
			return selectedStyle.Render("> ")
		}
		return "  "
	}

	b.WriteString(cursor(fieldKind) + labelStyle.Render("Kind") + strings.Join(kinds, " ") + "\n")
	b.WriteString(cursor(fieldFirst) + labelStyle.Render(form.first) + m.first.View() + "\n")
	b.WriteString(cursor(fieldSecond) + labelStyle.Render(form.second) + m.second.View() + "\n")

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(dimStyle.Render("Saving..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	default:
		b.WriteString(dimStyle.Render("left/right: kind  up/down: field  enter: next/submit  esc: cancel"))
	}
	return b.String()
}
