// Package tui is the interactive search screen: a three-field form, a sort
// selector and a scrollable results pane driven by a service.Session.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/you/skyfinder/internal/models"
	"github.com/you/skyfinder/internal/service"
)

const (
	fieldOrigin = iota
	fieldDestination
	fieldDate
	fieldSort
	fieldCount
)

// rows taken by everything above and below the results pane
const chromeHeight = 11

// searchResultMsg carries a finished request back into Update.
type searchResultMsg struct {
	ticket service.Ticket
	offers []models.Offer
	err    error
}

type Model struct {
	ctx     context.Context
	session *service.Session
	loc     *time.Location

	inputs []textinput.Model
	focus  int

	spinner  spinner.Model
	results  viewport.Model
	help     help.Model
	width    int
	notice   string
	quitting bool
}

// NewModel builds the screen around s. The date field starts at today's
// date in loc.
func NewModel(ctx context.Context, s *service.Session, loc *time.Location, now time.Time) Model {
	if loc == nil {
		loc = time.UTC
	}

	inputs := make([]textinput.Model, fieldSort)

	inputs[fieldOrigin] = textinput.New()
	inputs[fieldOrigin].Placeholder = "e.g., New York"
	inputs[fieldOrigin].CharLimit = 64
	inputs[fieldOrigin].Width = 20
	inputs[fieldOrigin].Prompt = "🛫 "

	inputs[fieldDestination] = textinput.New()
	inputs[fieldDestination].Placeholder = "e.g., London"
	inputs[fieldDestination].CharLimit = 64
	inputs[fieldDestination].Width = 20
	inputs[fieldDestination].Prompt = "🛬 "

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = models.DateLayout
	inputs[fieldDate].CharLimit = len(models.DateLayout)
	inputs[fieldDate].Width = 12
	inputs[fieldDate].Prompt = "📅 "

	c := s.Criteria()
	if c.Date == "" {
		c.Date = now.In(loc).Format(models.DateLayout)
		s.SetDate(c.Date)
	}
	inputs[fieldOrigin].SetValue(c.Origin)
	inputs[fieldDestination].SetValue(c.Destination)
	inputs[fieldDate].SetValue(c.Date)
	inputs[fieldOrigin].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		ctx:     ctx,
		session: s,
		loc:     loc,
		inputs:  inputs,
		spinner: sp,
		results: viewport.New(defaultWidth, 20),
		help:    help.New(),
		width:   defaultWidth,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.results.Width = msg.Width
		m.results.Height = max(msg.Height-chromeHeight, 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchResultMsg:
		if m.session.Complete(msg.ticket, msg.offers, msg.err) {
			m.results.GotoTop()
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if m.session.Outcome().Phase != service.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, keys.Search):
		return m.submit()

	case key.Matches(msg, keys.Dismiss):
		m.session.Dismiss()
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	if m.focus == fieldSort {
		switch {
		case key.Matches(msg, keys.SortNext):
			m.session.SetSortKey(m.session.SortKey().Next())
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.SortPrev):
			m.session.SetSortKey(m.session.SortKey().Prev())
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncField(m.focus)
	return m, cmd
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	m.focus = i
	var cmds []tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmds = append(cmds, m.inputs[j].Focus())
		} else {
			m.inputs[j].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) syncField(i int) {
	v := m.inputs[i].Value()
	switch i {
	case fieldOrigin:
		m.session.SetOrigin(v)
	case fieldDestination:
		m.session.SetDestination(v)
	case fieldDate:
		m.session.SetDate(v)
	}
}

// submit moves the session to loading right away and hands the request to
// Bubble Tea; the reply comes back as a searchResultMsg.
func (m Model) submit() (tea.Model, tea.Cmd) {
	ticket, err := m.session.Begin()
	m.refresh()
	if err != nil {
		// while loading the session keeps its state, so say it here
		if m.session.Outcome().Phase == service.PhaseLoading {
			m.notice = err.Error()
		}
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, fetch(m.ctx, m.session, ticket))
}

func fetch(ctx context.Context, s *service.Session, t service.Ticket) tea.Cmd {
	return func() tea.Msg {
		offers, err := s.Fetch(ctx, t)
		return searchResultMsg{ticket: t, offers: offers, err: err}
	}
}

// refresh re-renders the results pane. The viewport is a value copied with
// the model, so it must run on the copy that Update returns.
func (m *Model) refresh() {
	m.results.SetContent(RenderOutcome(m.session, m.loc, m.width, m.spinner.View()))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("✈ SkyFinder"))
	sb.WriteString("\n")

	labels := []string{"From", "To", "Date"}
	fields := make([]string, 0, len(m.inputs))
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		fields = append(fields, lipgloss.JoinVertical(lipgloss.Left, style.Render(labels[i]), in.View()))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, interleave(fields, "   ")...))
	sb.WriteString("\n\n")

	sortLabel := labelStyle
	if m.focus == fieldSort {
		sortLabel = focusedLabelStyle
	}
	sb.WriteString(sortLabel.Render("Sort by") + " " + mutedStyle.Render("‹ "+m.session.SortKey().Label()+" ›"))
	sb.WriteString("\n\n")

	sb.WriteString(m.results.View())
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render(m.help.View(keys)))
	return sb.String()
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
