package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/you/skyfinder/internal/present"
	"github.com/you/skyfinder/internal/service"
)

const (
	defaultWidth = 80
	minCardWidth = 40
)

// RenderOutcome draws the results area for the session's current state.
// spin is the loading indicator frame; it may be empty outside the TUI.
func RenderOutcome(s *service.Session, loc *time.Location, width int, spin string) string {
	out := s.Outcome()
	switch out.Phase {
	case service.PhaseLoading:
		return RenderLoading(spin, width)
	case service.PhaseFailed:
		return RenderFailure(out.Message, width)
	case service.PhaseReady:
		return RenderResults(s.Records(loc), s.SortKey(), width)
	default:
		if s.Attempted() {
			return RenderEmpty(width)
		}
		return ""
	}
}

func RenderLoading(spin string, width int) string {
	line := "Searching for flights..."
	if spin != "" {
		line = spinnerStyle.Render(spin) + " " + line
	}
	return boxStyle.Width(cardWidth(width)).Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(line),
		mutedStyle.Render("Finding the best deals for you"),
	))
}

func RenderFailure(msg string, width int) string {
	return errorBoxStyle.Width(cardWidth(width)).Render(lipgloss.JoinVertical(lipgloss.Center,
		errorTitleStyle.Render("Oops! Something went wrong"),
		"",
		msg,
		"",
		mutedStyle.Render("esc: try again"),
	))
}

func RenderEmpty(width int) string {
	return boxStyle.Width(cardWidth(width)).Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("No flights found"),
		mutedStyle.Render("Try adjusting your search criteria"),
	))
}

// RenderResults draws the headline, the active sort and one card per record
// in the order given.
func RenderResults(records []present.Record, key present.SortKey, width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("✈ " + present.Headline(len(records))))
	sb.WriteString("  ")
	sb.WriteString(mutedStyle.Render("Sort by: " + key.Label()))
	sb.WriteString("\n\n")
	for _, r := range records {
		sb.WriteString(RenderCard(r, width))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCard draws one offer.
func RenderCard(r present.Record, width int) string {
	inner := cardWidth(width) - cardStyle.GetHorizontalFrameSize()

	head := spread(inner, airlineStyle.Render(r.Airline), idStyle.Render(r.ID))

	lines := []string{head}
	if r.Country != "" {
		country := countryStyle.Render(r.Country)
		if r.CountryCode != "" {
			country += " " + codeStyle.Render(r.CountryCode)
		}
		lines = append(lines, country)
	}

	route := spread(inner,
		lipgloss.JoinVertical(lipgloss.Left, timeStyle.Render(r.Departure), cityStyle.Render(strings.ToUpper(r.Origin))),
		lipgloss.JoinVertical(lipgloss.Center, "──✈──", mutedStyle.Render(r.Duration)),
		lipgloss.JoinVertical(lipgloss.Right, timeStyle.Render(r.Arrival), cityStyle.Render(strings.ToUpper(r.Destination))),
	)
	lines = append(lines, "", route, "")

	lines = append(lines,
		spread(inner, mutedStyle.Render(r.DateLabel), badge(r.Category).Render(strings.ToUpper(r.Status))),
		spread(inner, mutedStyle.Render("Total Price"), priceStyle.Render(r.Price)),
	)

	return cardStyle.Width(cardWidth(width)).Render(strings.Join(lines, "\n"))
}

func badge(c present.StatusCategory) lipgloss.Style {
	switch c {
	case present.StatusScheduled:
		return scheduledBadge
	case present.StatusAvailable:
		return availableBadge
	case present.StatusLimited:
		return limitedBadge
	default:
		return otherBadge
	}
}

// spread lays blocks out on one row, pushing the first to the left edge and
// the last to the right edge of width.
func spread(width int, blocks ...string) string {
	if len(blocks) < 2 {
		return strings.Join(blocks, "")
	}
	used := 0
	for _, b := range blocks {
		used += lipgloss.Width(b)
	}
	gap := (width - used) / (len(blocks) - 1)
	if gap < 1 {
		gap = 1
	}
	pad := strings.Repeat(" ", gap)

	row := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			row = append(row, pad)
		}
		row = append(row, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func cardWidth(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minCardWidth {
		return minCardWidth
	}
	return width - 2
}
