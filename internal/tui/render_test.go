package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/you/skyfinder/internal/models"
	"github.com/you/skyfinder/internal/present"
	"github.com/you/skyfinder/internal/service"
)

func TestRenderCard(t *testing.T) {
	r := present.Resolve(models.NewOffer(`{
		"id": "AA-1021",
		"airline": "American Airlines",
		"price": 249.99,
		"departure_time": "2024-06-01T08:15:00Z",
		"arrival_time": "2024-06-01T14:30:00Z",
		"duration": 375,
		"status": "Available",
		"Country": "United States",
		"countrycode": "US"
	}`), 0, models.Criteria{Origin: "nyc", Destination: "lax", Date: "2024-06-01"}, time.UTC)

	card := RenderCard(r, 80)
	for _, want := range []string{
		"American Airlines", "AA-1021", "United States", "US",
		"08:15", "14:30", "NYC", "LAX", "6h 15m",
		"Sat, Jun 1", "AVAILABLE", "Total Price", "$249.99",
	} {
		require.Contains(t, card, want)
	}
}

func TestRenderCardPlaceholders(t *testing.T) {
	r := present.Resolve(models.NewOffer(`{}`), 3, models.Criteria{Origin: "NYC", Destination: "LAX", Date: "2024-06-01"}, time.UTC)

	card := RenderCard(r, 0)
	require.Contains(t, card, "Airline Not Specified")
	require.Contains(t, card, "flight-3")
	require.Contains(t, card, "••:••")
	require.Contains(t, card, "N/A")
	require.Contains(t, card, "SCHEDULED")
}

func TestRenderOutcomeIdle(t *testing.T) {
	s := service.NewSession(fakeProvider{})
	require.Empty(t, RenderOutcome(s, time.UTC, 80, ""))
}

func TestRenderResultsHeadline(t *testing.T) {
	records := []present.Record{{ID: "a"}, {ID: "b"}}
	out := RenderResults(records, present.SortDuration, 80)
	require.Contains(t, out, "2 Flights Available")
	require.Contains(t, out, "Duration: Shortest")
}
