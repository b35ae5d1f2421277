package present

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/you/skyfinder/internal/models"
)

func offers(raws ...string) []models.Offer {
	out := make([]models.Offer, 0, len(raws))
	for _, r := range raws {
		out = append(out, models.NewOffer(r))
	}
	return out
}

func ids(list []models.Offer) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.Text("", "id"))
	}
	return out
}

func TestSortPriceAscendingIsStable(t *testing.T) {
	in := offers(
		`{"id":"a","price":300}`,
		`{"id":"b","price":100}`,
		`{"id":"c","Price":"100"}`,
		`{"id":"d","price":200}`,
	)

	got := Sort(in, SortPriceLow)
	require.Equal(t, []string{"b", "c", "d", "a"}, ids(got))
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(in), "input must not be reordered")
}

func TestSortPriceDescending(t *testing.T) {
	in := offers(
		`{"id":"a","price":"120.50 USD"}`,
		`{"id":"b","price":99}`,
		`{"id":"c","price":"call us"}`,
		`{"id":"d"}`,
		`{"id":"e","Price":450}`,
	)

	got := Sort(in, SortPriceHigh)
	require.Equal(t, []string{"e", "a", "b", "c", "d"}, ids(got))
}

func TestSortDurationTreatsMissingAsZero(t *testing.T) {
	in := offers(
		`{"id":"none"}`,
		`{"id":"long","duration":90}`,
		`{"id":"short","duration":30}`,
	)

	got := Sort(in, SortDuration)
	require.Equal(t, []string{"none", "short", "long"}, ids(got))
}

func TestSortRelevanceKeepsOrder(t *testing.T) {
	in := offers(`{"id":"x","price":5}`, `{"id":"y","price":1}`)
	require.Equal(t, []string{"x", "y"}, ids(Sort(in, SortRelevance)))
	require.Empty(t, Sort(nil, SortPriceLow))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	require.Equal(t, SortRelevance, k)

	k, err = ParseSortKey(" Price-High ")
	require.NoError(t, err)
	require.Equal(t, SortPriceHigh, k)

	_, err = ParseSortKey("cheapest")
	require.Error(t, err)

	require.Equal(t, SortPriceLow, SortRelevance.Next())
	require.Equal(t, SortRelevance, SortDuration.Next())
	require.Equal(t, SortDuration, SortRelevance.Prev())
}

func TestFormatTime(t *testing.T) {
	v, ok := FormatTime("2024-03-01T05:30:00Z", time.UTC)
	require.True(t, ok)
	require.Equal(t, "05:30", v)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	v, ok = FormatTime("2024-03-01T05:30:00Z", ny)
	require.True(t, ok)
	require.Equal(t, "00:30", v)

	v, ok = FormatTime("2024-03-01T17:05:00.000+02:00", time.UTC)
	require.True(t, ok)
	require.Equal(t, "15:05", v)

	v, ok = FormatTime("2024-03-01T17:05:00", ny)
	require.True(t, ok)
	require.Equal(t, "17:05", v)

	for _, bad := range []string{"", "   ", "soon", "25:99"} {
		_, ok := FormatTime(bad, time.UTC)
		require.False(t, ok, bad)
	}
}

func TestFormatDuration(t *testing.T) {
	v, ok := FormatDuration(125)
	require.True(t, ok)
	require.Equal(t, "2h 5m", v)

	v, ok = FormatDuration(45)
	require.True(t, ok)
	require.Equal(t, "0h 45m", v)

	_, ok = FormatDuration(0)
	require.False(t, ok)
	_, ok = FormatDuration(-10)
	require.False(t, ok)
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "Sat, Jun 1", FormatDate("2024-06-01", time.UTC))
	require.Equal(t, "Fri, Mar 1", FormatDate("2024-03-01T05:30:00Z", time.UTC))
	require.Equal(t, "next week", FormatDate("next week", time.UTC))
}

func TestCategorize(t *testing.T) {
	require.Equal(t, StatusScheduled, Categorize("Scheduled"))
	require.Equal(t, StatusAvailable, Categorize("AVAILABLE"))
	require.Equal(t, StatusLimited, Categorize("limited"))
	require.Equal(t, StatusOther, Categorize("delayed"))
	require.Equal(t, StatusOther, Categorize(""))
	require.Equal(t, "limited", StatusLimited.String())
}

func TestResolveFallsBackToCriteriaAndDefaults(t *testing.T) {
	c := models.Criteria{Origin: "NYC", Destination: "LAX", Date: "2024-06-01"}

	r := Resolve(models.NewOffer(`{}`), 3, c, time.UTC)
	require.Equal(t, Record{
		ID:          "flight-3",
		Airline:     DefaultAirline,
		Origin:      "NYC",
		Destination: "LAX",
		Date:        "2024-06-01",
		DateLabel:   "Sat, Jun 1",
		Price:       NotAvailable,
		Departure:   TimePlaceholder,
		Arrival:     TimePlaceholder,
		Status:      DefaultStatus,
		Category:    StatusScheduled,
	}, r)
}

func TestResolveUsesAlternateFieldNames(t *testing.T) {
	c := models.Criteria{Origin: "NYC", Destination: "LAX", Date: "2024-06-01"}
	o := models.NewOffer(`{
		"id": "QF12",
		"name": "Qantas",
		"City_from": "Sydney",
		"city_to": "Los Angeles",
		"Date": "2024-06-02",
		"Price": "1,250",
		"departure_time": "2024-06-02T09:45:00Z",
		"arrival_time": "not a time",
		"duration": 835,
		"status": "Limited",
		"Country": "Australia",
		"countrycode": "AU"
	}`)

	r := Resolve(o, 0, c, time.UTC)
	require.Equal(t, "QF12", r.ID)
	require.Equal(t, "Qantas", r.Airline)
	require.Equal(t, "Sydney", r.Origin)
	require.Equal(t, "Los Angeles", r.Destination)
	require.Equal(t, "Sun, Jun 2", r.DateLabel)
	require.Equal(t, "$1,250", r.Price)
	require.Equal(t, "09:45", r.Departure)
	require.Equal(t, TimePlaceholder, r.Arrival)
	require.Equal(t, "13h 55m", r.Duration)
	require.Equal(t, StatusLimited, r.Category)
	require.Equal(t, "Australia", r.Country)
	require.Equal(t, "AU", r.CountryCode)
}

func TestResolveDropsCountryCodeWithoutCountry(t *testing.T) {
	r := Resolve(models.NewOffer(`{"countrycode":"US"}`), 0, models.Criteria{}, time.UTC)
	require.Empty(t, r.Country)
	require.Empty(t, r.CountryCode)
}

func TestRecordsPreservesCountAndIndexesByDisplayOrder(t *testing.T) {
	in := offers(
		`{"airline":"Acme Air","price":199.5,"duration":340}`,
		`{"airline":"Budget","price":89}`,
	)

	recs := Records(in, SortPriceLow, models.Criteria{Origin: "NYC", Destination: "LAX", Date: "2024-06-01"}, time.UTC)
	require.Len(t, recs, len(in))
	require.Equal(t, "Budget", recs[0].Airline)
	require.Equal(t, "flight-0", recs[0].ID)
	require.Equal(t, "$89.00", recs[0].Price)
	require.Equal(t, "Acme Air", recs[1].Airline)
	require.Equal(t, "$199.50", recs[1].Price)
	require.Equal(t, "5h 40m", recs[1].Duration)
}

func TestHeadline(t *testing.T) {
	require.Equal(t, "1 Flight Available", Headline(1))
	require.Equal(t, "4 Flights Available", Headline(4))
}
