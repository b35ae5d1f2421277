// Package present turns search results into display records. Everything
// here is a pure function of its inputs.
package present

import (
	"fmt"
	"time"

	"github.com/you/skyfinder/internal/models"
)

const (
	NotAvailable    = "N/A"
	TimePlaceholder = "••:••"
	DefaultAirline  = "Airline Not Specified"
	DefaultStatus   = "scheduled"
)

// Record is one offer resolved for display. Optional attributes are empty
// strings when they should be left out.
type Record struct {
	ID          string
	Airline     string
	Origin      string
	Destination string
	Date        string
	DateLabel   string
	Price       string
	Departure   string
	Arrival     string
	Duration    string
	Status      string
	Category    StatusCategory
	Country     string
	CountryCode string
}

// Resolve builds the display record for o at display position index.
// Route and date fall back to the criteria the search was made with.
func Resolve(o models.Offer, index int, c models.Criteria, loc *time.Location) Record {
	r := Record{
		ID:          o.Text(fmt.Sprintf("flight-%d", index), "id"),
		Airline:     o.Text(DefaultAirline, "airline", "name"),
		Origin:      o.Text(c.Origin, "from", "City_from"),
		Destination: o.Text(c.Destination, "to", "city_to"),
		Date:        o.Text(c.Date, "date", "Date"),
		Price:       FormatPrice(o.Lookup("price", "Price")),
		Departure:   TimePlaceholder,
		Arrival:     TimePlaceholder,
		Status:      o.Text(DefaultStatus, "status"),
		Country:     o.Text("", "Country"),
	}
	r.DateLabel = FormatDate(r.Date, loc)
	r.Category = Categorize(r.Status)

	if v, ok := FormatTime(o.Text("", "departure_time"), loc); ok {
		r.Departure = v
	}
	if v, ok := FormatTime(o.Text("", "arrival_time"), loc); ok {
		r.Arrival = v
	}
	if v, ok := FormatDuration(int(Minutes(o))); ok {
		r.Duration = v
	}
	if r.Country != "" {
		r.CountryCode = o.Text("", "countrycode")
	}

	return r
}

// Records sorts offers by key and resolves each one. The result always has
// exactly len(offers) entries.
func Records(offers []models.Offer, key SortKey, c models.Criteria, loc *time.Location) []Record {
	sorted := Sort(offers, key)
	out := make([]Record, 0, len(sorted))
	for i, o := range sorted {
		out = append(out, Resolve(o, i, c, loc))
	}
	return out
}

// Headline summarises a result count, e.g. "3 Flights Available".
func Headline(n int) string {
	if n == 1 {
		return "1 Flight Available"
	}
	return fmt.Sprintf("%d Flights Available", n)
}
