package models

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format carried in requests.
const DateLayout = "2006-01-02"

// Criteria is what the user searches for. Its JSON form is the request body
// sent to the search endpoint.
type Criteria struct {
	Origin      string `json:"from"`
	Destination string `json:"to"`
	Date        string `json:"date"`
}

// Normalize trims surrounding whitespace from every field.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Origin:      strings.TrimSpace(c.Origin),
		Destination: strings.TrimSpace(c.Destination),
		Date:        strings.TrimSpace(c.Date),
	}
}

// Validate reports the first problem that must block a search.
func (c Criteria) Validate() error {
	c = c.Normalize()
	if c.Origin == "" || c.Destination == "" || c.Date == "" {
		return ErrMissingField
	}
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingField ValidationError = "Please fill in all fields"
	ErrInvalidDate  ValidationError = "Please enter a valid date (YYYY-MM-DD)"
)
