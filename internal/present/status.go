package present

import "strings"

type StatusCategory int

const (
	StatusOther StatusCategory = iota
	StatusScheduled
	StatusAvailable
	StatusLimited
)

func (c StatusCategory) String() string {
	switch c {
	case StatusScheduled:
		return "scheduled"
	case StatusAvailable:
		return "available"
	case StatusLimited:
		return "limited"
	default:
		return "other"
	}
}

// Categorize maps a free-text status onto the fixed display categories.
func Categorize(status string) StatusCategory {
	switch strings.ToLower(status) {
	case "scheduled":
		return StatusScheduled
	case "available":
		return StatusAvailable
	case "limited":
		return StatusLimited
	default:
		return StatusOther
	}
}
