package present

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FormatDuration renders a minute count as "{h}h {m}m". Zero or negative
// counts have no display value.
func FormatDuration(minutes int) (string, bool) {
	if minutes <= 0 {
		return "", false
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60), true
}

// FormatPrice renders a resolved price. Numbers get two decimals, text is
// shown as sent.
func FormatPrice(v gjson.Result, ok bool) string {
	if !ok {
		return NotAvailable
	}
	switch v.Type {
	case gjson.Number:
		return fmt.Sprintf("$%.2f", v.Num)
	case gjson.JSON:
		return "$" + v.Raw
	default:
		return "$" + v.String()
	}
}

var leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// numeric reads a number the way a lenient float parser does: strings
// contribute their leading numeric prefix, anything unreadable counts as 0.
func numeric(v gjson.Result, ok bool) float64 {
	if !ok {
		return 0
	}
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		m := leadingFloat.FindString(strings.TrimSpace(v.Str))
		if m == "" {
			return 0
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
