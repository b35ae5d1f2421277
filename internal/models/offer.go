package models

import (
	"math"

	"github.com/Laisky/errors/v2"
	"github.com/tidwall/gjson"
)

// Offer is one flight record as returned by the search endpoint. Upstream
// sources do not agree on a schema, so the record keeps its raw JSON and
// attributes are resolved on demand from an ordered list of field names.
type Offer struct {
	raw gjson.Result
}

// NewOffer wraps a raw JSON value.
func NewOffer(raw string) Offer {
	return Offer{raw: gjson.Parse(raw)}
}

// Raw returns the JSON text the offer was decoded from.
func (o Offer) Raw() string {
	return o.raw.Raw
}

// MarshalJSON re-emits the offer unchanged.
func (o Offer) MarshalJSON() ([]byte, error) {
	if o.raw.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(o.raw.Raw), nil
}

// UnmarshalJSON keeps a copy of the raw value.
func (o *Offer) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errors.New("invalid offer json")
	}
	o.raw = gjson.Parse(string(b))
	return nil
}

// Lookup returns the first of names whose value is truthy, or an empty
// result when none is.
func (o Offer) Lookup(names ...string) (gjson.Result, bool) {
	if !o.raw.IsObject() {
		return gjson.Result{}, false
	}
	for _, name := range names {
		if v := o.raw.Get(gjson.Escape(name)); Truthy(v) {
			return v, true
		}
	}
	return gjson.Result{}, false
}

// Text resolves names to a display string, falling back to def.
func (o Offer) Text(def string, names ...string) string {
	v, ok := o.Lookup(names...)
	if !ok {
		return def
	}
	if v.Type == gjson.JSON {
		return v.Raw
	}
	return v.String()
}

// Truthy follows the loose rules the endpoint's consumers rely on:
// missing, null, false, zero, NaN and the empty string are all "absent".
func Truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}

// ErrMalformedBody is returned when a response body is not JSON at all.
var ErrMalformedBody = errors.New("malformed response body")

// ParseOffers accepts either a bare array of offers or an object carrying
// the array under "flights". Any other well-formed shape yields no offers.
func ParseOffers(body []byte) ([]Offer, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedBody
	}

	doc := gjson.ParseBytes(body)
	var list gjson.Result
	switch {
	case doc.IsArray():
		list = doc
	case doc.IsObject():
		list = doc.Get("flights")
	}
	if !list.IsArray() {
		return []Offer{}, nil
	}

	items := list.Array()
	out := make([]Offer, 0, len(items))
	for _, item := range items {
		out = append(out, Offer{raw: item})
	}
	return out, nil
}
