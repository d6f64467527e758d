// Package normalizer converts raw provider JSON into domain records.
//
// Every output field is read on its own through the opt* accessors. A missing or
// wrongly typed value leaves that field absent and never fails the record.
package normalizer

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/domain"
)

// optString returns the string at path, or nil when absent or not a string.
func optString(r gjson.Result, path string) *string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return nil
	}
	s := v.Str
	return &s
}

// optInt returns the integer at path, or nil when absent or not a whole number.
func optInt(r gjson.Result, path string) *int {
	v := r.Get(path)
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return nil
	}
	n := int(v.Num)
	return &n
}

// optFloat returns the number at path. Numeric strings are accepted.
func optFloat(r gjson.Result, path string) *float64 {
	v := r.Get(path)
	switch v.Type {
	case gjson.Number:
		f := v.Num
		return &f
	case gjson.String:
		if !gjson.Valid(v.Str) {
			return nil
		}
		n := gjson.Parse(v.Str)
		if n.Type != gjson.Number {
			return nil
		}
		f := n.Num
		return &f
	default:
		return nil
	}
}

// optDecimal returns a decimal as text. Numbers keep their literal JSON text.
func optDecimal(r gjson.Result, path string) *string {
	v := r.Get(path)
	switch v.Type {
	case gjson.String:
		s := v.Str
		return &s
	case gjson.Number:
		s := v.Raw
		return &s
	default:
		return nil
	}
}

// dataArray returns the elements of the "data" array in body.
func dataArray(body []byte) []gjson.Result {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil
	}
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil
	}
	return data.Array()
}

// SplitData slices the "data" array of body into raw elements in provider order.
// The slices are the exact bytes from body.
func SplitData(body []byte) []json.RawMessage {
	items := dataArray(body)
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, json.RawMessage(item.Raw))
	}
	return out
}

// ToLocations converts every element of a location search into a Location.
// Entries that are not JSON objects are skipped.
func ToLocations(doc *domain.ProviderDocument) []domain.Location {
	if doc == nil {
		return []domain.Location{}
	}
	out := make([]domain.Location, 0, len(doc.Data))
	for _, raw := range doc.Data {
		if !gjson.ParseBytes(raw).IsObject() {
			continue
		}
		out = append(out, ToLocation(raw))
	}
	return out
}

// ToLocation converts a single location element.
func ToLocation(raw json.RawMessage) domain.Location {
	r := gjson.ParseBytes(raw)
	return domain.Location{
		IataCode:    optString(r, "iataCode"),
		Name:        optString(r, "name"),
		City:        optString(r, "address.cityName"),
		CountryCode: optString(r, "address.countryCode"),
		Latitude:    optFloat(r, "geoCode.latitude"),
		Longitude:   optFloat(r, "geoCode.longitude"),
	}
}

// ToAirport converts a location element into airport metadata.
func ToAirport(raw json.RawMessage) domain.Airport {
	r := gjson.ParseBytes(raw)
	return domain.Airport{
		Code:           deref(optString(r, "iataCode")),
		CityName:       deref(optString(r, "address.cityName")),
		AirportName:    deref(optString(r, "name")),
		CountryCode:    deref(optString(r, "address.countryCode")),
		TimeZoneOffset: deref(optString(r, "timeZoneOffset")),
	}
}

// PickAirport chooses the element whose iataCode equals code ignoring case,
// falling back to the first element. It reports false when data is empty.
func PickAirport(data []json.RawMessage, code string) (json.RawMessage, bool) {
	if len(data) == 0 {
		return nil, false
	}
	for _, raw := range data {
		if iata := optString(gjson.ParseBytes(raw), "iataCode"); iata != nil && strings.EqualFold(*iata, code) {
			return raw, true
		}
	}
	return data[0], true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
