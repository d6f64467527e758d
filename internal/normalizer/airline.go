package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/domain"
)

// ToAirlineNames maps carrier codes to display names from an airline lookup.
// businessName wins, then commonName, then the code itself.
func ToAirlineNames(doc *domain.ProviderDocument) map[string]string {
	names := make(map[string]string)
	if doc == nil {
		return names
	}
	for _, raw := range doc.Data {
		r := gjson.ParseBytes(raw)
		code := optString(r, "iataCode")
		if code == nil || *code == "" {
			continue
		}
		names[*code] = airlineName(r, *code)
	}
	return names
}

func airlineName(r gjson.Result, code string) string {
	if n := optString(r, "businessName"); n != nil && strings.TrimSpace(*n) != "" {
		return *n
	}
	if n := optString(r, "commonName"); n != nil && strings.TrimSpace(*n) != "" {
		return *n
	}
	return code
}

// DictionaryCarriers reads dictionaries.carriers from a flight-offers response body.
func DictionaryCarriers(body []byte) map[string]string {
	names := make(map[string]string)
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return names
	}
	carriers := gjson.GetBytes(body, "dictionaries.carriers")
	if !carriers.IsObject() {
		return names
	}
	carriers.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String && value.Str != "" {
			names[key.String()] = value.Str
		}
		return true
	})
	return names
}
