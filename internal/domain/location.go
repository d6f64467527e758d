// Package domain contains the provider-agnostic entities of the reservation gateway.
// Normalized records here are what callers see; raw provider JSON travels alongside
// them only where a later pricing or booking step has to replay it.
package domain

import (
	"bytes"
	"encoding/json"
)

// Location is an airport returned by a keyword search.
// Every field is optional because each one is extracted independently.
type Location struct {
	IataCode    *string  `json:"iataCode,omitempty"`
	Name        *string  `json:"name,omitempty"`
	City        *string  `json:"city,omitempty"`
	CountryCode *string  `json:"countryCode,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Airport holds the metadata resolved for a single IATA code.
type Airport struct {
	Code           string `json:"code"`
	CityName       string `json:"cityName,omitempty"`
	AirportName    string `json:"airportName,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
	TimeZoneOffset string `json:"timeZoneOffset,omitempty"`
}

// AirportMap maps codes to airports and keeps insertion order when encoded.
type AirportMap struct {
	keys   []string
	values map[string]Airport
}

// NewAirportMap creates an empty AirportMap.
func NewAirportMap() *AirportMap {
	return &AirportMap{values: make(map[string]Airport)}
}

// Set stores an airport under code. Re-setting a key keeps its original position.
func (m *AirportMap) Set(code string, airport Airport) {
	if _, ok := m.values[code]; !ok {
		m.keys = append(m.keys, code)
	}
	m.values[code] = airport
}

// Get returns the airport stored under code.
func (m *AirportMap) Get(code string) (Airport, bool) {
	a, ok := m.values[code]
	return a, ok
}

// Keys returns the codes in insertion order.
func (m *AirportMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *AirportMap) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *AirportMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
