package normalizer

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/domain"
)

// ToFlightOffers normalizes raw offers. Offer i always carries raws[i] as its RawOffer,
// so the output has exactly len(raws) entries in the same order.
func ToFlightOffers(raws []json.RawMessage, airlineNames map[string]string) []domain.FlightOffer {
	out := make([]domain.FlightOffer, 0, len(raws))
	for _, raw := range raws {
		out = append(out, ToFlightOffer(raw, airlineNames))
	}
	return out
}

// ToFlightOffer normalizes a single raw offer. A raw value that is not an object
// yields an offer with only RawOffer set.
func ToFlightOffer(raw json.RawMessage, airlineNames map[string]string) domain.FlightOffer {
	offer := domain.FlightOffer{RawOffer: raw}

	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return offer
	}

	offer.ID = optString(r, "id")
	offer.Price = toPrice(r.Get("price"))
	offer.ValidatingAirlines = stringList(r.Get("validatingAirlineCodes"))
	offer.Itineraries = toItineraries(r.Get("itineraries"))
	offer.Cabin = optString(r, "travelerPricings.0.fareDetailsBySegment.0.cabin")

	applySummary(&offer, airlineNames)
	return offer
}

func toPrice(r gjson.Result) *domain.Price {
	if !r.IsObject() {
		return nil
	}
	return &domain.Price{
		Currency: optString(r, "currency"),
		Total:    optDecimal(r, "total"),
	}
}

func toItineraries(r gjson.Result) []domain.Itinerary {
	if !r.IsArray() {
		return nil
	}
	var out []domain.Itinerary
	for _, it := range r.Array() {
		if !it.IsObject() {
			continue
		}
		out = append(out, domain.Itinerary{
			Duration: optString(it, "duration"),
			Segments: toSegments(it.Get("segments")),
		})
	}
	return out
}

func toSegments(r gjson.Result) []domain.Segment {
	if !r.IsArray() {
		return nil
	}
	var out []domain.Segment
	for _, s := range r.Array() {
		if !s.IsObject() {
			continue
		}
		out = append(out, domain.Segment{
			CarrierCode:   optString(s, "carrierCode"),
			FlightNumber:  optString(s, "number"),
			DepartureIata: optString(s, "departure.iataCode"),
			DepartureAt:   optString(s, "departure.at"),
			ArrivalIata:   optString(s, "arrival.iataCode"),
			ArrivalAt:     optString(s, "arrival.at"),
			Duration:      optString(s, "duration"),
			NumberOfStops: optInt(s, "numberOfStops"),
		})
	}
	return out
}

// applySummary fills the list-view fields from the first itinerary.
// Destination and arrival come from its last segment.
func applySummary(offer *domain.FlightOffer, airlineNames map[string]string) {
	if len(offer.Itineraries) == 0 {
		return
	}
	first := offer.Itineraries[0]
	offer.Duration = first.Duration

	if len(first.Segments) == 0 {
		return
	}
	head := first.Segments[0]
	tail := first.Segments[len(first.Segments)-1]

	stops := max(0, len(first.Segments)-1)
	offer.NumberOfStops = &stops
	offer.CarrierCode = head.CarrierCode
	offer.FlightNumber = head.FlightNumber
	offer.OriginCode = head.DepartureIata
	offer.DepartureTime = head.DepartureAt
	offer.DestinationCode = tail.ArrivalIata
	offer.ArrivalTime = tail.ArrivalAt

	if head.CarrierCode != nil {
		name := *head.CarrierCode
		if n, ok := airlineNames[name]; ok && n != "" {
			name = n
		}
		offer.AirlineName = &name
	}
}

// CarrierCodes returns the distinct carrier codes of every segment of every offer,
// in order of first occurrence.
func CarrierCodes(raws []json.RawMessage) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, raw := range raws {
		itineraries := gjson.GetBytes(raw, "itineraries")
		if !itineraries.IsArray() {
			continue
		}
		for _, it := range itineraries.Array() {
			segments := it.Get("segments")
			if !segments.IsArray() {
				continue
			}
			for _, s := range segments.Array() {
				code := optString(s, "carrierCode")
				if code == nil || *code == "" {
					continue
				}
				if _, ok := seen[*code]; !ok {
					seen[*code] = struct{}{}
					codes = append(codes, *code)
				}
			}
		}
	}
	return codes
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	for _, v := range r.Array() {
		if v.Type == gjson.String {
			out = append(out, v.Str)
		}
	}
	return out
}
