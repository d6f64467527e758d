package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// OfferDocumentKind records which envelope a confirm payload arrived in.
type OfferDocumentKind string

// Supported confirm payload shapes, in unwrapping priority order.
const (
	OfferWrappedList   OfferDocumentKind = "wrapped_list"
	OfferWrappedObject OfferDocumentKind = "wrapped_object"
	OfferBare          OfferDocumentKind = "bare"
)

// OfferDocument is a single offer object extracted from a client payload.
// Offer holds the exact bytes of that object as they appeared in the payload.
type OfferDocument struct {
	Kind  OfferDocumentKind
	Offer json.RawMessage
}

// ParseOfferDocument unwraps a confirm payload. A non-empty "data" array yields its
// first element, a "data" object yields that object, anything else is the offer itself.
func ParseOfferDocument(payload []byte) (OfferDocument, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return OfferDocument{}, WrapInvalidOffer("payload is empty")
	}
	if !gjson.ValidBytes(trimmed) {
		return OfferDocument{}, WrapInvalidOffer("payload is not valid JSON")
	}

	root := gjson.ParseBytes(trimmed)
	if !root.IsObject() {
		return OfferDocument{}, WrapInvalidOffer("payload must be a JSON object")
	}

	data := root.Get("data")
	switch {
	case data.IsArray() && len(data.Array()) > 0:
		first := data.Array()[0]
		if !first.IsObject() {
			return OfferDocument{}, fmt.Errorf("%w: data[0] must be a JSON object", ErrUnexpectedOfferShape)
		}
		return OfferDocument{Kind: OfferWrappedList, Offer: json.RawMessage(first.Raw)}, nil
	case data.IsObject():
		return OfferDocument{Kind: OfferWrappedObject, Offer: json.RawMessage(data.Raw)}, nil
	default:
		return OfferDocument{Kind: OfferBare, Offer: json.RawMessage(trimmed)}, nil
	}
}
