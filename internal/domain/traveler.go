package domain

import (
	"strconv"
	"strings"
)

// Defaults applied when building a traveler.
const (
	DefaultTravelerID         = "1"
	DefaultDeviceType         = "MOBILE"
	DefaultCountryCallingCode = "1"
	DefaultDocumentType       = "PASSPORT"
)

// TravelerInput is the caller-supplied traveler data.
type TravelerInput struct {
	FirstName          string `json:"firstName" validate:"required"`
	LastName           string `json:"lastName" validate:"required"`
	DateOfBirth        string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	PhoneCountryCode   string `json:"phoneCountryCode,omitempty" validate:"omitempty,number,min=1,max=3"`
	PhoneNumber        string `json:"phoneNumber,omitempty" validate:"omitempty,number,min=7,max=20"`
	DeviceType         string `json:"deviceType,omitempty"`
	DocumentType       string `json:"documentType,omitempty"`
	DocumentNumber     string `json:"documentNumber,omitempty"`
	PassportExpiryDate string `json:"passportExpiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Nationality        string `json:"nationality,omitempty" validate:"omitempty,len=2,uppercase,alpha"`
	IssuanceCountry    string `json:"issuanceCountry,omitempty" validate:"omitempty,len=2,uppercase,alpha"`
}

// Traveler is the provider-shaped traveler used inside an order payload.
type Traveler struct {
	ID          string           `json:"id"`
	DateOfBirth string           `json:"dateOfBirth"`
	Name        TravelerName     `json:"name"`
	Contact     *TravelerContact `json:"contact,omitempty"`
	Documents   []TravelDocument `json:"documents,omitempty"`
}

// TravelerName is the traveler's legal name.
type TravelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TravelerContact holds phone contacts.
type TravelerContact struct {
	Phones []Phone `json:"phones"`
}

// Phone is a single phone contact.
type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

// TravelDocument is an identity document such as a passport.
type TravelDocument struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	IssuanceCountry string `json:"issuanceCountry,omitempty"`
	Holder          bool   `json:"holder"`
}

// NewTraveler builds a Traveler from input. Contact and document sections are only
// present when a phone number or document number is supplied.
func NewTraveler(in TravelerInput, id string) Traveler {
	if isBlank(id) {
		id = DefaultTravelerID
	}

	t := Traveler{
		ID:          id,
		DateOfBirth: in.DateOfBirth,
		Name: TravelerName{
			FirstName: in.FirstName,
			LastName:  in.LastName,
		},
	}

	if !isBlank(in.PhoneNumber) {
		t.Contact = &TravelerContact{
			Phones: []Phone{{
				DeviceType:         orDefault(in.DeviceType, DefaultDeviceType),
				CountryCallingCode: orDefault(in.PhoneCountryCode, DefaultCountryCallingCode),
				Number:             in.PhoneNumber,
			}},
		}
	}

	if !isBlank(in.DocumentNumber) {
		doc := TravelDocument{
			DocumentType: orDefault(in.DocumentType, DefaultDocumentType),
			Number:       in.DocumentNumber,
			Holder:       true,
		}
		if !isBlank(in.PassportExpiryDate) {
			doc.ExpiryDate = in.PassportExpiryDate
		}
		if !isBlank(in.Nationality) {
			doc.Nationality = in.Nationality
		}
		if !isBlank(in.IssuanceCountry) {
			doc.IssuanceCountry = in.IssuanceCountry
		}
		t.Documents = []TravelDocument{doc}
	}

	return t
}

// NewTravelers builds travelers with ids "1".."N" in input order.
func NewTravelers(inputs []TravelerInput) []Traveler {
	out := make([]Traveler, 0, len(inputs))
	for i, in := range inputs {
		out = append(out, NewTraveler(in, strconv.Itoa(i+1)))
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func orDefault(s, def string) string {
	if isBlank(s) {
		return def
	}
	return s
}
