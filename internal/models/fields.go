package models

import (
	"fmt"
	"strings"
)

// Field is a bit mask selecting address components a dialog may demand from
// the user before completing.
type Field uint

const (
	FieldStreetAddress Field = 1 << iota
	FieldLocality
	FieldRegion
	FieldPostalCode
	FieldCountry
)

// FieldNone selects no address components.
const FieldNone Field = 0

// fieldOrder fixes the sequence in which missing fields are prompted for.
var fieldOrder = []Field{
	FieldStreetAddress,
	FieldLocality,
	FieldRegion,
	FieldPostalCode,
	FieldCountry,
}

var fieldNames = map[Field]string{
	FieldStreetAddress: "street_address",
	FieldLocality:      "locality",
	FieldRegion:        "region",
	FieldPostalCode:    "postal_code",
	FieldCountry:       "country",
}

// Has reports whether f selects the given field.
func (f Field) Has(field Field) bool {
	return f&field != 0
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	var parts []string
	for _, field := range fieldOrder {
		if f.Has(field) {
			parts = append(parts, fieldNames[field])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseFields converts a comma-separated list of field names into a mask.
func ParseFields(s string) (Field, error) {
	fields := FieldNone
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		found := false
		for field, fieldName := range fieldNames {
			if fieldName == name {
				fields |= field
				found = true
				break
			}
		}
		if !found {
			return FieldNone, fmt.Errorf("models: unknown required field %q", name)
		}
	}
	return fields, nil
}

// MissingFields lists, in prompt order, the selected fields that are not yet
// set on the address. A nil address is missing every selected field.
func (f Field) MissingFields(addr *Address) []Field {
	var missing []Field
	for _, field := range fieldOrder {
		if !f.Has(field) {
			continue
		}
		if addr == nil || addr.FieldValue(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// FieldValue returns the address component selected by a single field bit.
func (a *Address) FieldValue(field Field) string {
	switch field {
	case FieldStreetAddress:
		return a.StreetAddress
	case FieldLocality:
		return a.Locality
	case FieldRegion:
		return a.AdminDistrict
	case FieldPostalCode:
		return a.PostalCode
	case FieldCountry:
		return a.Country
	}
	return ""
}

// SetFieldValue writes the address component selected by a single field bit.
func (a *Address) SetFieldValue(field Field, value string) {
	switch field {
	case FieldStreetAddress:
		a.StreetAddress = value
	case FieldLocality:
		a.Locality = value
	case FieldRegion:
		a.AdminDistrict = value
	case FieldPostalCode:
		a.PostalCode = value
	case FieldCountry:
		a.Country = value
	}
}
