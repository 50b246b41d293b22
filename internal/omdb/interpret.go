package omdb

import (
	stdErrors "errors"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/lepinkainen/movieinfo/internal/errors"
)

var errMalformedPayload = stdErrors.New("malformed payload")

// Interpret parses a raw OMDb response body.
//
// Invalid JSON is a TransportError. A document whose "Response" is not "True"
// is a NotFoundError. Otherwise every key in FieldKeys is extracted on its
// own, missing keys becoming NotAvailable. Text is taken as-is for strings,
// numbers and booleans; null, objects and arrays yield an empty string.
func Interpret(raw []byte) (Fields, error) {
	return interpret("", raw)
}

func interpret(query string, raw []byte) (Fields, error) {
	if !gjson.ValidBytes(raw) || !utf8.Valid(raw) {
		return nil, errors.NewTransportError("omdb decode", errMalformedPayload)
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errors.NewNotFoundError(query, "")
	}

	if status := doc.Get("Response"); !status.Exists() || status.String() != "True" {
		return nil, errors.NewNotFoundError(query, doc.Get("Error").String())
	}

	fields := make(Fields, len(FieldKeys))
	for _, key := range FieldKeys {
		value := doc.Get(key)
		if !value.Exists() {
			fields[key] = NotAvailable
			continue
		}
		fields[key] = text(value)
	}
	return fields, nil
}

// text returns the display form of a value. Objects and arrays have none.
func text(value gjson.Result) string {
	if value.IsObject() || value.IsArray() {
		return ""
	}
	return value.String()
}
