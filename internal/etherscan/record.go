package etherscan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single named value within a transaction record.
type Field struct {
	Name  string // the field name as returned by the API
	Value string // the field value, rendered as a string
}

// Record is a transaction as returned by the Etherscan API. Its schema is
// owned entirely by the API; fields are kept in the order in which they
// appear in the response document, since the CSV header downstream is derived
// from that order.
type Record struct {
	fields []Field
}

// Fields returns the record's fields in response-document order.
func (r Record) Fields() []Field {
	return r.fields
}

// Names returns the record's field names in response-document order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, field := range r.fields {
		names[i] = field.Name
	}

	return names
}

// Get returns the value of the named field and whether the field is present.
func (r Record) Get(name string) (string, bool) {
	for _, field := range r.fields {
		if field.Name == name {
			return field.Value, true
		}
	}

	return "", false
}

// UnmarshalJSON decodes a JSON object into the record, preserving the order
// of its keys. encoding/json's map decoding would lose that order, so the
// object is walked token by token instead.
func (r *Record) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	openingToken, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("failed to read start of record: %w", err)
	}

	if delim, isDelim := openingToken.(json.Delim); !isDelim || delim != '{' {
		return fmt.Errorf("expected a JSON object for a transaction record, got token %v", openingToken)
	}

	var fields []Field

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("failed to read record field name: %w", err)
		}

		keyName, isString := keyToken.(string)
		if !isString {
			return fmt.Errorf("expected a string field name, got token %v", keyToken)
		}

		// Decode consumes exactly the next value in the token stream
		var rawValue json.RawMessage
		if err := decoder.Decode(&rawValue); err != nil {
			return fmt.Errorf("failed to read value of record field '%s': %w", keyName, err)
		}

		fieldValue, err := renderValue(rawValue)
		if err != nil {
			return fmt.Errorf("failed to render value of record field '%s': %w", keyName, err)
		}

		fields = append(fields, Field{Name: keyName, Value: fieldValue})
	}

	r.fields = fields

	return nil
}

// renderValue converts a raw JSON value into its CSV cell representation:
// strings are unquoted, null becomes empty, and anything else (numbers,
// booleans, nested structures) is kept as its literal JSON text.
func renderValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var stringValue string
		if err := json.Unmarshal(trimmed, &stringValue); err != nil {
			return "", fmt.Errorf("failed to decode string value: %w", err)
		}

		return stringValue, nil
	case 'n':
		return "", nil
	default:
		return string(trimmed), nil
	}
}
