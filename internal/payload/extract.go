// Package payload splits apidoc example transcripts into a status code and a
// decoded JSON value.
//
// Examples are usually written as an HTTP transcript:
//
//	HTTP/1.1 201 Created
//	{"id": 7}
//
// but a bare JSON document is accepted too, in which case the status code
// defaults to 200.
package payload

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultStatusCode is used when an example has no status line.
const DefaultStatusCode = 200

var errTrailingData = errors.New("unexpected data after JSON value")

// Payload is a decoded example.
type Payload struct {
	// Code is the HTTP status code from the status line, or DefaultStatusCode.
	Code int
	// Value is the decoded JSON value. Numbers decode as json.Number.
	// It is an empty object when the JSON part could not be decoded.
	Value any
	// Raw is the JSON part of the transcript as written.
	Raw string
}

// Extract decodes content. A JSON decode failure is returned together with a
// usable Payload whose Value is an empty object.
func Extract(content string) (Payload, error) {
	start := strings.IndexAny(content, `{["`)
	if start < 0 {
		start = 0
	}
	prefix, body := content[:start], content[start:]

	p := Payload{
		Code: statusCode(prefix),
		Raw:  body,
	}

	v, err := decode(body)
	if err != nil {
		p.Value = map[string]any{}
		return p, fmt.Errorf("payload: invalid JSON example: %w", err)
	}
	p.Value = v
	return p, nil
}

// Compact returns the payload value as compact JSON text.
func (p Payload) Compact() (string, error) {
	data, err := json.Marshal(p.Value)
	if err != nil {
		return "", fmt.Errorf("payload: encoding example: %w", err)
	}
	return string(data), nil
}

func statusCode(prefix string) int {
	tokens := strings.Split(strings.TrimSpace(prefix), " ")
	if len(tokens) < 2 || !strings.HasPrefix(strings.ToLower(tokens[0]), "http") {
		return DefaultStatusCode
	}

	digits := tokens[1]
	start := 0
	if strings.HasPrefix(digits, "-") {
		start = 1
	}
	for i, r := range digits[start:] {
		if r < '0' || r > '9' {
			digits = digits[:start+i]
			break
		}
	}
	code, err := strconv.Atoi(digits)
	if err != nil {
		return DefaultStatusCode
	}
	return code
}

func decode(body string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}
