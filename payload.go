package sifter

import (
	"encoding/json"
	"strings"
)

// PayloadContentKey is the payload field holding the HTML body.
const PayloadContentKey = "content"

// ParsePayload decodes a structured payload and returns its HTML content.
//
// An empty payload, or one without a content value, yields an empty string
// and no error. A payload that is not a JSON object, or whose content is not
// a string, returns an EINVALID error.
func ParsePayload(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return "", Errorf(EINVALID, "malformed payload: %v", err)
	}
	if fields == nil {
		return "", Errorf(EINVALID, "malformed payload: not an object")
	}

	content, ok := fields[PayloadContentKey]
	if !ok || string(content) == "null" {
		return "", nil
	}

	var html string
	if err := json.Unmarshal(content, &html); err != nil {
		return "", Errorf(EINVALID, "malformed payload: %s is not a string", PayloadContentKey)
	}
	return html, nil
}
