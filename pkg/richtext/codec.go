package richtext

import (
	"encoding/json"
	"strings"
)

// Encode serializes a document to its persisted textual form. A nil
// document encodes as the empty document.
func Encode(doc Document) (string, error) {
	if doc == nil {
		doc = Empty()
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses persisted text back into a document. Blank or malformed
// text degrades to the empty document; the second return value is false
// when that happened so callers can log/report the degrade. Decode never
// returns an error: a corrupt row must not take down a read.
func Decode(text string) (Document, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty(), true
	}

	var doc Document
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return Empty(), false
	}
	if doc == nil {
		doc = Empty()
	}
	return doc, true
}

// IsSerialized reports whether raw already looks like an encoded document,
// in which case it is stored as-is instead of being re-encoded.
func IsSerialized(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed))
}
