package richtext

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOk   bool
		wantKeys int
	}{
		{
			name:     "valid document",
			text:     `{"blocks":[{"type":"paragraph","text":"hello"}]}`,
			wantOk:   true,
			wantKeys: 1,
		},
		{
			name:     "blank text is the empty document",
			text:     "",
			wantOk:   true,
			wantKeys: 0,
		},
		{
			name:     "whitespace only",
			text:     "   \n\t",
			wantOk:   true,
			wantKeys: 0,
		},
		{
			name:     "malformed json degrades",
			text:     `{"blocks": [unterminated`,
			wantOk:   false,
			wantKeys: 0,
		},
		{
			name:     "truncated document degrades",
			text:     `{"blocks":[{"type":"para`,
			wantOk:   false,
			wantKeys: 0,
		},
		{
			name:     "json null degrades to empty without flagging",
			text:     `null`,
			wantOk:   true,
			wantKeys: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := Decode(tt.text)
			if ok != tt.wantOk {
				t.Errorf("Decode() ok = %v, want %v", ok, tt.wantOk)
			}
			if doc == nil {
				t.Fatal("Decode() returned nil document")
			}
			if len(doc) != tt.wantKeys {
				t.Errorf("Decode() keys = %d, want %d", len(doc), tt.wantKeys)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := Document{
		"blocks": []interface{}{
			map[string]interface{}{"type": "paragraph", "text": "hello world"},
		},
		"version": float64(2),
	}

	serialized, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, ok := Decode(serialized)
	if !ok {
		t.Fatal("Decode() flagged a document Encode just produced")
	}
	if decoded["version"] != float64(2) {
		t.Errorf("round trip lost version: got %v", decoded["version"])
	}
}

func TestEncodeNil(t *testing.T) {
	serialized, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	if serialized != "{}" {
		t.Errorf("Encode(nil) = %q, want {}", serialized)
	}
}

func TestIsSerialized(t *testing.T) {
	if !IsSerialized(`{"blocks":[]}`) {
		t.Error("valid object not recognized")
	}
	if IsSerialized("plain text") {
		t.Error("plain text recognized as serialized")
	}
	if IsSerialized(`{"broken`) {
		t.Error("broken json recognized as serialized")
	}
}
