package richtext

import (
	"testing"
)

func TestExtractResourcePaths(t *testing.T) {
	tests := []struct {
		name       string
		serialized string
		want       []string
	}{
		{
			name:       "no references",
			serialized: `{"blocks":[{"type":"paragraph","text":"plain"}]}`,
			want:       nil,
		},
		{
			name:       "single reference",
			serialized: `{"blocks":[{"type":"image","src":"safe-file:///data/attachments/a.png"}]}`,
			want:       []string{"/data/attachments/a.png"},
		},
		{
			name:       "percent-encoded path decodes",
			serialized: `{"src":"safe-file:///data/my%20files/pic%20one.png"}`,
			want:       []string{"/data/my files/pic one.png"},
		},
		{
			name: "duplicates collapse",
			serialized: `{"a":"safe-file:///data/a.png","b":"safe-file:///data/a.png",` +
				`"c":"safe-file:///data/b.png"}`,
			want: []string{"/data/a.png", "/data/b.png"},
		},
		{
			name:       "bad escape kept raw",
			serialized: `{"src":"safe-file:///data/half%2"}`,
			want:       []string{"/data/half%2"},
		},
		{
			name:       "reference ends at quote",
			serialized: `{"src":"safe-file:///data/a.png","next":"text"}`,
			want:       []string{"/data/a.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractResourcePaths(tt.serialized)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractResourcePaths() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("path[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResourceURLRoundTrip(t *testing.T) {
	path := "/data/my files/pic one.png"
	url := ResourceURL(path)

	paths := ExtractResourcePaths(`{"src":"` + url + `"}`)
	if len(paths) != 1 || paths[0] != path {
		t.Errorf("round trip = %v, want [%q]", paths, path)
	}
}
