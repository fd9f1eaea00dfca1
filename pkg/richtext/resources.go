package richtext

import (
	"net/url"
	"regexp"
	"strings"
)

// ResourceScheme is the locator scheme the editor uses to address stored
// attachment files from inside note content. The shell registers the same
// scheme with its webview, so the serialized form of a note embedding an
// image contains "safe-file://<percent-encoded-absolute-path>".
const ResourceScheme = "safe-file://"

// A reference ends at the first character that cannot appear in a
// percent-encoded path: quote, whitespace, backslash or closing bracket.
var resourcePattern = regexp.MustCompile(`safe-file://[^"'\s\\)\]]+`)

// ExtractResourcePaths scans serialized content for embedded resource
// references and returns the decoded file-system paths. Duplicate
// references collapse to one entry. References that fail percent-decoding
// are kept raw rather than dropped, so a half-escaped reference still
// counts as in use.
func ExtractResourcePaths(serialized string) []string {
	matches := resourcePattern.FindAllString(serialized, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		encoded := strings.TrimPrefix(m, ResourceScheme)
		decoded, err := url.PathUnescape(encoded)
		if err != nil {
			decoded = encoded
		}
		if _, ok := seen[decoded]; ok {
			continue
		}
		seen[decoded] = struct{}{}
		paths = append(paths, decoded)
	}
	return paths
}

// ResourceURL builds the reference the editor embeds for a stored file.
func ResourceURL(path string) string {
	return ResourceScheme + url.PathEscape(path)
}
