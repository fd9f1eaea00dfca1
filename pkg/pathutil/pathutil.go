// Package pathutil compares file-system paths the way the attachment
// sweep needs them compared: cleaned, forward-slashed and case-folded on
// platforms whose filesystems are case-insensitive.
package pathutil

import (
	"path/filepath"
	"runtime"
	"strings"
)

// caseInsensitive is true on platforms whose default filesystems compare
// paths without case (NTFS, APFS).
var caseInsensitive = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

func normalize(path string, foldCase bool) string {
	p := filepath.ToSlash(filepath.Clean(path))
	if foldCase {
		p = strings.ToLower(p)
	}
	return p
}

// Normalize returns the platform-consistent comparable form of a path:
// cleaned, separators forced to forward slashes, lower-cased when the
// platform filesystem is case-insensitive. Windows drive letters are
// folded by the same lower-casing.
func Normalize(path string) string {
	return normalize(path, caseInsensitive)
}

// Equal reports whether two paths address the same file after
// normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
