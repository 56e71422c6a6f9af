package export

import (
	"strings"
	"unicode"
)

// fallbackName is used when the product name yields nothing filename-safe.
const fallbackName = "product"

// Filename derives a download filename from the product's Korean name, a
// descriptive suffix, and an extension. Characters unsafe on common
// filesystems are stripped; an empty or fully-stripped name degrades to a
// fallback literal instead of failing.
func Filename(productName, suffix, ext string) string {
	name := sanitizeName(productName)
	if name == "" {
		name = fallbackName
	}
	if suffix != "" {
		name += "_" + suffix
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r < 0x20 || r == 0x7F:
			// control characters
		case strings.ContainsRune(`/\:*?"<>|`, r):
			// reserved on Windows and path separators elsewhere
		case unicode.IsSpace(r):
			sb.WriteRune('_')
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Trim(sb.String(), "._")
}
