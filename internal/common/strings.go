package common

import (
	"path"
	"strings"
	"unicode"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SnakeCase converts a Go identifier to snake case, keeping acronym
// runs together: "OrderLine" -> "order_line", "HTTPServer" -> "http_server".
func SnakeCase(name string) string {
	runes := []rune(name)

	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 &&
				(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
					(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				sb.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
