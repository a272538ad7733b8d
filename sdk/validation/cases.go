package validation

import (
	"strings"
	"unicode"
)

// CamelCaseToTitleCase converts a CamelCase identifier to words separated by spaces.
//
//	"ToDo"       -> "To Do"
//	"InProgress" -> "In Progress"
//	"XMLParser"  -> "XML Parser"
func CamelCaseToTitleCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i == 0 {
			result.WriteRune(unicode.ToUpper(r))
			continue
		}

		if !unicode.IsUpper(r) {
			result.WriteRune(r)
			continue
		}

		// word boundary after a lowercase rune, or at the end of an acronym
		prevIsLower := unicode.IsLower(runes[i-1])
		prevIsUpper := unicode.IsUpper(runes[i-1])
		nextIsLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

		if prevIsLower || (prevIsUpper && nextIsLower) {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}

	return result.String()
}
