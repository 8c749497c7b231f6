package value

import (
	"strings"
	"unicode/utf8"
)

// stringMethods is consulted by Send for string subjects, which carry no
// methods of their own. The subject is passed as the first argument.
var stringMethods = map[string]any{
	"ToUpper":    strings.ToUpper,
	"ToLower":    strings.ToLower,
	"TrimSpace":  strings.TrimSpace,
	"Trim":       strings.Trim,
	"TrimPrefix": strings.TrimPrefix,
	"TrimSuffix": strings.TrimSuffix,
	"HasPrefix":  strings.HasPrefix,
	"HasSuffix":  strings.HasSuffix,
	"Contains":   strings.Contains,
	"Index":      strings.Index,
	"Count":      strings.Count,
	"EqualFold":  strings.EqualFold,
	"Split":      strings.Split,
	"Fields":     strings.Fields,
	"Repeat":     strings.Repeat,
	"ReplaceAll": strings.ReplaceAll,
	"Len":        func(s string) int { return utf8.RuneCountInString(s) },
	"Substr":     substr,
	"Slice":      slice,
}

// substr returns up to length runes starting at start.
func substr(s string, start, length int) string {
	r := []rune(s)
	start = clamp(start, len(r))
	end := clamp(start+length, len(r))
	if end < start {
		return ""
	}
	return string(r[start:end])
}

// slice returns the runes in [start, end); negative bounds count from the end.
func slice(s string, start, end int) string {
	r := []rune(s)
	start = clamp(start, len(r))
	end = clamp(end, len(r))
	if end < start {
		return ""
	}
	return string(r[start:end])
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
