package engine

import (
	"strings"
	"unicode/utf8"
)

// defaultFuncs returns the functions available to built-in engine templates.
func defaultFuncs() map[string]any {
	return map[string]any{
		"truncate_chars": truncateChars,
		"upper":          strings.ToUpper,
		"lower":          strings.ToLower,
		"join":           strings.Join,
	}
}

// truncateChars truncates text to at most maxChars runes.
func truncateChars(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars])
}
