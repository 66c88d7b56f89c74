package text

import (
	"fmt"
	"strings"
)

// SeparatorWidth is the number of '=' characters under the page count line.
const SeparatorWidth = 80

// Preamble is the page-count report written before any page is extracted.
func Preamble(numPages int) string {
	return fmt.Sprintf("PDF has %d pages\n\n%s\n", numPages, strings.Repeat("=", SeparatorWidth))
}

// PageEntry formats one page. n is 1-based.
func PageEntry(n int, pageText string) string {
	return fmt.Sprintf("\n--- Page %d ---\n%s", n, pageText)
}

func Join(entries []string) string {
	return strings.Join(entries, "\n")
}
