// Package textwrap breaks display text into fixed-width lines.
package textwrap

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap collapses whitespace in text and splits it into lines no wider than
// width runes. Words longer than width are placed on their own line
// unbroken. A width of zero or less keeps the text on one line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	flat := strings.Join(words, " ")
	if width <= 0 {
		return []string{flat}
	}
	return strings.Split(wordwrap.WrapString(flat, uint(width)), "\n")
}
