// Package footnotes assigns reference symbols to annotation text.
package footnotes

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/textwrap"
)

// Symbols are handed out in this order as new notes are registered
var Symbols = []string{"†", "‡", "§", "¶", "**", "††", "‡‡", "§§", "¶¶", "***"}

// Registry is an append-only, first-use ordered mapping from note text to
// symbol. It lives for exactly one character.
type Registry struct {
	notes   []deltagreen.Footnote
	symbols map[string]string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{symbols: make(map[string]string)}
}

// Mark returns the symbol for text, registering it on first use.
// Empty text has no marker. Once every symbol is taken new notes are
// dropped with a warning.
func (r *Registry) Mark(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if symbol, ok := r.symbols[text]; ok {
		return symbol
	}
	if len(r.notes) >= len(Symbols) {
		slog.Warn("Footnote symbols exhausted, dropping note",
			"note", text,
			"capacity", len(Symbols),
		)
		return ""
	}

	symbol := Symbols[len(r.notes)]
	r.symbols[text] = symbol
	r.notes = append(r.notes, deltagreen.Footnote{Symbol: symbol, Text: text})
	return symbol
}

// Len returns the number of registered notes
func (r *Registry) Len() int {
	return len(r.notes)
}

// Notes returns the registered notes in first-use order
func (r *Registry) Notes() []deltagreen.Footnote {
	return append([]deltagreen.Footnote(nil), r.notes...)
}

// Render wraps every note behind its symbol and keeps at most maxLines lines.
func (r *Registry) Render(width, maxLines int) []string {
	var lines []string
	for _, note := range r.notes {
		lines = append(lines, hanging(note.Symbol+" ", note.Text, width)...)
	}

	if len(lines) > maxLines {
		slog.Warn("Footnotes exceed sheet space, truncating",
			"lines", len(lines),
			"max_lines", maxLines,
		)
		lines = lines[:maxLines]
	}
	return lines
}

// hanging wraps text behind prefix and indents continuation lines to line
// up with the first word after the prefix.
func hanging(prefix, text string, width int) []string {
	indent := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	lines := textwrap.Wrap(text, width-len(indent))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
			continue
		}
		lines[i] = indent + lines[i]
	}
	return lines
}
