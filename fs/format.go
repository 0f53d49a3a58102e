// Package fs provides file-based output for extracted articles.
package fs

import (
	"strings"
	"unicode/utf8"
)

// Wrap reflows s into lines of at most width runes. Runs of whitespace,
// including newlines, collapse to a single space. Words longer than width
// are split across lines.
func Wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	if width <= 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		if lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}

	for _, w := range words {
		for utf8.RuneCountInString(w) > width {
			if lineLen == 0 {
				head, tail := splitRunes(w, width)
				lines = append(lines, head)
				w = tail
				continue
			}
			// Fill what is left of the current line with the head of the word.
			room := width - lineLen - 1
			if room <= 0 {
				flush()
				continue
			}
			head, tail := splitRunes(w, room)
			line.WriteByte(' ')
			line.WriteString(head)
			lineLen += 1 + room
			flush()
			w = tail
		}

		n := utf8.RuneCountInString(w)
		switch {
		case lineLen == 0:
			line.WriteString(w)
			lineLen = n
		case lineLen+1+n <= width:
			line.WriteByte(' ')
			line.WriteString(w)
			lineLen += 1 + n
		default:
			flush()
			line.WriteString(w)
			lineLen = n
		}
	}
	flush()

	return strings.Join(lines, "\n")
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}

// Format wraps every paragraph to width and joins them with separator.
// Blank paragraphs are skipped.
func Format(paragraphs []string, width int, separator string) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if w := Wrap(p, width); w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, separator)
}
