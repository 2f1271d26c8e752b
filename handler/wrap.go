package handler

import "strings"

// wrapWidth is the column the console wraps long messages at.
const wrapWidth = 60

// wordWrap wraps a single source line to the given width, breaking only
// at spaces and tabs. Whitespace at a break point is dropped; hyphenated
// words are never split. A token longer than the width is hard-broken,
// since the alternative is exceeding the terminal width anyway.
func wordWrap(text string, width int) []string {
	runes := []rune(text)
	if len(runes) <= width {
		return []string{strings.TrimRight(text, " \t")}
	}

	var lines []string
	i := 0
	for i < len(runes) {
		if len(runes)-i <= width {
			lines = append(lines, trimSegment(runes[i:]))
			break
		}

		lastSpace := -1
		for j := i + width; j > i; j-- {
			if runes[j] == ' ' || runes[j] == '\t' {
				lastSpace = j
				break
			}
		}

		if lastSpace >= 0 {
			lines = append(lines, trimSegment(runes[i:lastSpace]))
			i = lastSpace + 1
		} else {
			lines = append(lines, string(runes[i:i+width]))
			i += width
		}

		// Drop the whitespace a new line would otherwise start with.
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
			i++
		}
	}

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func trimSegment(runes []rune) string {
	return strings.TrimRight(string(runes), " \t")
}

// wrapMessage wraps every source line of a message, keeping explicit
// newlines as paragraph breaks.
func wrapMessage(msg string, width int) []string {
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		lines = append(lines, wordWrap(line, width)...)
	}
	return lines
}
