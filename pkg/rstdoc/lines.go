package rstdoc

import "strings"

// SplitLines splits text into lines, keeping each line's terminator. LF, CRLF and
// a lone CR all end a line. A final line without terminator is kept.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		switch text[idx] {
		case '\n':
			lines = append(lines, text[lineStart:idx+1])
			lineStart = idx + 1
		case '\r':
			if idx+1 < len(text) && text[idx+1] == '\n' {
				continue
			}
			lines = append(lines, text[lineStart:idx+1])
			lineStart = idx + 1
		}
	}

	if lineStart < len(text) {
		lines = append(lines, text[lineStart:])
	}

	return lines
}

// IsBlank reports whether line is nothing but a line terminator.
func IsBlank(line string) bool {
	return line == "\n" || line == "\r\n" || line == "\r"
}

// HasTerminator reports whether line ends with a line terminator.
func HasTerminator(line string) bool {
	return strings.HasSuffix(line, "\n") || strings.HasSuffix(line, "\r")
}

// TrimTerminator removes the line terminator, if any.
func TrimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Indent returns the number of leading spaces of line. Tabs do not count.
func Indent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// CountLines returns how many line breaks precede offset in text.
func CountLines(text string, offset int) int {
	return strings.Count(text[:offset], "\n")
}
