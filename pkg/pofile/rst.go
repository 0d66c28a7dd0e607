package pofile

import "strings"

// ToRST extracts the translations of a catalog as markup text. Each
// translation starts on the line of its msgid, so findings point into the
// catalog itself. Untranslated, fuzzy and obsolete entries are skipped.
func ToRST(text string) (string, error) {
	catalog, err := Parse(text)
	if err != nil {
		return "", err
	}
	return catalog.RST(), nil
}

// RST renders the translated entries of c.
func (c *Catalog) RST() string {
	var (
		out   strings.Builder
		lines int
	)
	for _, e := range c.TranslatedEntries() {
		for lines+1 < e.Line {
			out.WriteString("\n")
			lines++
		}
		for _, line := range splitLines(e.Translation()) {
			out.WriteString(line)
			out.WriteString("\n")
			lines++
		}
	}
	return out.String()
}

// splitLines splits on LF, CRLF and CR, dropping terminators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
