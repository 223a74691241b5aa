package knowledge

import (
	"regexp"
	"strings"
)

// linePattern matches one data line of shape id,category,question,answer.
// The question and answer fields may be double-quote-wrapped to embed
// commas. Lines that do not match are dropped without error; noisy source
// data is expected, and a partial load is the normal outcome.
var linePattern = regexp.MustCompile(`^(\d+),([^,]+),"?([^"]+)"?,"?(.+?)"?$`)

type csvMatch struct {
	id       string
	category string
	question string
	answer   string
}

// idFunc assigns the id for the i-th successfully parsed line.
type idFunc func(m csvMatch, i int) string

// parseCSV extracts entries from newline-delimited CSV text. The first
// line is treated as a header and always skipped.
func parseCSV(raw string, assignID idFunc) []Entry {
	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var entries []Entry
	for _, line := range lines[1:] {
		m, ok := parseLine(line)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			ID:       assignID(m, len(entries)),
			Category: m.category,
			Question: m.question,
			Answer:   m.answer,
		})
	}
	return entries
}

// parseLine matches a single line against the four-field pattern.
// A malformed line never produces a partial entry.
func parseLine(line string) (csvMatch, bool) {
	if strings.TrimSpace(line) == "" {
		return csvMatch{}, false
	}
	groups := linePattern.FindStringSubmatch(line)
	if groups == nil {
		return csvMatch{}, false
	}
	return csvMatch{
		id:       groups[1],
		category: groups[2],
		question: groups[3],
		answer:   groups[4],
	}, true
}
