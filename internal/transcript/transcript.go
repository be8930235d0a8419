package transcript

import "strings"

// Entry is one line of a parsed dialogue.
type Entry struct {
	Speaker string
	Message string
	// Heading marks lines without a speaker, such as section labels.
	Heading bool
}

// Parse splits raw dialogue text into entries, one per line, in source order.
// A line is attributed to a speaker when it contains a colon with a non-empty
// left side; only the first colon separates speaker from message. Lines without
// a speaker, empty lines included, become headings. Empty input has no entries.
func Parse(raw string) []Entry {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseLine(line))
	}
	return entries
}

func parseLine(line string) Entry {
	left, right, found := strings.Cut(line, ":")
	if !found {
		return Entry{Message: strings.TrimSpace(line), Heading: true}
	}
	speaker := strings.TrimSpace(left)
	message := strings.TrimSpace(right)
	if speaker == "" {
		return Entry{Message: message, Heading: true}
	}
	return Entry{Speaker: speaker, Message: message}
}

// Speakers returns the distinct speakers of entries in order of first appearance.
func Speakers(entries []Entry) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range entries {
		if e.Heading {
			continue
		}
		if _, ok := seen[e.Speaker]; ok {
			continue
		}
		seen[e.Speaker] = struct{}{}
		out = append(out, e.Speaker)
	}
	return out
}
