package parser

import (
	"strings"
	"time"

	"iolens/internal/model"
)

// ---------------------------------------------------------------------------
// Line cleaning & tokenizing
// ---------------------------------------------------------------------------

// CleanLine normalizes one raw dump line: a leading "N|" paste prefix (an
// all-digit segment before the first pipe, left behind by editors that copy
// line numbers) is stripped, then surrounding whitespace is trimmed.
func CleanLine(raw string) string {
	line := raw
	if idx := strings.IndexByte(line, '|'); idx > 0 {
		if isDigits(strings.TrimSpace(line[:idx])) {
			line = line[idx+1:]
		}
	}
	return strings.TrimSpace(line)
}

// Tokenize splits a cleaned line on runs of whitespace into non-empty
// tokens. A blank line yields an empty slice. Tokenizing cannot fail; it can
// only return fewer tokens than a data row needs.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Timestamp tracking
// ---------------------------------------------------------------------------

// Tracker carries the most recent timestamp header seen while scanning one
// file. Each file gets its own Tracker, so files can be scanned independently.
type Tracker struct {
	current time.Time
}

// Observe checks whether the tokenized line is a timestamp header
// ("MM/DD/YYYY HH:MM:SS AM|PM"). Headers update the tracker and return true;
// anything else, including a header-shaped line that fails to parse, leaves
// the state untouched and returns false.
func (t *Tracker) Observe(tokens []string) bool {
	if len(tokens) != 3 {
		return false
	}
	if tokens[2] != "AM" && tokens[2] != "PM" {
		return false
	}
	ts, err := time.Parse(model.TimestampLayout, strings.Join(tokens, " "))
	if err != nil {
		return false
	}
	t.current = ts
	return true
}

// Current returns the active timestamp, zero if no header has been seen yet.
func (t *Tracker) Current() time.Time {
	return t.current
}
