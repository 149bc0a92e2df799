package model

import "time"

// TimestampLayout is the header format iostat emits between sample blocks,
// e.g. "07/15/2025 02:30:45 PM".
const TimestampLayout = "01/02/2006 03:04:05 PM"

// LatencyRecord represents a single device-level latency observation parsed
// from an iostat dump. A record is built once and never mutated afterward.
type LatencyRecord struct {
	Host        string    `json:"host"`         // extracted from the file name
	SourceFile  string    `json:"source_file"`  // base name of the dump
	FilePath    string    `json:"file_path"`    // full path of the dump
	LineNumber  int       `json:"line_number"`  // 1-based line within the dump
	Timestamp   time.Time `json:"timestamp"`    // last header seen before this line; zero if none
	Device      string    `json:"device"`       // e.g. sda, dm-2, nvme0n1
	Fields      []Field   `json:"fields"`       // all sixteen columns in row order
	ReadAwait   float64   `json:"r_await"`      // ms
	WriteAwait  float64   `json:"w_await"`      // ms
	MaxAwait    float64   `json:"max_await"`    // max(ReadAwait, WriteAwait)
	RawLine     string    `json:"raw_line"`     // original line text
	CleanedLine string    `json:"cleaned_line"` // whitespace-normalized, paste prefix stripped
}

// TimestampText formats the record's timestamp the way it appeared in the
// dump, or "" when no header preceded the line.
func (r LatencyRecord) TimestampText() string {
	if r.Timestamp.IsZero() {
		return ""
	}
	return r.Timestamp.Format(TimestampLayout)
}
