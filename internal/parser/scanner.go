package parser

import (
	"bufio"
	"io"
	"strconv"

	"iolens/internal/model"
)

// Scanner reads one iostat dump line by line and emits a LatencyRecord for
// every valid device row. Parsing is best-effort and line-local: a malformed
// line is skipped silently and never aborts the rest of the file.
type Scanner struct {
	host string
	name string // base file name
	path string

	tracker Tracker

	lines   int // total lines read
	records int // device rows emitted
	skipped int // candidate-looking lines that failed to parse
}

// NewScanner creates a Scanner for one dump file. host is the identifier
// extracted from the file name, name its base name, path its full path.
func NewScanner(host, name, path string) *Scanner {
	return &Scanner{host: host, name: name, path: path}
}

// Scan consumes the reader to EOF and returns every device row it could
// parse, in file order. The only error it can return is a read failure on r.
func (s *Scanner) Scan(r io.Reader) ([]model.LatencyRecord, error) {
	var out []model.LatencyRecord

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		s.lines++
		if rec, ok := s.line(sc.Text()); ok {
			out = append(out, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// Lines reports how many lines have been read so far.
func (s *Scanner) Lines() int { return s.lines }

// Records reports how many device rows were emitted.
func (s *Scanner) Records() int { return s.records }

// Skipped reports how many lines looked like data but failed to parse.
func (s *Scanner) Skipped() int { return s.skipped }

// line processes one raw line and returns a record if it is a valid device
// row. Timestamp headers update the tracker; the column header, avg-cpu
// blocks and the Linux banner are recognized noise.
func (s *Scanner) line(raw string) (model.LatencyRecord, bool) {
	cleaned := CleanLine(raw)
	tokens := Tokenize(cleaned)
	if len(tokens) == 0 {
		return model.LatencyRecord{}, false
	}

	if s.tracker.Observe(tokens) {
		return model.LatencyRecord{}, false
	}

	switch tokens[0] {
	case "Device", "Device:", "Linux", "avg-cpu:":
		return model.LatencyRecord{}, false
	}

	rec, ok := s.build(raw, cleaned, tokens)
	if !ok {
		s.skipped++
		return model.LatencyRecord{}, false
	}
	s.records++
	return rec, true
}

// build assembles an immutable LatencyRecord from a tokenized data row.
// The row must be the device token followed by exactly fifteen numeric
// columns; anything else is rejected.
func (s *Scanner) build(raw, cleaned string, tokens []string) (model.LatencyRecord, bool) {
	if len(tokens) != model.NumColumns {
		return model.LatencyRecord{}, false
	}

	values := make([]float64, model.NumColumns)
	for i := 1; i < model.NumColumns; i++ {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return model.LatencyRecord{}, false
		}
		values[i] = v
	}

	fields := make([]model.Field, model.NumColumns)
	for i, name := range model.Columns {
		fields[i] = model.Field{Name: name, Value: tokens[i]}
	}

	readAwait := values[model.ColReadAwait]
	writeAwait := values[model.ColWriteAwait]
	maxAwait := readAwait
	if writeAwait > maxAwait {
		maxAwait = writeAwait
	}

	return model.LatencyRecord{
		Host:        s.host,
		SourceFile:  s.name,
		FilePath:    s.path,
		LineNumber:  s.lines,
		Timestamp:   s.tracker.Current(),
		Device:      tokens[model.ColDevice],
		Fields:      fields,
		ReadAwait:   readAwait,
		WriteAwait:  writeAwait,
		MaxAwait:    maxAwait,
		RawLine:     raw,
		CleanedLine: cleaned,
	}, true
}
