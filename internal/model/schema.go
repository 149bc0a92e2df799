package model

// Columns is the fixed column layout of an iostat extended-statistics data
// row: the device name followed by fifteen numeric columns. Data lines with
// any other shape are not device statistics.
var Columns = []string{
	"Device",
	"r/s",
	"w/s",
	"rkB/s",
	"wkB/s",
	"rrqm/s",
	"wrqm/s",
	"%rrqm",
	"%wrqm",
	"r_await",
	"w_await",
	"aqu-sz",
	"rareq-sz",
	"wareq-sz",
	"svctm",
	"%util",
}

// Named indexes into Columns. Everything that reads a row by position goes
// through these so the layout lives in one place.
const (
	ColDevice     = 0
	ColReadAwait  = 9
	ColWriteAwait = 10
)

// NumColumns is the exact token count of a valid data row.
var NumColumns = len(Columns)

// Field is one parsed column of a data row, kept in row order. Device is
// textual; every other value is the numeric token as it appeared in the file.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
