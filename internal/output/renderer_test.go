package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"iolens/internal/model"
)

func testReport() *model.Report {
	hist := model.NewHistogram()
	hist["CRITICAL"] = 1
	hist["SEVERE"] = 1

	fields := make([]model.Field, model.NumColumns)
	for i, name := range model.Columns {
		fields[i] = model.Field{Name: name, Value: "0.00"}
	}
	fields[model.ColDevice].Value = "dm-2"
	fields[model.ColWriteAwait].Value = "2847.50"

	return &model.Report{
		Threshold:       100,
		FilesProcessed:  1,
		TotalCandidates: 3,
		TotalQualifying: 2,
		Ranked: []model.LatencyRecord{
			{
				Host:        "10.0.0.5",
				SourceFile:  "iostat-10.0.0.5-20250715.output",
				FilePath:    "/dumps/iostat-10.0.0.5-20250715.output",
				LineNumber:  9,
				Device:      "dm-2",
				Fields:      fields,
				ReadAwait:   150.00,
				WriteAwait:  2847.50,
				MaxAwait:    2847.50,
				RawLine:     "dm-2 ...",
				CleanedLine: "dm-2 ...",
			},
			{
				Host:       "10.0.0.5",
				SourceFile: "iostat-10.0.0.5-20250715.output",
				LineNumber: 13,
				Device:     "sdb",
				ReadAwait:  234.80,
				WriteAwait: 12.40,
				MaxAwait:   234.80,
			},
		},
		Hosts: []model.HostSummary{
			{Host: "10.0.0.5", EntryCount: 2, MaxAwaitSeen: 2847.50, DominantTier: "CRITICAL"},
		},
		Histogram: hist,
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{w: &buf, detailed: true}

	if err := renderer.Render(testReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"FOUND 2 entries with await times >= 100 ms",
		"SUMMARY BY SERVER",
		"Server 10.0.0.5:   2 entries",
		"SUMMARY TABLE",
		"dm-2",
		"SEVERITY BREAKDOWN",
		"CRITICAL",
		"DETAILED ENTRIES",
		"<-- HIGH WRITE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTextRendererSkipsDetailWithoutFlag(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{w: &buf, detailed: false}

	if err := renderer.Render(testReport()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "DETAILED ENTRIES") {
		t.Error("detail blocks rendered without the detailed flag")
	}
}

func TestTextRendererEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{w: &buf}

	report := &model.Report{Threshold: 250, Histogram: model.NewHistogram()}
	if err := renderer.Render(report); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No r_await or w_await times found greater than 250ms") {
		t.Errorf("empty report message missing, got: %s", buf.String())
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	renderer := &JSONRenderer{enc: enc}

	if err := renderer.Render(testReport()); err != nil {
		t.Fatal(err)
	}

	var got model.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}

	if got.TotalQualifying != 2 {
		t.Errorf("expected 2 qualifying, got %d", got.TotalQualifying)
	}
	if len(got.Ranked) != 2 || got.Ranked[0].MaxAwait != 2847.50 {
		t.Errorf("ranked entries wrong: %+v", got.Ranked)
	}
	if got.Histogram["CRITICAL"] != 1 {
		t.Errorf("histogram wrong: %v", got.Histogram)
	}
}
