package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"iolens/internal/model"
)

// Renderer writes a finished analysis report to an output stream.
type Renderer interface {
	Render(report *model.Report) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal report)
// ---------------------------------------------------------------------------

var (
	styleCatastrophic = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // bold red
	styleCritical     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleExtreme      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	styleVeryHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleSevere       = lipgloss.NewStyle().Foreground(lipgloss.Color("201")) // magenta
	styleMediumHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange
	styleSlow         = lipgloss.NewStyle().Foreground(lipgloss.Color("137")) // brown
	styleBold         = lipgloss.NewStyle().Bold(true)
	styleHigh         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func severityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityCatastrophic:
		return styleCatastrophic
	case model.SeverityCritical:
		return styleCritical
	case model.SeverityExtreme:
		return styleExtreme
	case model.SeverityVeryHigh:
		return styleVeryHigh
	case model.SeveritySevere:
		return styleSevere
	case model.SeverityMediumHigh:
		return styleMediumHigh
	default:
		return styleSlow
	}
}

// TextRenderer prints the report to the terminal with severity-based colors:
// a per-server summary, the ranked table, optional per-entry detail blocks
// and the severity breakdown.
type TextRenderer struct {
	w        io.Writer
	detailed bool
}

// NewTextRenderer returns a Renderer that writes the colorized report to
// stdout. With detailed set, every ranked entry gets a full field dump.
func NewTextRenderer(detailed bool) *TextRenderer {
	return &TextRenderer{w: os.Stdout, detailed: detailed}
}

func (r *TextRenderer) Render(rep *model.Report) error {
	if rep.TotalQualifying == 0 {
		fmt.Fprintf(r.w, "\nNo r_await or w_await times found greater than %gms\n", rep.Threshold)
		return nil
	}

	heavy := strings.Repeat("═", 85)

	fmt.Fprintf(r.w, "\n🎯 FOUND %d entries with await times >= %g ms\n", rep.TotalQualifying, rep.Threshold)
	fmt.Fprintln(r.w, heavy)

	r.serverSummary(rep, heavy)
	r.summaryTable(rep)
	if r.detailed {
		r.detailedEntries(rep)
	}
	r.severityBreakdown(rep, heavy)
	return nil
}

func (r *TextRenderer) serverSummary(rep *model.Report, heavy string) {
	fmt.Fprintf(r.w, "\n🖥️  SUMMARY BY SERVER:\n")
	fmt.Fprintln(r.w, heavy)
	for _, h := range rep.Hosts {
		tier := model.Classify(h.MaxAwaitSeen, rep.Threshold)
		fmt.Fprintf(r.w, "%s Server %s: %3d entries, max await: %s (%s)\n",
			tier.Emoji(), h.Host, h.EntryCount,
			styleBold.Render(fmt.Sprintf("%8.2fms", h.MaxAwaitSeen)),
			severityStyle(tier).Render(tier.String()))
	}
}

func (r *TextRenderer) summaryTable(rep *model.Report) {
	fmt.Fprintf(r.w, "\n\n📊 SUMMARY TABLE - Top entries >= %g ms:\n", rep.Threshold)
	wide := strings.Repeat("═", 140)
	fmt.Fprintln(r.w, wide)
	fmt.Fprintf(r.w, "%-4s %-2s %-15s %-38s %-6s %-8s %-10s %-10s %-10s %-20s\n",
		"#", "", "Server", "File", "Line", "Dev", "r_await", "w_await", "Max", "Timestamp")
	fmt.Fprintln(r.w, wide)

	for i, rec := range rep.Ranked {
		tier := model.Classify(rec.MaxAwait, rep.Threshold)

		maxCol := fmt.Sprintf("%8.2f", rec.MaxAwait)
		if tier != model.SeverityNone && tier != model.SeveritySlow {
			maxCol = severityStyle(tier).Render(maxCol)
		}
		readCol := fmt.Sprintf("%8.2f", rec.ReadAwait)
		if rec.ReadAwait == rec.MaxAwait && rec.ReadAwait >= model.MediumHighMin {
			readCol = styleHigh.Render(readCol)
		}
		writeCol := fmt.Sprintf("%8.2f", rec.WriteAwait)
		if rec.WriteAwait == rec.MaxAwait && rec.WriteAwait >= model.MediumHighMin {
			writeCol = styleHigh.Render(writeCol)
		}

		fmt.Fprintf(r.w, "%-4d %-2s %-15s %-38s %-6d %-8s %-10s %-10s %-10s %-20s\n",
			i+1, tier.Emoji(), rec.Host, rec.SourceFile, rec.LineNumber, rec.Device,
			readCol, writeCol, maxCol, rec.TimestampText())
	}
}

func (r *TextRenderer) detailedEntries(rep *model.Report) {
	fmt.Fprintf(r.w, "\n\nDETAILED ENTRIES:\n")
	for i, rec := range rep.Ranked {
		r.detailedEntry(rep, rec, i)
	}
}

func (r *TextRenderer) detailedEntry(rep *model.Report, rec model.LatencyRecord, index int) {
	tier := model.Classify(rec.MaxAwait, rep.Threshold)
	line := strings.Repeat("=", 85)

	fmt.Fprintf(r.w, "\n%s\n", line)
	fmt.Fprintf(r.w, "%s Entry #%d - %s\n", tier.Emoji(), index+1, severityStyle(tier).Render(tier.String()))
	fmt.Fprintln(r.w, line)
	fmt.Fprintf(r.w, "🖥️  Server: %s\n", styleBold.Render(rec.Host))
	fmt.Fprintf(r.w, "📁 Source File: %s\n", rec.SourceFile)
	fmt.Fprintf(r.w, "📍 Full Path: %s\n", rec.FilePath)
	fmt.Fprintf(r.w, "📏 Line Number: %s\n", styleBold.Render(fmt.Sprintf("%d", rec.LineNumber)))
	fmt.Fprintf(r.w, "⏰ Timestamp: %s\n", rec.TimestampText())
	fmt.Fprintf(r.w, "💾 Device: %s\n", styleBold.Render(rec.Device))
	fmt.Fprintf(r.w, "📖 Read Await: %.2f ms\n", rec.ReadAwait)
	fmt.Fprintf(r.w, "✍️  Write Await: %s\n", styleBold.Render(fmt.Sprintf("%.2f ms", rec.WriteAwait)))
	fmt.Fprintf(r.w, "📊 Max Await: %s\n", styleBold.Render(fmt.Sprintf("%.2f ms", rec.MaxAwait)))
	fmt.Fprintf(r.w, "\n📄 Original Line from File:\n   %s\n", rec.RawLine)
	fmt.Fprintf(r.w, "\n🔧 Cleaned/Parsed Line:\n   %s\n", rec.CleanedLine)

	fmt.Fprintf(r.w, "\n📋 Parsed Fields:\n")
	for i, f := range rec.Fields {
		marker := ""
		switch {
		case f.Name == "r_await" && rec.ReadAwait >= model.MediumHighMin:
			marker = " " + styleHigh.Render("<-- HIGH READ")
		case f.Name == "w_await" && rec.WriteAwait >= model.MediumHighMin:
			marker = " " + styleHigh.Render("<-- HIGH WRITE")
		}
		fmt.Fprintf(r.w, "   %2d. %-10s: %12s%s\n", i, f.Name, f.Value, marker)
	}
}

func (r *TextRenderer) severityBreakdown(rep *model.Report, heavy string) {
	fmt.Fprintf(r.w, "\n\n📈 SEVERITY BREAKDOWN:\n")
	fmt.Fprintln(r.w, heavy)
	for _, tier := range model.Tiers {
		count := rep.Histogram[tier.String()]
		if tier == model.SeveritySlow && count == 0 {
			continue // the catch-all bucket is shown only when populated
		}
		label := fmt.Sprintf("%s (%s):", tier.String(), tier.Range())
		fmt.Fprintf(r.w, "%s %-28s %s\n", tier.Emoji(), label,
			severityStyle(tier).Render(fmt.Sprintf("%3d entries", count)))
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the whole report as one JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes indented JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(rep *model.Report) error {
	return r.enc.Encode(rep)
}
