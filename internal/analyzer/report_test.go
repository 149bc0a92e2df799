package analyzer

import (
	"math/rand"
	"reflect"
	"testing"

	"iolens/internal/model"
)

// rec builds a minimal candidate record for aggregation tests.
func rec(host, device string, maxAwait float64) model.LatencyRecord {
	return model.LatencyRecord{
		Host:       host,
		Device:     device,
		ReadAwait:  maxAwait / 2,
		WriteAwait: maxAwait,
		MaxAwait:   maxAwait,
	}
}

func TestEffectiveThreshold(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want float64
	}{
		{"default", Options{}, DefaultThreshold},
		{"explicit", Options{Threshold: 50}, 50},
		{"extreme overrides low threshold", Options{Threshold: 50, ExtremeOnly: true}, 1000},
		{"extreme keeps higher threshold", Options{Threshold: 1500, ExtremeOnly: true}, 1500},
		{"limit never affects threshold", Options{Threshold: 50, Limit: 1}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.EffectiveThreshold(); got != tt.want {
				t.Errorf("EffectiveThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildReportScenario(t *testing.T) {
	// Two qualifying records on one host: 2847.50 (Critical) and 234.80 (Severe).
	candidates := []model.LatencyRecord{
		rec("10.0.0.5", "sdb", 234.80),
		rec("10.0.0.5", "dm-2", 2847.50),
	}

	report := BuildReport(candidates, Options{Threshold: 100})

	if report.TotalCandidates != 2 || report.TotalQualifying != 2 {
		t.Fatalf("counts: candidates=%d qualifying=%d", report.TotalCandidates, report.TotalQualifying)
	}
	if len(report.Ranked) != 2 || report.Ranked[0].MaxAwait != 2847.50 || report.Ranked[1].MaxAwait != 234.80 {
		t.Errorf("ranked order wrong: %+v", report.Ranked)
	}

	if len(report.Hosts) != 1 {
		t.Fatalf("expected 1 host summary, got %d", len(report.Hosts))
	}
	h := report.Hosts[0]
	if h.Host != "10.0.0.5" || h.EntryCount != 2 || h.MaxAwaitSeen != 2847.50 {
		t.Errorf("host summary: %+v", h)
	}
	if h.DominantTier != "CRITICAL" {
		t.Errorf("dominant tier: got %s, want CRITICAL", h.DominantTier)
	}

	if report.Histogram["CRITICAL"] != 1 || report.Histogram["SEVERE"] != 1 {
		t.Errorf("histogram: %v", report.Histogram)
	}
	if report.Histogram["CATASTROPHIC"] != 0 || report.Histogram["SLOW"] != 0 {
		t.Errorf("expected zero-filled tiers, got %v", report.Histogram)
	}
}

func TestBuildReportExactCatastrophicBoundary(t *testing.T) {
	report := BuildReport([]model.LatencyRecord{rec("h", "sda", 5000.0)}, Options{Threshold: 5000})

	if report.TotalQualifying != 1 {
		t.Fatalf("record at exactly 5000 must qualify at threshold 5000")
	}
	if report.Histogram["CATASTROPHIC"] != 1 {
		t.Errorf("expected CATASTROPHIC, histogram: %v", report.Histogram)
	}
}

func TestBuildReportExtremeOnly(t *testing.T) {
	candidates := []model.LatencyRecord{
		rec("a", "sda", 60),
		rec("a", "sdb", 800),
		rec("b", "dm-0", 1200),
	}

	report := BuildReport(candidates, Options{Threshold: 50, ExtremeOnly: true})

	if report.Threshold != 1000 {
		t.Errorf("effective threshold: got %v, want 1000", report.Threshold)
	}
	if report.TotalQualifying != 1 || report.Ranked[0].MaxAwait != 1200 {
		t.Errorf("expected only the 1200ms record, got %+v", report.Ranked)
	}
}

func TestBuildReportThresholdMonotonicity(t *testing.T) {
	candidates := []model.LatencyRecord{
		rec("a", "sda", 120), rec("a", "sdb", 340), rec("b", "sda", 990),
		rec("b", "sdb", 2500), rec("c", "dm-1", 80), rec("c", "dm-2", 6000),
	}

	at := func(threshold float64) map[float64]bool {
		report := BuildReport(candidates, Options{Threshold: threshold})
		set := make(map[float64]bool)
		for _, r := range report.Ranked {
			set[r.MaxAwait] = true
		}
		return set
	}

	low, high := at(100), at(500)
	if len(high) >= len(low) {
		t.Fatalf("raising the threshold should shrink the set: %d vs %d", len(high), len(low))
	}
	for v := range high {
		if !low[v] {
			t.Errorf("record %v qualifies at 500 but not at 100", v)
		}
	}
}

func TestBuildReportLimitOnlyTruncatesRankedView(t *testing.T) {
	candidates := []model.LatencyRecord{
		rec("a", "sda", 150), rec("a", "sdb", 2500), rec("b", "sda", 700), rec("b", "sdb", 950),
	}

	unlimited := BuildReport(candidates, Options{Threshold: 100})
	limited := BuildReport(candidates, Options{Threshold: 100, Limit: 1})
	oversized := BuildReport(candidates, Options{Threshold: 100, Limit: 99})

	if len(limited.Ranked) != 1 {
		t.Errorf("limit 1: got %d ranked entries", len(limited.Ranked))
	}
	if len(oversized.Ranked) != 4 || len(unlimited.Ranked) != 4 {
		t.Errorf("expected full ranked view: %d / %d", len(oversized.Ranked), len(unlimited.Ranked))
	}

	for _, report := range []*model.Report{limited, oversized} {
		if !reflect.DeepEqual(report.Hosts, unlimited.Hosts) {
			t.Errorf("limit changed host summaries: %+v vs %+v", report.Hosts, unlimited.Hosts)
		}
		if !reflect.DeepEqual(report.Histogram, unlimited.Histogram) {
			t.Errorf("limit changed histogram: %v vs %v", report.Histogram, unlimited.Histogram)
		}
		if report.TotalQualifying != unlimited.TotalQualifying {
			t.Errorf("limit changed qualifying count: %d vs %d", report.TotalQualifying, unlimited.TotalQualifying)
		}
	}
}

func TestBuildReportTieBreakKeepsDiscoveryOrder(t *testing.T) {
	first := rec("a", "sda", 500)
	second := rec("b", "sdb", 500)
	report := BuildReport([]model.LatencyRecord{first, second, rec("c", "dm-0", 900)}, Options{Threshold: 100})

	if report.Ranked[0].MaxAwait != 900 {
		t.Fatalf("expected 900 first, got %v", report.Ranked[0].MaxAwait)
	}
	if report.Ranked[1].Host != "a" || report.Ranked[2].Host != "b" {
		t.Errorf("tie not broken by discovery order: %s then %s", report.Ranked[1].Host, report.Ranked[2].Host)
	}
}

func TestBuildReportAggregatesOrderInvariant(t *testing.T) {
	candidates := []model.LatencyRecord{
		rec("a", "sda", 150), rec("a", "sdb", 2500), rec("b", "sda", 700),
		rec("b", "sdb", 950), rec("c", "dm-2", 6000), rec("c", "dm-3", 260),
	}

	base := BuildReport(candidates, Options{Threshold: 100})

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]model.LatencyRecord, len(candidates))
		copy(shuffled, candidates)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		report := BuildReport(shuffled, Options{Threshold: 100})
		if !reflect.DeepEqual(report.Hosts, base.Hosts) {
			t.Fatalf("host summaries depend on input order: %+v vs %+v", report.Hosts, base.Hosts)
		}
		if !reflect.DeepEqual(report.Histogram, base.Histogram) {
			t.Fatalf("histogram depends on input order: %v vs %v", report.Histogram, base.Histogram)
		}
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, Options{Threshold: 100})

	if report.TotalQualifying != 0 || len(report.Ranked) != 0 || len(report.Hosts) != 0 {
		t.Errorf("empty input should produce an empty report: %+v", report)
	}
	if len(report.Histogram) != len(model.Tiers) {
		t.Errorf("histogram shape should be stable even when empty: %v", report.Histogram)
	}
}
