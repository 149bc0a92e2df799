package model

// HostSummary aggregates the qualifying records of one host.
type HostSummary struct {
	Host         string  `json:"host"`
	EntryCount   int     `json:"entry_count"`
	MaxAwaitSeen float64 `json:"max_await_seen"`
	DominantTier string  `json:"dominant_tier"` // tier of MaxAwaitSeen
}

// Histogram counts qualifying records per severity tier. Every tier is
// present, zero-valued when unseen, so the report shape is stable.
type Histogram map[string]int

// NewHistogram returns a histogram with all tiers zero-filled.
func NewHistogram() Histogram {
	h := make(Histogram, len(Tiers))
	for _, tier := range Tiers {
		h[tier.String()] = 0
	}
	return h
}

// Report is the complete result of one analysis run. It is built once and
// handed read-only to renderers and the HTTP server.
type Report struct {
	Threshold       float64         `json:"threshold"`    // effective threshold in ms
	ExtremeOnly     bool            `json:"extreme_only"` // threshold was forced to >=1000ms
	Limit           int             `json:"limit"`        // 0 = unlimited detailed view
	FilesProcessed  int             `json:"files_processed"`
	FilesFailed     int             `json:"files_failed"`
	LinesSkipped    int             `json:"lines_skipped"`
	TotalCandidates int             `json:"total_candidates"` // parsed device rows, any latency
	TotalQualifying int             `json:"total_qualifying"` // rows at or above the threshold
	Ranked          []LatencyRecord `json:"entries"`          // descending max await, limited
	Hosts           []HostSummary   `json:"hosts"`            // sorted by host
	Histogram       Histogram       `json:"histogram"`
}
