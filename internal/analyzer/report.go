package analyzer

import (
	"sort"

	"iolens/internal/model"
)

// BuildReport filters, ranks and aggregates the merged candidate set.
// Ranking is descending by max await with ties kept in discovery order
// (file order, then line order). Limit truncates only the ranked view; the
// host summaries and the histogram always cover the full qualifying set.
func BuildReport(candidates []model.LatencyRecord, opts Options) *model.Report {
	threshold := opts.EffectiveThreshold()

	var qualifying []model.LatencyRecord
	for _, rec := range candidates {
		if rec.MaxAwait >= threshold {
			qualifying = append(qualifying, rec)
		}
	}

	ranked := make([]model.LatencyRecord, len(qualifying))
	copy(ranked, qualifying)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MaxAwait > ranked[j].MaxAwait
	})

	view := ranked
	if opts.Limit > 0 && opts.Limit < len(view) {
		view = view[:opts.Limit]
	}

	return &model.Report{
		Threshold:       threshold,
		ExtremeOnly:     opts.ExtremeOnly,
		Limit:           opts.Limit,
		TotalCandidates: len(candidates),
		TotalQualifying: len(qualifying),
		Ranked:          view,
		Hosts:           summarizeHosts(qualifying, threshold),
		Histogram:       histogram(qualifying, threshold),
	}
}

// summarizeHosts groups the qualifying set by host. Both reductions here are
// order-independent; only the sort on the result keeps output stable.
func summarizeHosts(qualifying []model.LatencyRecord, threshold float64) []model.HostSummary {
	byHost := make(map[string]*model.HostSummary)
	for _, rec := range qualifying {
		sum, ok := byHost[rec.Host]
		if !ok {
			sum = &model.HostSummary{Host: rec.Host}
			byHost[rec.Host] = sum
		}
		sum.EntryCount++
		if rec.MaxAwait > sum.MaxAwaitSeen {
			sum.MaxAwaitSeen = rec.MaxAwait
		}
	}

	hosts := make([]model.HostSummary, 0, len(byHost))
	for _, sum := range byHost {
		sum.DominantTier = model.Classify(sum.MaxAwaitSeen, threshold).String()
		hosts = append(hosts, *sum)
	}
	sort.Slice(hosts, func(i, j int) bool { return hosts[i].Host < hosts[j].Host })
	return hosts
}

// histogram counts qualifying records per tier, all tiers present even when
// zero.
func histogram(qualifying []model.LatencyRecord, threshold float64) model.Histogram {
	h := model.NewHistogram()
	for _, rec := range qualifying {
		h[model.Classify(rec.MaxAwait, threshold).String()]++
	}
	return h
}
