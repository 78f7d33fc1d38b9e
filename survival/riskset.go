package survival

import (
	"cmp"
	"slices"

	"github.com/cwbudde/algo-surv/partition"
)

type observation struct {
	time  float64
	event bool
}

// group is one distinct time within a run of sorted observations.
type group struct {
	time   float64
	size   uint
	events uint
}

// RiskSet holds, for each distinct observation time in ascending order, the
// number of subjects still under observation and the number of events.
type RiskSet struct {
	Time   []float64
	AtRisk []uint
	Events []uint
}

// Len returns the number of distinct times.
func (r RiskSet) Len() int {
	return len(r.Time)
}

func sortObservations(time []float64, event []bool) []observation {
	obs := make([]observation, len(time))
	for i := range time {
		obs[i] = observation{time: time[i], event: event[i]}
	}
	slices.SortStableFunc(obs, func(a, b observation) int {
		return cmp.Compare(a.time, b.time)
	})
	return obs
}

// countGroups collapses sorted observations into one group per distinct time.
func countGroups(obs []observation) []group {
	var groups []group
	for _, o := range obs {
		if n := len(groups); n == 0 || groups[n-1].time != o.time {
			groups = append(groups, group{time: o.time})
		}
		g := &groups[len(groups)-1]
		g.size++
		if o.event {
			g.events++
		}
	}
	return groups
}

// mergeGroups concatenates per-partition groups in partition order. A tie
// split across a partition boundary shows up as equal times at the seam and
// is folded into one group.
func mergeGroups(parts [][]group) []group {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	merged := make([]group, 0, total)
	for _, p := range parts {
		for _, g := range p {
			if n := len(merged); n > 0 && merged[n-1].time == g.time {
				merged[n-1].size += g.size
				merged[n-1].events += g.events
				continue
			}
			merged = append(merged, g)
		}
	}
	return merged
}

// riskSetFromGroups assigns at-risk counts: every subject whose time is not
// earlier than the group's is still at risk, so the count starts at the
// total and drops by each group's size.
func riskSetFromGroups(groups []group, total int) RiskSet {
	rs := RiskSet{
		Time:   make([]float64, len(groups)),
		AtRisk: make([]uint, len(groups)),
		Events: make([]uint, len(groups)),
	}

	remaining := uint(total)
	for i, g := range groups {
		rs.Time[i] = g.time
		rs.AtRisk[i] = remaining
		rs.Events[i] = g.events
		remaining -= g.size
	}
	return rs
}

// buildRiskSet groups sorted observations, on r when r is non-nil.
func buildRiskSet(obs []observation, r partition.Runner) RiskSet {
	var groups []group
	if r != nil {
		groups = mergeGroups(partition.Run(r, obs, countGroups))
	} else {
		groups = countGroups(obs)
	}
	return riskSetFromGroups(groups, len(obs))
}
