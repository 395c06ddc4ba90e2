// Package agg has aggregation logic for daily activity data.
package agg

import (
	"sort"

	"github.com/huangsam/flowstate/schema"
)

// dailyCounters accumulates per-date counts during the grouping pass.
type dailyCounters struct {
	music   int
	videos  int
	commits int
}

// Aggregate merges media and commit event streams into a Timeline. It runs a
// single grouping pass over both streams, O(N) in total event count, then
// sorts the distinct dates ascending. Lexicographic order is chronological
// because dates are in YYYY-MM-DD form. Input dates are assumed well-formed;
// the collaborators that produce events filter invalid dates beforehand.
func Aggregate(mediaEvents []schema.MediaEvent, commitEvents []schema.CommitEvent) schema.Timeline {
	counters := make(map[string]*dailyCounters, len(mediaEvents)+len(commitEvents))

	countersFor := func(date string) *dailyCounters {
		c, ok := counters[date]
		if !ok {
			c = &dailyCounters{}
			counters[date] = c
		}
		return c
	}

	for _, ev := range mediaEvents {
		c := countersFor(ev.Date)
		if ev.Category == schema.MusicCategory {
			c.music++
		} else {
			c.videos++
		}
	}
	for _, ev := range commitEvents {
		countersFor(ev.Date).commits++
	}

	timeline := make(schema.Timeline, 0, len(counters))
	for date, c := range counters {
		timeline = append(timeline, schema.DailyMetric{
			Date:        date,
			MusicCount:  c.music,
			VideoCount:  c.videos,
			CommitCount: c.commits,
		})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})

	return timeline
}

// Totals sums the per-date counts over the whole Timeline.
func Totals(timeline schema.Timeline) schema.Totals {
	var totals schema.Totals
	for _, m := range timeline {
		totals.TotalMusic += m.MusicCount
		totals.TotalVideos += m.VideoCount
		totals.TotalCommits += m.CommitCount
	}
	return totals
}
