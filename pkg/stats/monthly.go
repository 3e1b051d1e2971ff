package stats

import (
	"sort"
	"time"

	"strays-backend/domain"
)

// AggregateByMonth buckets timestamps by calendar year-month ("2006-01")
// and returns labels sorted ascending with parallel counts. A nil
// timestamp buckets under unknownLabel, or is excluded when unknownLabel
// is empty. Lexicographic order is chronological for "YYYY-MM" labels and
// places the unknown bucket after every date label.
func AggregateByMonth(times []*time.Time, unknownLabel string) domain.ChartData {
	buckets := make(map[string]int)
	for _, ts := range times {
		var key string
		switch {
		case ts != nil:
			key = ts.Format("2006-01")
		case unknownLabel != "":
			key = unknownLabel
		default:
			continue
		}
		buckets[key]++
	}

	labels := make([]string, 0, len(buckets))
	for k := range buckets {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	counts := make([]int, 0, len(labels))
	for _, k := range labels {
		counts = append(counts, buckets[k])
	}

	return domain.ChartData{Labels: labels, Counts: counts}
}
