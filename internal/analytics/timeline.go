package analytics

import (
	"fmt"
	"sort"
	"time"

	"cad/internal/models"
)

// Timeline groups messages into calendar buckets at the requested
// granularity, ordered by period ascending. Bucket counts always sum to
// the total message count.
func (e *Engine) Timeline(msgs []models.Message, granularity string) ([]TimeBucket, error) {
	switch granularity {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, granularity)
	}

	counts := make(map[string]int)
	for _, m := range msgs {
		counts[bucketKey(m.Timestamp, granularity)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]TimeBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, TimeBucket{Period: k, Count: counts[k]})
	}
	return buckets, nil
}

func bucketKey(ts time.Time, granularity string) string {
	switch granularity {
	case GranularityWeekly:
		return fmt.Sprintf("%d-W%02d", ts.Year(), weekOfYear(ts))
	case GranularityMonthly:
		return ts.Format("2006-01")
	default:
		return ts.Format("2006-01-02")
	}
}

// weekOfYear numbers weeks Monday-first within the calendar year; days
// before the year's first Monday land in week 0. This intentionally
// matches strftime %W, not ISO-8601 week numbering.
func weekOfYear(ts time.Time) int {
	mondayWeekday := (int(ts.Weekday()) + 6) % 7
	return (ts.YearDay() - 1 + 7 - mondayWeekday) / 7
}
