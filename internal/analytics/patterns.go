package analytics

import (
	"fmt"

	"cad/internal/models"
)

// ActivityPatterns derives hourly and weekday histograms plus the peak
// bucket of each. The scan runs over ascending indices with a strict
// comparison, so the lowest index wins a tie.
func (e *Engine) ActivityPatterns(msgs []models.Message) ActivityPatterns {
	idx := buildIndex(msgs)
	return e.activityPatterns(idx)
}

func (e *Engine) activityPatterns(idx *index) ActivityPatterns {
	patterns := ActivityPatterns{
		Hourly:   make([]HourCount, 0, 24),
		Weekdays: make([]WeekdayCount, 0, 7),
	}

	peakHour, peakDay := 0, 0
	for h := 0; h < 24; h++ {
		patterns.Hourly = append(patterns.Hourly, HourCount{Hour: h, Count: idx.hourly[h]})
		if idx.hourly[h] > idx.hourly[peakHour] {
			peakHour = h
		}
	}
	for d := 0; d < 7; d++ {
		patterns.Weekdays = append(patterns.Weekdays, WeekdayCount{Day: d, Name: dayNames[d], Count: idx.weekday[d]})
		if idx.weekday[d] > idx.weekday[peakDay] {
			peakDay = d
		}
	}

	patterns.PeakHour = fmt.Sprintf("%02d:00", peakHour)
	patterns.PeakDay = dayNames[peakDay]
	return patterns
}
