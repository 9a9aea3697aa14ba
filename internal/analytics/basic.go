package analytics

import (
	"math"

	"cad/internal/models"
)

// BasicStats computes the headline numbers. A single-day chat has
// duration 1; an empty chat has duration 0 and no averages.
func (e *Engine) BasicStats(msgs []models.Message) BasicStats {
	idx := buildIndex(msgs)
	return e.basicStats(idx)
}

func (e *Engine) basicStats(idx *index) BasicStats {
	stats := BasicStats{
		TotalMessages:    idx.total,
		ParticipantCount: len(idx.participants),
		MessageKinds:     idx.kinds,
	}

	if idx.total == 0 {
		return stats
	}

	first, last := idx.first, idx.last
	stats.FirstMessage = &first
	stats.LastMessage = &last

	stats.DurationDays = int(last.Sub(first).Hours()/24) + 1
	if stats.DurationDays > 0 {
		stats.AvgMessagesPerDay = round2(float64(idx.total) / float64(stats.DurationDays))
	}

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
