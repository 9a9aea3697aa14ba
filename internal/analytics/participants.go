package analytics

import (
	"sort"

	"cad/internal/models"
)

// ParticipantStatistics aggregates per-participant totals, ranked by
// message count descending. The sort is stable, so ties keep first
// encounter order.
func (e *Engine) ParticipantStatistics(msgs []models.Message) []ParticipantStats {
	idx := buildIndex(msgs)
	return e.participantStats(idx)
}

func (e *Engine) participantStats(idx *index) []ParticipantStats {
	result := make([]ParticipantStats, 0, len(idx.participants))
	for _, acc := range idx.participants {
		stats := ParticipantStats{
			Name:            acc.name,
			MessageCount:    acc.count,
			TotalCharacters: acc.chars,
			TotalWords:      acc.words,
			EmojiCount:      acc.emoji,
			LinkCount:       acc.links,
			ActiveDays:      int(acc.activeDays.GetCardinality()),
			FirstMessage:    acc.first,
			LastMessage:     acc.last,
		}
		if acc.count > 0 {
			stats.AvgMessageLength = round2(float64(acc.chars) / float64(acc.count))
		}
		result = append(result, stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MessageCount > result[j].MessageCount
	})
	return result
}
