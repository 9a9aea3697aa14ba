package analytics

import (
	"sort"

	"cad/internal/models"
)

// InteractionMetrics walks adjacent message pairs in timestamp order.
// A reply within (0, 1h) of a different sender's message becomes a
// response-time sample; a gap over 4h is a long pause and the next
// sender counts as restarting the conversation, as does the very first
// sender. Fewer than two messages yield empty results.
func (e *Engine) InteractionMetrics(msgs []models.Message) InteractionMetrics {
	metrics := InteractionMetrics{
		ResponseTimes:        []ResponseTimeStats{},
		ConversationStarters: []StarterCount{},
		LongestPauses:        []Pause{},
	}
	if len(msgs) < 2 {
		return metrics
	}

	ordered := make([]models.Message, len(msgs))
	copy(ordered, msgs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	samples := make(map[string][]float64)
	sampleOrder := []string{}
	starters := newCounter()
	pauses := []Pause{}

	starters.add(ordered[0].Participant)

	prev := ordered[0]
	for _, cur := range ordered[1:] {
		delta := cur.Timestamp.Sub(prev.Timestamp).Seconds()

		if cur.Participant != prev.Participant && delta > 0 && delta < responseWindowSeconds {
			if _, ok := samples[cur.Participant]; !ok {
				sampleOrder = append(sampleOrder, cur.Participant)
			}
			samples[cur.Participant] = append(samples[cur.Participant], delta)
		}

		if delta > longPauseSeconds {
			pauses = append(pauses, Pause{
				DurationHours: round1(delta / 3600),
				Before:        prev.Timestamp,
				After:         cur.Timestamp,
				RestartedBy:   cur.Participant,
			})
			starters.add(cur.Participant)
		}

		prev = cur
	}

	for _, name := range sampleOrder {
		times := samples[name]
		sort.Float64s(times)
		sum := 0.0
		for _, t := range times {
			sum += t
		}
		metrics.ResponseTimes = append(metrics.ResponseTimes, ResponseTimeStats{
			Name:          name,
			AvgSeconds:    round1(sum / float64(len(times))),
			MedianSeconds: round1(times[len(times)/2]),
			ResponseCount: len(times),
		})
	}

	for _, name := range starters.top(-1) {
		metrics.ConversationStarters = append(metrics.ConversationStarters, StarterCount{
			Name:  name,
			Count: starters.counts[name],
		})
	}

	sort.SliceStable(pauses, func(i, j int) bool {
		return pauses[i].DurationHours > pauses[j].DurationHours
	})
	if len(pauses) > maxPauses {
		pauses = pauses[:maxPauses]
	}
	metrics.LongestPauses = pauses

	return metrics
}
