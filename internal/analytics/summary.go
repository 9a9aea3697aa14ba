package analytics

import "cad/internal/models"

const (
	summaryParticipants = 5
	summaryWords        = 10
)

// Summary condenses the analysis into a report shape: headline stats,
// highlight picks, the top participants and the top words.
func (e *Engine) Summary(msgs []models.Message) Summary {
	idx := buildIndex(msgs)
	participants := e.participantStats(idx)
	patterns := e.activityPatterns(idx)
	words := e.WordFrequency(msgs, summaryWords)

	summary := Summary{
		Statistics:   e.basicStats(idx),
		PeakHour:     patterns.PeakHour,
		PeakDay:      patterns.PeakDay,
		Participants: participants,
		TopWords:     words,
	}
	summary.Highlights.BusiestDay = patterns.PeakDay

	if len(participants) > 0 {
		summary.Highlights.MostTalkative = participants[0].Name

		emojiLover, linkSharer := participants[0], participants[0]
		for _, p := range participants[1:] {
			if p.EmojiCount > emojiLover.EmojiCount {
				emojiLover = p
			}
			if p.LinkCount > linkSharer.LinkCount {
				linkSharer = p
			}
		}
		summary.Highlights.EmojiLover = emojiLover.Name
		summary.Highlights.LinkSharer = linkSharer.Name
	}

	if len(summary.Participants) > summaryParticipants {
		summary.Participants = summary.Participants[:summaryParticipants]
	}

	return summary
}

// Comprehensive bundles every analytic for the analysis endpoint, all
// derived from one shared index pass where possible.
func (e *Engine) Comprehensive(msgs []models.Message) Analysis {
	idx := buildIndex(msgs)
	timeline, _ := e.Timeline(msgs, GranularityDaily)

	return Analysis{
		BasicStats:     e.basicStats(idx),
		Timeline:       timeline,
		Participants:   e.participantStats(idx),
		Content:        e.ContentAnalysis(msgs),
		Patterns:       e.activityPatterns(idx),
		Heatmap:        e.activityHeatmap(idx),
		Interactions:   e.InteractionMetrics(msgs),
		UserWordClouds: e.UserWordClouds(msgs),
	}
}
