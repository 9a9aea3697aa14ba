package analytics

import (
	"net/url"

	"cad/internal/models"
	"cad/internal/parser"
)

// ContentAnalysis tallies size totals plus the emoji-run, link-domain
// and word-cloud frequency tables across the whole transcript.
func (e *Engine) ContentAnalysis(msgs []models.Message) ContentAnalysis {
	analysis := ContentAnalysis{
		WordCloud:     []WordFrequencyEntry{},
		EmojiAnalysis: []EmojiCount{},
		SharedDomains: []DomainCount{},
	}

	words := newCounter()
	emojis := newCounter()
	domains := newCounter()

	for _, m := range msgs {
		analysis.TotalMessages++
		analysis.TotalCharacters += m.CharCount
		analysis.TotalWords += m.WordCount
		if m.HasEmoji {
			analysis.MessagesWithEmoji++
		}
		if m.HasLink {
			analysis.MessagesWithLinks++
		}

		for _, run := range parser.EmojiRuns(m.Content) {
			emojis.add(run)
		}
		for _, link := range parser.Links(m.Content) {
			if u, err := url.Parse(link); err == nil && u.Host != "" {
				domains.add(u.Host)
			}
		}
		if m.Kind == models.KindText {
			e.countWords(words, m.Content)
		}
	}

	if analysis.TotalMessages > 0 {
		analysis.AvgCharsPerMessage = round1(float64(analysis.TotalCharacters) / float64(analysis.TotalMessages))
		analysis.AvgWordsPerMessage = round1(float64(analysis.TotalWords) / float64(analysis.TotalMessages))
	}

	analysis.WordCloud = e.frequencyEntries(words, e.topWords)
	for _, emoji := range emojis.top(e.topEmojis) {
		analysis.EmojiAnalysis = append(analysis.EmojiAnalysis, EmojiCount{Emoji: emoji, Count: emojis.counts[emoji]})
	}
	for _, domain := range domains.top(e.topDomains) {
		analysis.SharedDomains = append(analysis.SharedDomains, DomainCount{Domain: domain, Count: domains.counts[domain]})
	}

	return analysis
}
