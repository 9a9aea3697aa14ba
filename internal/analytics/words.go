package analytics

import (
	"regexp"
	"sort"
	"strings"

	"cad/internal/models"
	"cad/internal/parser"
)

// wordPattern extracts alphabetic runs of length >= 3 from lowercased,
// emoji- and URL-stripped text.
var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// counter tallies string keys while remembering first-seen order, so
// top-N results break count ties deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// top returns up to n keys sorted by count descending; the stable sort
// keeps first-seen order among equal counts.
func (c *counter) top(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// WordFrequency tokenizes text-kind messages, drops stop words and
// returns the top-N entries. Frequency is relative to the full filtered
// vocabulary, not just the returned slice.
func (e *Engine) WordFrequency(msgs []models.Message, limit int) []WordFrequencyEntry {
	words := newCounter()
	for _, m := range msgs {
		if m.Kind != models.KindText {
			continue
		}
		e.countWords(words, m.Content)
	}
	return e.frequencyEntries(words, limit)
}

// UserWordClouds runs the word-frequency algorithm per participant,
// independently top-N for each.
func (e *Engine) UserWordClouds(msgs []models.Message) map[string][]WordFrequencyEntry {
	perUser := make(map[string]*counter)
	for _, m := range msgs {
		if m.Kind != models.KindText {
			continue
		}
		words, ok := perUser[m.Participant]
		if !ok {
			words = newCounter()
			perUser[m.Participant] = words
		}
		e.countWords(words, m.Content)
	}

	clouds := make(map[string][]WordFrequencyEntry, len(perUser))
	for name, words := range perUser {
		clouds[name] = e.frequencyEntries(words, e.topWordsPerUser)
	}
	return clouds
}

func (e *Engine) countWords(words *counter, content string) {
	clean := strings.ToLower(parser.StripEmojiAndLinks(content))
	for _, w := range wordPattern.FindAllString(clean, -1) {
		if _, stop := e.stopWords[w]; stop {
			continue
		}
		words.add(w)
	}
}

func (e *Engine) frequencyEntries(words *counter, limit int) []WordFrequencyEntry {
	total := words.total()
	top := words.top(limit)

	entries := make([]WordFrequencyEntry, 0, len(top))
	for _, w := range top {
		entry := WordFrequencyEntry{Word: w, Count: words.counts[w]}
		if total > 0 {
			entry.Frequency = float64(entry.Count) / float64(total)
		}
		entries = append(entries, entry)
	}
	return entries
}
