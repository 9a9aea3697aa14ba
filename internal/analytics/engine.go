package analytics

import (
	"errors"

	"cad/internal/structures"
)

// ErrInvalidGranularity is the one caller-visible error of the engine:
// a bucketing granularity outside daily/weekly/monthly is a programming
// error, not malformed data.
var ErrInvalidGranularity = errors.New("granularity must be daily, weekly or monthly")

const (
	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

const (
	// responseWindowSeconds bounds what counts as a reply to the
	// previous sender.
	responseWindowSeconds = 3600
	// longPauseSeconds is the 4-hour gap after which the next sender is
	// treated as restarting the conversation.
	longPauseSeconds = 14400

	maxPauses = 10
)

const (
	defaultTopWords        = 50
	defaultTopWordsPerUser = 30
	defaultTopEmojis       = 20
	defaultTopDomains      = 10
)

// Engine computes analytics over an immutable message sequence. Every
// method is a stateless transform; running one twice over the same
// input yields identical results. The stop-word set is fixed at
// construction.
type Engine struct {
	stopWords       map[string]struct{}
	topWords        int
	topWordsPerUser int
	topEmojis       int
	topDomains      int
}

func NewEngine(conf *structures.Config) *Engine {
	return NewEngineWithStopWords(conf, DefaultStopWords)
}

func NewEngineWithStopWords(conf *structures.Config, stopWords []string) *Engine {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	e := &Engine{
		stopWords:       set,
		topWords:        defaultTopWords,
		topWordsPerUser: defaultTopWordsPerUser,
		topEmojis:       defaultTopEmojis,
		topDomains:      defaultTopDomains,
	}
	if conf != nil {
		if conf.Analysis.TopWords > 0 {
			e.topWords = conf.Analysis.TopWords
		}
		if conf.Analysis.TopWordsPerUser > 0 {
			e.topWordsPerUser = conf.Analysis.TopWordsPerUser
		}
		if conf.Analysis.TopEmojis > 0 {
			e.topEmojis = conf.Analysis.TopEmojis
		}
		if conf.Analysis.TopDomains > 0 {
			e.topDomains = conf.Analysis.TopDomains
		}
	}
	return e
}
