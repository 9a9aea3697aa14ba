package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cad/internal/models"
	"cad/internal/structures"
)

func TestWordFrequency_CountsAndRanks(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "pizza pizza pasta"),
		msg("2024-01-15 09:01:00", "Bob", "pizza tonight"),
	}

	entries := newTestEngine().WordFrequency(msgs, 10)

	require.NotEmpty(t, entries)
	assert.Equal(t, "pizza", entries[0].Word)
	assert.Equal(t, 3, entries[0].Count)
}

func TestWordFrequency_DropsStopWordsAndShortWords(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "the and is ok hm birthday"),
	}

	entries := newTestEngine().WordFrequency(msgs, 10)

	require.Len(t, entries, 1)
	assert.Equal(t, "birthday", entries[0].Word)
}

func TestWordFrequency_StripsEmojiAndURLs(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "party 😀 at https://venues.example.com/big tomorrow"),
	}

	entries := newTestEngine().WordFrequency(msgs, 10)

	words := make([]string, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.Word)
	}
	assert.Contains(t, words, "party")
	assert.Contains(t, words, "tomorrow")
	assert.NotContains(t, words, "venues")
	assert.NotContains(t, words, "example")
}

func TestWordFrequency_OnlyTextMessages(t *testing.T) {
	media := msg("2024-01-15 09:00:00", "Alice", "<Media omitted>")
	require.Equal(t, models.KindMedia, media.Kind)

	entries := newTestEngine().WordFrequency([]models.Message{media}, 10)

	assert.Empty(t, entries)
}

func TestWordFrequency_FrequencyRelativeToFullCorpus(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "pizza pizza pasta salad"),
	}

	// Limit 1 returns one entry, but its frequency is over all four
	// counted words.
	entries := newTestEngine().WordFrequency(msgs, 1)

	require.Len(t, entries, 1)
	assert.Equal(t, "pizza", entries[0].Word)
	assert.InDelta(t, 0.5, entries[0].Frequency, 0.0001)
}

func TestWordFrequency_TieKeepsFirstSeenOrder(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "zebra apple zebra apple"),
	}

	entries := newTestEngine().WordFrequency(msgs, 10)

	require.Len(t, entries, 2)
	assert.Equal(t, "zebra", entries[0].Word)
	assert.Equal(t, "apple", entries[1].Word)
}

func TestUserWordClouds_PerParticipant(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "guitar guitar piano"),
		msg("2024-01-15 09:01:00", "Bob", "football football tennis"),
	}

	clouds := newTestEngine().UserWordClouds(msgs)

	require.Len(t, clouds, 2)
	require.NotEmpty(t, clouds["Alice"])
	require.NotEmpty(t, clouds["Bob"])
	assert.Equal(t, "guitar", clouds["Alice"][0].Word)
	assert.Equal(t, "football", clouds["Bob"][0].Word)
}

func TestUserWordClouds_PerUserLimit(t *testing.T) {
	conf := &structures.Config{}
	conf.Analysis.TopWordsPerUser = 2
	e := NewEngine(conf)

	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "alpha alpha beta beta gamma delta"),
	}

	clouds := e.UserWordClouds(msgs)

	assert.Len(t, clouds["Alice"], 2)
}

func TestFrequenciesNeverExceedOne(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "coffee coffee coffee tea"),
		msg("2024-01-15 09:01:00", "Bob", "coffee juice"),
	}

	entries := newTestEngine().WordFrequency(msgs, -1)

	total := 0.0
	for _, e := range entries {
		assert.LessOrEqual(t, e.Frequency, 1.0)
		total += e.Frequency
	}
	assert.InDelta(t, 1.0, total, 0.0001)
}
