package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cad/internal/models"
)

func TestActivityHeatmap_CellsAndMax(t *testing.T) {
	// 2024-01-15 is a Monday (day 1), 2024-01-14 a Sunday (day 0).
	msgs := []models.Message{
		msg("2024-01-15 09:10:00", "Alice", "a"),
		msg("2024-01-15 09:50:00", "Bob", "b"),
		msg("2024-01-14 22:00:00", "Alice", "c"),
	}

	hm := newTestEngine().ActivityHeatmap(msgs)

	assert.Equal(t, 2, hm.Matrix[1][9])
	assert.Equal(t, 1, hm.Matrix[0][22])
	assert.Equal(t, 2, hm.MaxCount)
}

func TestActivityHeatmap_Labels(t *testing.T) {
	hm := newTestEngine().ActivityHeatmap(nil)

	assert.Equal(t, "Sunday", hm.Days[0])
	assert.Equal(t, "Saturday", hm.Days[6])
	assert.Equal(t, "00:00", hm.Hours[0])
	assert.Equal(t, "23:00", hm.Hours[23])
	assert.Equal(t, 0, hm.MaxCount)
}

func TestActivityHeatmap_SumEqualsTotal(t *testing.T) {
	msgs := []models.Message{
		msg("2024-01-15 09:00:00", "Alice", "a"),
		msg("2024-01-16 10:00:00", "Bob", "b"),
		msg("2024-01-17 11:00:00", "Carol", "c"),
		msg("2024-01-17 11:30:00", "Alice", "d"),
	}

	hm := newTestEngine().ActivityHeatmap(msgs)

	sum := 0
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			sum += hm.Matrix[d][h]
		}
	}
	assert.Equal(t, len(msgs), sum)
}
