package analytics

import (
	"fmt"

	"cad/internal/models"
)

// ActivityHeatmap fills the 7x24 day-of-week/hour matrix. Day 0 is
// Sunday throughout. MaxCount carries the largest cell for downstream
// color scaling.
func (e *Engine) ActivityHeatmap(msgs []models.Message) Heatmap {
	idx := buildIndex(msgs)
	return e.activityHeatmap(idx)
}

func (e *Engine) activityHeatmap(idx *index) Heatmap {
	hm := Heatmap{
		Days:   dayNames,
		Matrix: idx.heatmap,
	}
	for h := 0; h < 24; h++ {
		hm.Hours[h] = fmt.Sprintf("%02d:00", h)
	}
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if idx.heatmap[d][h] > hm.MaxCount {
				hm.MaxCount = idx.heatmap[d][h]
			}
		}
	}
	return hm
}
