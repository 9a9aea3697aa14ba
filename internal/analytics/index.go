package analytics

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"cad/internal/models"
)

// participantAcc accumulates one participant's totals during the index
// pass. activeDays is a bitmap of epoch days the participant wrote on.
type participantAcc struct {
	name       string
	count      int
	chars      int
	words      int
	emoji      int
	links      int
	first      time.Time
	last       time.Time
	activeDays *roaring.Bitmap
}

// index is the shared aggregation pass: one linear scan produces every
// bucketed view the higher-level analytics consume, so they never
// re-scan the message sequence independently.
type index struct {
	total        int
	hourly       [24]int
	weekday      [7]int
	heatmap      [7][24]int
	kinds        map[models.MessageKind]int
	first        time.Time
	last         time.Time
	participants []*participantAcc
	byName       map[string]*participantAcc
}

func buildIndex(msgs []models.Message) *index {
	idx := &index{
		kinds:  make(map[models.MessageKind]int),
		byName: make(map[string]*participantAcc),
	}

	for _, m := range msgs {
		idx.total++
		idx.kinds[m.Kind]++

		hour := m.Timestamp.Hour()
		day := int(m.Timestamp.Weekday()) // Sunday=0
		idx.hourly[hour]++
		idx.weekday[day]++
		idx.heatmap[day][hour]++

		if idx.first.IsZero() || m.Timestamp.Before(idx.first) {
			idx.first = m.Timestamp
		}
		if idx.last.IsZero() || m.Timestamp.After(idx.last) {
			idx.last = m.Timestamp
		}

		acc, ok := idx.byName[m.Participant]
		if !ok {
			acc = &participantAcc{
				name:       m.Participant,
				first:      m.Timestamp,
				last:       m.Timestamp,
				activeDays: roaring.New(),
			}
			idx.byName[m.Participant] = acc
			idx.participants = append(idx.participants, acc)
		}

		acc.count++
		acc.chars += m.CharCount
		acc.words += m.WordCount
		if m.HasEmoji {
			acc.emoji++
		}
		if m.HasLink {
			acc.links++
		}
		if m.Timestamp.Before(acc.first) {
			acc.first = m.Timestamp
		}
		if m.Timestamp.After(acc.last) {
			acc.last = m.Timestamp
		}
		acc.activeDays.Add(epochDay(m.Timestamp))
	}

	return idx
}

func epochDay(ts time.Time) uint32 {
	return uint32(ts.Unix() / 86400)
}
