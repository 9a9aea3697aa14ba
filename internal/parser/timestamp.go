package parser

import "time"

// timestampLayouts is ordered: layouts that carry seconds come before
// their seconds-less counterparts so a longer timestamp is never
// silently truncated by a looser layout. Exports from different devices
// vary between m/d 12-hour, d/m 24-hour, ISO, two-digit years, and
// comma vs space separation.
var timestampLayouts = []string{
	"1/2/2006, 3:04:05 PM",
	"1/2/06, 3:04:05 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/06 3:04:05 PM",
	"2/1/2006, 15:04:05",
	"2/1/2006 15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006, 3:04 PM",
	"1/2/06, 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 3:04 PM",
	"2/1/2006, 15:04",
	"2/1/2006 15:04",
}

// ResolveTimestamp tries each known layout in order and returns the
// first successful parse. A false return means the text is not a
// recognizable timestamp, which callers treat as "not a message start"
// rather than an error.
func ResolveTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
