package feed

import (
	"time"

	"kokofeed/internal/domain"
)

// FilterByDay keeps entries whose publication instant falls on the same
// calendar day as ref when both are viewed in loc. Entries without a
// parseable timestamp are dropped. Order is preserved.
func FilterByDay(entries []domain.Entry, ref time.Time, loc *time.Location) []domain.Entry {
	refYear, refMonth, refDay := ref.In(loc).Date()

	var kept []domain.Entry
	for _, entry := range entries {
		if entry.Published.IsZero() {
			continue
		}

		year, month, day := entry.Published.In(loc).Date()
		if year != refYear || month != refMonth || day != refDay {
			continue
		}

		kept = append(kept, entry)
	}

	return kept
}
