// Package inspection contains the pure business logic for inspection runs:
// scoring, required-item validation and submit guards. Nothing here touches
// the store or performs IO.
package inspection

import (
	"math"

	"github.com/example/auditking/internal/snapshot"
)

// Score computes the pass percentage of a draft: round(100 * P / Y) where Y
// is the number of yes/no items and P the number of those marked pass. A
// checklist with no yes/no items scores a vacuous 100 — documented policy,
// there is nothing to fail.
func Score(items []snapshot.InspectionItem) int {
	yesNo := 0
	passed := 0
	for i := range items {
		if items[i].Kind != snapshot.KindYesNo {
			continue
		}
		yesNo++
		if items[i].Pass != nil && *items[i].Pass {
			passed++
		}
	}

	if yesNo == 0 {
		return 100
	}
	return int(math.Round(100 * float64(passed) / float64(yesNo)))
}
