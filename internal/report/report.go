// Package report projects a completed inspection into a display-ready
// document. Projection is a pure transformation: lookups only, no
// computation, no mutation of its inputs, and nothing downstream of it.
package report

import (
	"fmt"
	"time"

	"github.com/example/auditking/internal/snapshot"
)

// Report is the display-ready form of an inspection.
type Report struct {
	TemplateName string
	Site         string
	StartedAt    time.Time
	SubmittedAt  *time.Time
	Score        *int
	Inspector    string
	Entries      []Entry
}

// Entry is one rendered answer line.
type Entry struct {
	Ordinal int
	Label   string
	Value   string
	IsYesNo bool
	Pass    bool
	Media   []string
}

// Project builds a report from an inspection. Absent optional fields render
// as "—" at display time; Project itself leaves them zero-valued.
func Project(insp *snapshot.Inspection) Report {
	r := Report{
		TemplateName: insp.TemplateName,
		Site:         insp.Site,
		StartedAt:    insp.StartedAt,
		SubmittedAt:  insp.SubmittedAt,
		Score:        insp.Score,
		Inspector:    insp.OwnerName,
		Entries:      make([]Entry, len(insp.Items)),
	}

	for i, item := range insp.Items {
		e := Entry{
			Ordinal: i + 1,
			Label:   item.Label,
			Value:   renderValue(item),
			Media:   item.Media,
		}
		if item.Kind == snapshot.KindYesNo {
			e.IsYesNo = true
			e.Pass = item.Pass != nil && *item.Pass
		}
		r.Entries[i] = e
	}
	return r
}

// renderValue produces the string form appropriate to the item's kind.
func renderValue(item snapshot.InspectionItem) string {
	switch item.Kind {
	case snapshot.KindYesNo, snapshot.KindPhoto:
		// Yes/no renders as a badge, photos as their media list.
		return ""
	case snapshot.KindNumber:
		switch v := item.Value.(type) {
		case nil:
			return ""
		case float64:
			// JSON numbers arrive as float64; print integers without a
			// fractional tail.
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%g", v)
		default:
			return fmt.Sprintf("%v", v)
		}
	default:
		if item.Value == nil {
			return ""
		}
		return fmt.Sprintf("%v", item.Value)
	}
}
