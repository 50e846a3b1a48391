package inspection

import (
	"testing"

	"github.com/example/auditking/internal/snapshot"
)

func boolPtr(b bool) *bool { return &b }

func yesNoItem(qid string, pass *bool) snapshot.InspectionItem {
	return snapshot.InspectionItem{ID: qid + "-run", QID: qid, Kind: snapshot.KindYesNo, Pass: pass}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		items []snapshot.InspectionItem
		want  int
	}{
		{
			name:  "no yes/no items is vacuously full score",
			items: []snapshot.InspectionItem{{Kind: snapshot.KindText}, {Kind: snapshot.KindPhoto}},
			want:  100,
		},
		{
			name:  "empty checklist is full score",
			items: nil,
			want:  100,
		},
		{
			name: "two of three passing rounds to 67",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(true)),
				yesNoItem("b", boolPtr(true)),
				yesNoItem("c", boolPtr(false)),
			},
			want: 67,
		},
		{
			name: "one of three passing rounds to 33",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(true)),
				yesNoItem("b", boolPtr(false)),
				yesNoItem("c", boolPtr(false)),
			},
			want: 33,
		},
		{
			name: "all passing",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(true)),
				yesNoItem("b", boolPtr(true)),
			},
			want: 100,
		},
		{
			name: "none passing",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(false)),
				yesNoItem("b", nil),
			},
			want: 0,
		},
		{
			name: "non-yesno items are ignored",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(true)),
				{Kind: snapshot.KindText, Value: "note"},
				yesNoItem("b", boolPtr(false)),
			},
			want: 50,
		},
		{
			name: "unanswered yes/no counts as not passed",
			items: []snapshot.InspectionItem{
				yesNoItem("a", boolPtr(true)),
				yesNoItem("b", nil),
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.items)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score() = %d, out of [0,100]", got)
			}
		})
	}
}

// Flipping any single yes/no item from fail to pass must never lower the
// score.
func TestScore_MonotoneUnderPassFlip(t *testing.T) {
	items := []snapshot.InspectionItem{
		yesNoItem("a", boolPtr(false)),
		yesNoItem("b", boolPtr(false)),
		yesNoItem("c", boolPtr(true)),
		{Kind: snapshot.KindText},
		yesNoItem("d", boolPtr(false)),
	}

	for i := range items {
		if items[i].Kind != snapshot.KindYesNo || (items[i].Pass != nil && *items[i].Pass) {
			continue
		}
		before := Score(items)
		flipped := make([]snapshot.InspectionItem, len(items))
		copy(flipped, items)
		flipped[i].Pass = boolPtr(true)
		after := Score(flipped)
		if after < before {
			t.Errorf("flipping item %d to pass lowered score %d -> %d", i, before, after)
		}
	}
}
