package inspection

import "github.com/example/auditking/internal/snapshot"

// Validate returns the template item ids of required questions that have no
// answer yet. Completeness enforcement is caller policy: the engine itself
// never blocks submission on missing answers, callers run Validate first if
// they want that.
//
// The template supplies the required flags; answers are matched to template
// items by qid. A template item without a matching answer counts as violated.
func Validate(tpl *snapshot.Template, items []snapshot.InspectionItem) []string {
	byQID := make(map[string]*snapshot.InspectionItem, len(items))
	for i := range items {
		byQID[items[i].QID] = &items[i]
	}

	var violated []string
	for _, q := range tpl.Items {
		if !q.Required {
			continue
		}
		it, ok := byQID[q.ID]
		if !ok || !answered(it) {
			violated = append(violated, q.ID)
		}
	}
	return violated
}

// answered reports whether an item carries a usable answer for its kind.
func answered(it *snapshot.InspectionItem) bool {
	switch it.Kind {
	case snapshot.KindYesNo:
		return it.Pass != nil
	case snapshot.KindPhoto:
		return len(it.Media) > 0
	default:
		if it.Value == nil {
			return false
		}
		if s, ok := it.Value.(string); ok {
			return s != ""
		}
		return true
	}
}
