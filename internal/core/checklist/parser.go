// Package checklist contains the pure text-to-checklist import parser.
package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/auditking/internal/snapshot"
)

var (
	lineSplit = regexp.MustCompile(`\r?\n|•`)
	question  = regexp.MustCompile(`\?\s*$`)
)

// Parse converts free-form text into an ordered list of template items.
// Input is split on newlines and bullet glyphs; blank lines are dropped. A
// line ending in "?" becomes a yes/no question, anything else free text.
// Item ids are sequential (q1, q2, ...) and output order matches input order.
// Parse is total: no input is an error, the worst case is an empty list.
func Parse(raw string) []snapshot.TemplateItem {
	var items []snapshot.TemplateItem
	for _, line := range lineSplit.Split(raw, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		kind := snapshot.KindText
		if question.MatchString(line) {
			kind = snapshot.KindYesNo
		}

		items = append(items, snapshot.TemplateItem{
			ID:    fmt.Sprintf("q%d", len(items)+1),
			Kind:  kind,
			Label: line,
		})
	}
	return items
}
