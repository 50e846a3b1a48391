// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/report"
)

// ReportAdapter renders an inspection as a display-ready report. It depends
// only on the InspectionService interface, enabling easy testing with mocks.
type ReportAdapter struct {
	service primary.InspectionService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.InspectionService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Render fetches the inspection and writes its report.
func (a *ReportAdapter) Render(ctx context.Context, inspectionID string) error {
	insp, err := a.service.GetInspection(ctx, inspectionID)
	if err != nil {
		return fmt.Errorf("failed to get inspection: %w", err)
	}

	r := report.Project(insp)

	fmt.Fprintf(a.out, "\n%s\n", r.TemplateName)
	fmt.Fprintln(a.out, strings.Repeat("─", 64))
	fmt.Fprintf(a.out, "Site:       %s\n", orDash(r.Site))
	fmt.Fprintf(a.out, "Inspector:  %s\n", orDash(r.Inspector))
	fmt.Fprintf(a.out, "Started:    %s\n", r.StartedAt.Format("2006-01-02 15:04"))
	if r.SubmittedAt != nil {
		fmt.Fprintf(a.out, "Submitted:  %s\n", r.SubmittedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Fprintln(a.out, "Submitted:  —")
	}
	if r.Score != nil {
		fmt.Fprintf(a.out, "Score:      %d%%\n", *r.Score)
	} else {
		fmt.Fprintln(a.out, "Score:      —")
	}
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, e := range r.Entries {
		fmt.Fprintf(w, "%d.\t%s\t%s\n", e.Ordinal, e.Label, renderResult(e))
		for _, ref := range e.Media {
			fmt.Fprintf(w, "\t\t[media] %s\n", truncate(ref, 48))
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprintln(a.out)

	return nil
}

func renderResult(e report.Entry) string {
	if e.IsYesNo {
		if e.Pass {
			return color.New(color.FgGreen).Sprint("PASS")
		}
		return color.New(color.FgRed).Sprint("FAIL")
	}
	return orDash(e.Value)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// truncate shortens long values (data URIs in particular) for terminal output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
