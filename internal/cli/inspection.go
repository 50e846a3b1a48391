package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/wire"
)

var inspectionCmd = &cobra.Command{
	Use:   "inspection",
	Short: "Run and manage inspections",
	Long:  "Start inspections from templates, record answers, and submit completed runs",
}

var inspectionStartCmd = &cobra.Command{
	Use:   "start [template-id]",
	Short: "Start a new inspection from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		insp, err := wire.InspectionService().StartInspection(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to start inspection: %w", err)
		}

		fmt.Printf("✓ Started inspection %s: %s (%d questions)\n", insp.ID, insp.TemplateName, len(insp.Items))
		fmt.Printf("  Answer with: auditking inspection answer %s [question] ...\n", insp.ID)
		return nil
	},
}

var inspectionAnswerCmd = &cobra.Command{
	Use:   "answer [inspection-id] [question-number]",
	Short: "Record an answer on a draft inspection",
	Long: `Record an answer for one question of a draft. Question numbers are
1-based, matching the show output.

Examples:
  auditking inspection answer INS-001 1 --pass
  auditking inspection answer INS-001 2 --fail
  auditking inspection answer INS-001 3 --value "two near misses"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		index, err := questionIndex(ctx, id, args[1])
		if err != nil {
			return err
		}

		pass, _ := cmd.Flags().GetBool("pass")
		fail, _ := cmd.Flags().GetBool("fail")
		value, _ := cmd.Flags().GetString("value")

		if pass && fail {
			return fmt.Errorf("--pass and --fail are mutually exclusive")
		}

		var patch primary.AnswerPatch
		switch {
		case pass:
			p := true
			patch.Pass = &p
		case fail:
			p := false
			patch.Pass = &p
		case cmd.Flags().Changed("value"):
			patch.Value = value
		default:
			return fmt.Errorf("must specify --pass, --fail, or --value")
		}

		if err := wire.InspectionService().RecordAnswer(ctx, id, index, patch); err != nil {
			return fmt.Errorf("failed to record answer: %w", err)
		}

		fmt.Printf("✓ Recorded answer on %s question %s\n", id, args[1])
		return nil
	},
}

var inspectionAttachCmd = &cobra.Command{
	Use:   "attach [inspection-id] [question-number] [file]",
	Short: "Attach a photo or document to a question",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		index, err := questionIndex(ctx, id, args[1])
		if err != nil {
			return err
		}

		ref, err := encodeMediaRef(args[2])
		if err != nil {
			return fmt.Errorf("failed to read media file: %w", err)
		}

		if err := wire.InspectionService().AttachMedia(ctx, id, index, ref); err != nil {
			return fmt.Errorf("failed to attach media: %w", err)
		}

		fmt.Printf("✓ Attached %s to %s question %s\n", args[2], id, args[1])
		return nil
	},
}

var inspectionValidateCmd = &cobra.Command{
	Use:   "validate [inspection-id]",
	Short: "Check a draft for unanswered required questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		missing, err := wire.InspectionService().Validate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to validate inspection: %w", err)
		}

		if len(missing) == 0 {
			fmt.Println("✓ All required questions answered")
			return nil
		}

		fmt.Printf("%s %d required question(s) unanswered:\n", color.New(color.FgYellow).Sprint("!"), len(missing))
		for _, qid := range missing {
			fmt.Printf("  - %s\n", qid)
		}
		return nil
	},
}

var inspectionSubmitCmd = &cobra.Command{
	Use:   "submit [inspection-id]",
	Short: "Submit a draft inspection",
	Long: `Freeze a draft: stamp the submit time, compute the final score, and
record the acting user as inspector. Unanswered required questions are
reported as warnings but do not block submission.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]
		signature, _ := cmd.Flags().GetString("signature")

		// Warn about unanswered required questions, but leave the decision
		// to the operator.
		if missing, err := wire.InspectionService().Validate(ctx, id); err == nil && len(missing) > 0 {
			fmt.Printf("%s %d required question(s) unanswered\n", color.New(color.FgYellow).Sprint("!"), len(missing))
		}

		insp, err := wire.InspectionService().SubmitInspection(ctx, primary.SubmitInspectionRequest{
			InspectionID: id,
			Signature:    signature,
		})
		if err != nil {
			return fmt.Errorf("failed to submit inspection: %w", err)
		}

		fmt.Printf("✓ Submitted inspection %s: score %d%%\n", insp.ID, *insp.Score)
		return nil
	},
}

var inspectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inspections (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		all, _ := cmd.Flags().GetBool("all")

		inspections, err := wire.InspectionService().ListInspections(ctx, all)
		if err != nil {
			return fmt.Errorf("failed to list inspections: %w", err)
		}

		if len(inspections) == 0 {
			fmt.Println("No inspections found")
			return nil
		}

		fmt.Printf("\n%-10s %-12s %-7s %s\n", "ID", "STATUS", "SCORE", "TEMPLATE")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, insp := range inspections {
			score := "—"
			if insp.Score != nil {
				score = fmt.Sprintf("%d%%", *insp.Score)
			}
			fmt.Printf("%-10s %-12s %-7s %s\n", insp.ID, insp.Status, score, insp.TemplateName)
		}
		fmt.Println()

		return nil
	},
}

var inspectionShowCmd = &cobra.Command{
	Use:   "show [inspection-id]",
	Short: "Show inspection details and answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		insp, err := wire.InspectionService().GetInspection(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get inspection: %w", err)
		}

		fmt.Printf("\nInspection: %s\n", insp.ID)
		fmt.Printf("Template:   %s\n", insp.TemplateName)
		fmt.Printf("Status:     %s\n", insp.Status)
		fmt.Printf("Started:    %s\n", insp.StartedAt.Format("2006-01-02 15:04"))
		if insp.SubmittedAt != nil {
			fmt.Printf("Submitted:  %s\n", insp.SubmittedAt.Format("2006-01-02 15:04"))
		}
		if insp.Score != nil {
			fmt.Printf("Score:      %d%%\n", *insp.Score)
		}
		fmt.Println()

		for i, item := range insp.Items {
			fmt.Printf("  %d. [%s] %s: %s\n", i+1, item.Kind, item.Label, answerSummary(item))
		}
		fmt.Println()

		return nil
	},
}

// questionIndex converts a 1-based question number into a checked slice
// index. Services treat out-of-range indexes as programming errors, so the
// CLI boundary owns the range check.
func questionIndex(ctx context.Context, inspectionID, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid question number %q", arg)
	}

	insp, err := wire.InspectionService().GetInspection(ctx, inspectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to get inspection: %w", err)
	}
	if n < 1 || n > len(insp.Items) {
		return 0, fmt.Errorf("question number %d out of range (inspection has %d questions)", n, len(insp.Items))
	}
	return n - 1, nil
}

func answerSummary(item snapshot.InspectionItem) string {
	switch {
	case item.Kind == snapshot.KindYesNo && item.Pass != nil && *item.Pass:
		return color.New(color.FgGreen).Sprint("pass")
	case item.Kind == snapshot.KindYesNo && item.Pass != nil:
		return color.New(color.FgRed).Sprint("fail")
	case item.Kind == snapshot.KindYesNo:
		return "unanswered"
	case item.Kind == snapshot.KindPhoto:
		return fmt.Sprintf("%d attachment(s)", len(item.Media))
	case item.Value == nil || item.Value == "":
		return "unanswered"
	default:
		return fmt.Sprintf("%v", item.Value)
	}
}

// InspectionCmd returns the inspection command
func InspectionCmd() *cobra.Command {
	// Add flags
	inspectionAnswerCmd.Flags().Bool("pass", false, "Mark a yes/no question as passing")
	inspectionAnswerCmd.Flags().Bool("fail", false, "Mark a yes/no question as failing")
	inspectionAnswerCmd.Flags().StringP("value", "v", "", "Free-form answer value")
	inspectionSubmitCmd.Flags().StringP("signature", "s", "", "Signature reference (required by some templates)")
	inspectionListCmd.Flags().BoolP("all", "a", false, "Show every user's inspections (admin/manager only)")

	// Add subcommands
	inspectionCmd.AddCommand(inspectionStartCmd)
	inspectionCmd.AddCommand(inspectionAnswerCmd)
	inspectionCmd.AddCommand(inspectionAttachCmd)
	inspectionCmd.AddCommand(inspectionValidateCmd)
	inspectionCmd.AddCommand(inspectionSubmitCmd)
	inspectionCmd.AddCommand(inspectionListCmd)
	inspectionCmd.AddCommand(inspectionShowCmd)

	return inspectionCmd
}
