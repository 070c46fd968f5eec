package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"book-manager/core/reconcile"
	"book-manager/feature/catalog/links"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the reconcile command
	selectKeys  []string
	clearLinks  bool
	dryRunLinks bool
	yesConfirm  bool
)

// reconcileCmd replaces the links of one author or book.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile author|book <id>",
	Short: "Reconcile the book_authors links of one author or book",
	Long: `Plans the link and unlink actions that make an author's books (or a
book's authors) match the given selection, prints the plan and applies it
after confirmation.

Ids outside the catalog are ignored. Clearing removes every link.

Examples:
  # Plan only
  reconcile author 1 --select 2,3 --dry-run

  # Link author 1 to books 2 and 3, unlinking the rest
  reconcile author 1 --select 2,3

  # Remove every author from book 4 without prompting
  reconcile book 4 --clear --yes`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"author", "book"},
	RunE:      runReconcile,
}

func init() {
	reconcileCmd.Flags().StringSliceVar(&selectKeys, "select", nil, "Comma separated counterpart ids to keep linked")
	reconcileCmd.Flags().BoolVar(&clearLinks, "clear", false, "Remove every link")
	reconcileCmd.Flags().BoolVar(&dryRunLinks, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	reconcileCmd.MarkFlagsMutuallyExclusive("select", "clear")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profile, ok := links.GetProfileByName(args[0])
	if !ok {
		return fmt.Errorf("unknown relation %q: expected author or book", args[0])
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil || id == 0 {
		return fmt.Errorf("invalid %s id %q", args[0], args[1])
	}

	sel, err := selectionFromFlags(cmd)
	if err != nil {
		return err
	}

	_, l, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer l.Sync()

	adapter := links.NewAdapter(profile)
	spec := adapter.Spec()
	owner := strconv.FormatUint(id, 10)
	db := store.DB()

	// Step 1: Plan (always runs)
	l.Info("Planning reconciliation...", zap.String("relation", profile.Name), zap.String("owner", owner))
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, db, owner, sel)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	// Step 2: Print report
	printReconcileReport(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("Links already match the selection.")
		return nil
	}

	if dryRunLinks {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	opts := reconcile.ReconcileOptions{Confirmed: true}

	l.Info("Applying actions...")
	var executed int
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		executed, err = reconcile.ApplyPlan(ctx, spec, tx, plan, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed), zap.Strings("result", plan.Result))
	return nil
}

// selectionFromFlags turns --select and --clear into a selection.
func selectionFromFlags(cmd *cobra.Command) (reconcile.Selection, error) {
	switch {
	case clearLinks:
		return reconcile.Selection{}, nil
	case cmd.Flags().Changed("select"):
		keys := make([]string, 0, len(selectKeys))
		for _, k := range selectKeys {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return reconcile.NewSelection(keys, true), nil
	default:
		return nil, fmt.Errorf("either --select or --clear is required")
	}
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.String("relation", plan.Relation),
		zap.String("owner", plan.Owner),
		zap.Int("universe", s.Universe),
		zap.Int("current", s.Current),
		zap.Int("selected", s.Selected),
		zap.Int("ignored", s.Ignored),
	)

	if len(plan.Actions) > 0 {
		l.Info("Planned actions",
			zap.Int("link_actions", s.LinkActions),
			zap.Int("unlink_actions", s.UnlinkActions),
			zap.Int("total_actions", len(plan.Actions)),
		)

		// Show sample of actions (max 5 for logger)
		maxShow := min(5, len(plan.Actions))
		for i := 0; i < maxShow; i++ {
			action := plan.Actions[i]
			l.Info("Sample action",
				zap.String("type", string(action.Type)),
				zap.String("key", action.Key),
			)
		}
		if len(plan.Actions) > maxShow {
			l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
		}
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
