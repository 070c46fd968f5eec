package reconcile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrOwnerNotFound is returned when the owner entity of a plan does not exist.
var ErrOwnerNotFound = errors.New("reconcile owner not found")

// ReconcileWithPlan loads the universe and the owner's current links and plans
// the actions that make them match sel. It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, db *gorm.DB, owner string, sel Selection) (*ReconcilePlan, error) {
	adapter := spec.Adapter

	exists, err := adapter.OwnerExists(ctx, db, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s owner %s: %w", adapter.Name(), owner, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s owner %s: %w", adapter.Name(), owner, ErrOwnerNotFound)
	}

	universe, err := adapter.LoadUniverse(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s universe: %w", adapter.Name(), err)
	}

	current, err := adapter.LoadCurrent(ctx, db, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s links for %s: %w", adapter.Name(), owner, err)
	}

	return buildPlan(adapter.Name(), owner, universe, current, sel), nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, db *gorm.DB, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	var linkKeys, unlinkKeys []string
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionLink:
			linkKeys = append(linkKeys, action.Key)
		case ActionUnlink:
			unlinkKeys = append(unlinkKeys, action.Key)
		}
	}

	if len(unlinkKeys) > 0 {
		if err := mutator.Unlink(ctx, db, plan.Owner, unlinkKeys); err != nil {
			return executed, fmt.Errorf("failed to unlink %s for %s: %w", spec.Adapter.Name(), plan.Owner, err)
		}
		executed += len(unlinkKeys)
	}

	if len(linkKeys) > 0 {
		if err := mutator.Link(ctx, db, plan.Owner, linkKeys); err != nil {
			return executed, fmt.Errorf("failed to link %s for %s: %w", spec.Adapter.Name(), plan.Owner, err)
		}
		executed += len(linkKeys)
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, owner string, sel Selection, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, db, owner, sel)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, db, plan, opts)
	return plan, executed, err
}

// buildPlan turns a Diff into a plan with a summary.
func buildPlan(relation, owner string, universe []string, current map[string]struct{}, sel Selection) *ReconcilePlan {
	delta := Diff(universe, current, sel)

	plan := &ReconcilePlan{
		Relation: relation,
		Owner:    owner,
		Actions:  make([]Action, 0, len(delta.Insert)+len(delta.Delete)),
		Result:   delta.Result,
	}

	for _, key := range delta.Insert {
		plan.Actions = append(plan.Actions, Action{Type: ActionLink, Key: key})
	}
	for _, key := range delta.Delete {
		plan.Actions = append(plan.Actions, Action{Type: ActionUnlink, Key: key})
	}

	known := make(map[string]struct{}, len(universe))
	for _, key := range universe {
		known[key] = struct{}{}
	}
	selected := sel.Set()
	ignored := 0
	for key := range selected {
		if _, ok := known[key]; !ok {
			ignored++
		}
	}

	plan.Summary = PlanSummary{
		Universe:      len(universe),
		Current:       len(current),
		Selected:      len(selected),
		Ignored:       ignored,
		LinkActions:   len(delta.Insert),
		UnlinkActions: len(delta.Delete),
	}

	return plan
}
