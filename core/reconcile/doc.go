// Package reconcile synchronizes a many-to-many relation with a submitted selection.
//
// An owner entity (an author, a book) is linked to counterparts (its books,
// its authors) through join records. Given the counterpart keys a user
// selected, the package computes the minimal set of join records to insert
// and delete so that the stored links equal the selection.
//
// # Architecture
//
// 1. Diff: pure set difference over string keys. The universe of known
// counterparts drives iteration, so unknown submitted keys are ignored. A nil
// Selection means nothing was submitted and clears every link.
//
// 2. Adapter: relation-specific loading (owner lookup, universe, current
// links). Adapters that also implement Mutator can persist a plan.
//
// 3. Plan/Apply: ReconcileWithPlan produces a ReconcilePlan with link and
// unlink actions and a summary; ApplyPlan executes it when confirmed and
// not a dry run.
//
// Reconciling is idempotent: applying the same selection twice yields an
// empty second plan.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: links.NewAdapter(links.AuthorBooks())}
//	sel := reconcile.NewSelection(values, submitted)
//	plan, n, err := reconcile.ReconcileAndApply(ctx, spec, tx, "3", sel,
//	    reconcile.ReconcileOptions{Confirmed: true})
package reconcile
