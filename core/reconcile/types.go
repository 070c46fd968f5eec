package reconcile

// Selection is a submitted set of counterpart keys.
// A nil Selection means nothing was submitted at all, which clears every association.
type Selection []string

// NewSelection builds a Selection from submitted values.
// present reports whether the field was submitted; when false the Selection is nil.
func NewSelection(values []string, present bool) Selection {
	if !present {
		return nil
	}
	if values == nil {
		return Selection{}
	}
	return Selection(values)
}

// Absent reports whether no selection was submitted.
func (s Selection) Absent() bool {
	return s == nil
}

// Set returns the selection as a set. Duplicate keys collapse.
func (s Selection) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, key := range s {
		set[key] = struct{}{}
	}
	return set
}

// Delta is the minimal change that turns the current association set into the selection.
type Delta struct {
	// Insert holds counterpart keys that need a new join record.
	Insert []string `json:"insert"`
	// Delete holds counterpart keys whose join record must be removed.
	Delete []string `json:"delete"`
	// Result is the association set after the delta is applied, sorted.
	Result []string `json:"result"`
}

// Empty reports whether the delta changes nothing.
func (d Delta) Empty() bool {
	return len(d.Insert) == 0 && len(d.Delete) == 0
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides relation-specific loading and mutation.
	Adapter Adapter
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionLink inserts a join record between the owner and a counterpart.
	ActionLink ActionType = "link"
	// ActionUnlink removes the join record between the owner and a counterpart.
	ActionUnlink ActionType = "unlink"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the counterpart identifier.
	Key string `json:"key"`
}

// ReconcilePlan contains the planned actions for one owner entity.
type ReconcilePlan struct {
	// Relation names the adapter that produced the plan (e.g., "author_books").
	Relation string `json:"relation"`

	// Owner is the key of the entity whose associations are reconciled.
	Owner string `json:"owner"`

	// Actions contains planned mutation operations, links first.
	Actions []Action `json:"actions"`

	// Result is the association set once all actions are applied.
	Result []string `json:"result"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Universe is the number of candidate counterparts considered.
	Universe int `json:"universe"`

	// Current is the number of associations before the plan.
	Current int `json:"current"`

	// Selected is the number of distinct submitted keys, known or not.
	Selected int `json:"selected"`

	// Ignored counts submitted keys outside the universe.
	Ignored int `json:"ignored"`

	// LinkActions counts planned insertions.
	LinkActions int `json:"link_actions"`

	// UnlinkActions counts planned deletions.
	UnlinkActions int `json:"unlink_actions"`
}

// ReconcileOptions controls whether a plan is executed.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller has confirmed the mutations.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
