package reconcile

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryAdapter keeps links in memory and implements Mutator.
type memoryAdapter struct {
	owners   map[string]bool
	universe []string
	links    map[string]map[string]struct{}

	ownerErr    error
	universeErr error
	currentErr  error
	linkErr     error
}

func newMemoryAdapter() *memoryAdapter {
	return &memoryAdapter{
		owners:   map[string]bool{"7": true},
		universe: []string{"1", "2", "3"},
		links:    map[string]map[string]struct{}{"7": {"1": {}}},
	}
}

func (m *memoryAdapter) Name() string { return "memory" }

func (m *memoryAdapter) OwnerExists(ctx context.Context, db *gorm.DB, owner string) (bool, error) {
	return m.owners[owner], m.ownerErr
}

func (m *memoryAdapter) LoadUniverse(ctx context.Context, db *gorm.DB) ([]string, error) {
	if m.universeErr != nil {
		return nil, m.universeErr
	}
	return m.universe, nil
}

func (m *memoryAdapter) LoadCurrent(ctx context.Context, db *gorm.DB, owner string) (map[string]struct{}, error) {
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	current := make(map[string]struct{})
	for k := range m.links[owner] {
		current[k] = struct{}{}
	}
	return current, nil
}

func (m *memoryAdapter) Link(ctx context.Context, db *gorm.DB, owner string, keys []string) error {
	if m.linkErr != nil {
		return m.linkErr
	}
	if m.links[owner] == nil {
		m.links[owner] = make(map[string]struct{})
	}
	for _, k := range keys {
		m.links[owner][k] = struct{}{}
	}
	return nil
}

func (m *memoryAdapter) Unlink(ctx context.Context, db *gorm.DB, owner string, keys []string) error {
	for _, k := range keys {
		delete(m.links[owner], k)
	}
	return nil
}

func (m *memoryAdapter) linked(owner string) []string {
	keys := make([]string, 0, len(m.links[owner]))
	for k := range m.links[owner] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// readOnlyAdapter hides the Mutator methods of memoryAdapter.
type readOnlyAdapter struct{ inner *memoryAdapter }

func (r readOnlyAdapter) Name() string { return "readonly" }
func (r readOnlyAdapter) OwnerExists(ctx context.Context, db *gorm.DB, owner string) (bool, error) {
	return r.inner.OwnerExists(ctx, db, owner)
}
func (r readOnlyAdapter) LoadUniverse(ctx context.Context, db *gorm.DB) ([]string, error) {
	return r.inner.LoadUniverse(ctx, db)
}
func (r readOnlyAdapter) LoadCurrent(ctx context.Context, db *gorm.DB, owner string) (map[string]struct{}, error) {
	return r.inner.LoadCurrent(ctx, db, owner)
}

var confirmed = ReconcileOptions{Confirmed: true}

func TestReconcileWithPlan(t *testing.T) {
	adapter := newMemoryAdapter()
	spec := &Spec{Adapter: adapter}

	plan, err := ReconcileWithPlan(context.Background(), spec, nil, "7", Selection{"2", "3", "99"})
	require.NoError(t, err)

	assert.Equal(t, "memory", plan.Relation)
	assert.Equal(t, "7", plan.Owner)
	assert.Equal(t, []Action{
		{Type: ActionLink, Key: "2"},
		{Type: ActionLink, Key: "3"},
		{Type: ActionUnlink, Key: "1"},
	}, plan.Actions)
	assert.Equal(t, []string{"2", "3"}, plan.Result)
	assert.Equal(t, PlanSummary{
		Universe:      3,
		Current:       1,
		Selected:      3,
		Ignored:       1,
		LinkActions:   2,
		UnlinkActions: 1,
	}, plan.Summary)

	// Planning alone never mutates.
	assert.Equal(t, []string{"1"}, adapter.linked("7"))
}

func TestReconcileAndApply(t *testing.T) {
	adapter := newMemoryAdapter()
	spec := &Spec{Adapter: adapter}
	ctx := context.Background()

	_, executed, err := ReconcileAndApply(ctx, spec, nil, "7", Selection{"2", "3"}, confirmed)
	require.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.Equal(t, []string{"2", "3"}, adapter.linked("7"))

	// Second pass with the same selection is a no-op.
	plan, executed, err := ReconcileAndApply(ctx, spec, nil, "7", Selection{"2", "3"}, confirmed)
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Equal(t, 0, executed)

	// Absent selection clears everything.
	_, executed, err = ReconcileAndApply(ctx, spec, nil, "7", nil, confirmed)
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Empty(t, adapter.linked("7"))
}

func TestApplyPlan_Guards(t *testing.T) {
	tests := []struct {
		name string
		opts ReconcileOptions
	}{
		{"Not confirmed", ReconcileOptions{}},
		{"Dry run", ReconcileOptions{Confirmed: true, DryRun: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newMemoryAdapter()
			spec := &Spec{Adapter: adapter}

			plan, executed, err := ReconcileAndApply(context.Background(), spec, nil, "7", Selection{"3"}, tt.opts)
			require.NoError(t, err)
			assert.Len(t, plan.Actions, 2)
			assert.Equal(t, 0, executed)
			assert.Equal(t, []string{"1"}, adapter.linked("7"))
		})
	}
}

func TestApplyPlan_NoMutator(t *testing.T) {
	spec := &Spec{Adapter: readOnlyAdapter{inner: newMemoryAdapter()}}

	_, _, err := ReconcileAndApply(context.Background(), spec, nil, "7", Selection{"2"}, confirmed)
	assert.EqualError(t, err, "adapter readonly does not implement Mutator interface")
}

func TestReconcileWithPlan_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		setup  func(*memoryAdapter)
		owner  string
		target error
	}{
		{"Unknown owner", func(m *memoryAdapter) {}, "8", ErrOwnerNotFound},
		{"Owner lookup", func(m *memoryAdapter) { m.ownerErr = boom }, "7", boom},
		{"Universe", func(m *memoryAdapter) { m.universeErr = boom }, "7", boom},
		{"Current", func(m *memoryAdapter) { m.currentErr = boom }, "7", boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newMemoryAdapter()
			tt.setup(adapter)

			plan, err := ReconcileWithPlan(context.Background(), &Spec{Adapter: adapter}, nil, tt.owner, Selection{"1"})
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, plan)
		})
	}
}

func TestApplyPlan_LinkError(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.linkErr = errors.New("duplicate key")
	spec := &Spec{Adapter: adapter}

	_, executed, err := ReconcileAndApply(context.Background(), spec, nil, "7", Selection{"2"}, confirmed)
	assert.ErrorContains(t, err, "duplicate key")
	// The unlink of "1" ran before the failing link.
	assert.Equal(t, 1, executed)
}
