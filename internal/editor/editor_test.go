package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/internal/model"
)

// seqGen returns a deterministic id generator for tests.
func seqGen(prefix string) IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func projects(ids ...string) []model.Project {
	out := make([]model.Project, len(ids))
	for i, id := range ids {
		out[i] = model.Project{ID: id, Title: "P " + id}
	}
	return out
}

func TestList_SelectsFirstItemOnLoad(t *testing.T) {
	l := NewList(projects("a", "b"), nil, nil)
	assert.Equal(t, "a", l.SelectedID())

	empty := NewList([]model.Project(nil), nil, nil)
	assert.Equal(t, "", empty.SelectedID())
}

func TestList_AddGrowsByOneAndSelects(t *testing.T) {
	var emitted []model.Project
	l := NewList(projects("a"), func(items []model.Project) { emitted = items }, seqGen("id"))

	added := l.add(func(id string) model.Project { return model.Project{ID: id, Title: "New"} }, false)

	assert.Equal(t, "id-1", added.ID)
	assert.Equal(t, added.ID, l.SelectedID())
	require.Len(t, emitted, 2)
	assert.Equal(t, "id-1", emitted[1].ID)
}

func TestList_AddSkipsCollidingIDs(t *testing.T) {
	l := NewList(projects("id-1"), nil, seqGen("id"))
	added := l.add(func(id string) model.Project { return model.Project{ID: id} }, false)
	assert.Equal(t, "id-2", added.ID)
}

func TestList_RemoveReselectsFirst(t *testing.T) {
	l := NewList(projects("a", "b", "c"), nil, nil)
	l.Select("b")

	require.True(t, l.Remove("b", nil))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "a", l.SelectedID())
}

func TestList_RemoveDeclinedByConfirm(t *testing.T) {
	l := NewList(projects("a"), nil, nil)
	assert.False(t, l.Remove("a", func() bool { return false }))
	assert.Equal(t, 1, l.Len())
}

func TestList_RemoveUnknownIDIsNoOp(t *testing.T) {
	calls := 0
	l := NewList(projects("a"), func([]model.Project) { calls++ }, nil)
	assert.False(t, l.Remove("zzz", nil))
	assert.Zero(t, calls)
}

func TestList_MoveBoundariesAreNoOps(t *testing.T) {
	calls := 0
	l := NewList(projects("a", "b"), func([]model.Project) { calls++ }, nil)

	l.MoveUp(0)
	l.MoveDown(1)
	l.MoveUp(-1)
	l.MoveDown(99)
	assert.Zero(t, calls)
}

func TestList_MovePreservesItems(t *testing.T) {
	l := NewList(projects("a", "b", "c"), nil, nil)

	l.MoveDown(0)
	got := l.Items()
	assert.Equal(t, []string{got[0].ID, got[1].ID, got[2].ID}, []string{"b", "a", "c"})

	l.MoveUp(2)
	got = l.Items()
	assert.Equal(t, []string{got[0].ID, got[1].ID, got[2].ID}, []string{"b", "c", "a"})
}

func TestList_UpdateReplacesOnlyTheTarget(t *testing.T) {
	l := NewList(projects("a", "b"), nil, nil)
	l.Update("b", func(p model.Project) model.Project {
		p.Title = "Renamed"
		return p
	})

	items := l.Items()
	assert.Equal(t, "P a", items[0].Title)
	assert.Equal(t, "Renamed", items[1].Title)
}

func TestList_SelectIgnoresUnknownID(t *testing.T) {
	l := NewList(projects("a"), nil, nil)
	l.Select("zzz")
	assert.Equal(t, "a", l.SelectedID())
}

func TestToggleVisible_TriState(t *testing.T) {
	l := NewList(projects("a"), nil, nil)

	// absent flag counts as shown, so the first toggle hides
	ToggleVisible(l, "a")
	item, _ := l.Selected()
	require.NotNil(t, item.Visible)
	assert.False(t, *item.Visible)

	ToggleVisible(l, "a")
	item, _ = l.Selected()
	require.NotNil(t, item.Visible)
	assert.True(t, *item.Visible)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"Python", "Go"}, SplitCSV("Python, Go"))
	assert.Equal(t, []string{"Go"}, SplitCSV(" Go , , "))
	assert.Empty(t, SplitCSV(""))
}

func TestSplitTrim_KeepsEmpties(t *testing.T) {
	assert.Equal(t, []string{"Go", "", "React"}, splitTrim("Go, , React"))
}
