package editor

import (
	"portfolio-cms/internal/model"
)

// SkillsEditor edits the unkeyed skill groups. The wire format has no id per
// group, so the editor assigns a synthetic key to every group when it loads
// the slice; selection then follows the key instead of the array index and
// survives reordering and removal. Keys never serialize.
type SkillsEditor struct {
	*List[model.SkillGroup]

	onField func(field, value string)
}

// NewSkills wires a skills editor. onField receives snapshotTitle edits.
func NewSkills(data model.SkillsData, onItems func([]model.SkillGroup), onField func(field, value string), gen IDGen) *SkillsEditor {
	if gen == nil {
		gen = NewID
	}
	groups := make([]model.SkillGroup, len(data.Items))
	for i, g := range data.Items {
		if g.Key == "" {
			g.Key = gen()
		}
		groups[i] = g
	}
	return &SkillsEditor{
		List:    NewList(groups, onItems, gen),
		onField: onField,
	}
}

// Add appends a template group and selects it.
func (e *SkillsEditor) Add() model.SkillGroup {
	return e.add(func(key string) model.SkillGroup {
		return model.SkillGroup{Key: key, Category: "New Category", Skills: []string{}}
	}, false)
}

// SetCategory renames the group.
func (e *SkillsEditor) SetCategory(key, name string) {
	e.Update(key, func(g model.SkillGroup) model.SkillGroup {
		g.Category = name
		return g
	})
}

// SetSkills replaces the group's skills from a comma separated input:
// entries are trimmed and empties dropped.
func (e *SkillsEditor) SetSkills(key, csv string) {
	e.Update(key, func(g model.SkillGroup) model.SkillGroup {
		g.Skills = SplitCSV(csv)
		return g
	})
}

// SetSnapshotTitle updates the sidebar title.
func (e *SkillsEditor) SetSnapshotTitle(title string) {
	if e.onField != nil {
		e.onField("snapshotTitle", title)
	}
}
