package editor

import (
	"portfolio-cms/internal/model"
)

// SectionOrder edits the sections slice itself: display order, visibility and
// inline title renames. It shares the move/toggle contract of the item
// editors but is index-addressed, since the list is short and rendered whole.
type SectionOrder struct {
	sections []model.Section
	onChange func([]model.Section)
}

func NewSectionOrder(sections []model.Section, onChange func([]model.Section)) *SectionOrder {
	return &SectionOrder{
		sections: append([]model.Section(nil), sections...),
		onChange: onChange,
	}
}

// Sections returns a copy of the working slice.
func (e *SectionOrder) Sections() []model.Section {
	return append([]model.Section(nil), e.sections...)
}

// MoveUp swaps with the upper neighbor. No-op at index 0.
func (e *SectionOrder) MoveUp(index int) {
	if index <= 0 || index >= len(e.sections) {
		return
	}
	next := append([]model.Section(nil), e.sections...)
	next[index-1], next[index] = next[index], next[index-1]
	e.emit(next)
}

// MoveDown swaps with the lower neighbor. No-op at the last index.
func (e *SectionOrder) MoveDown(index int) {
	if index < 0 || index >= len(e.sections)-1 {
		return
	}
	next := append([]model.Section(nil), e.sections...)
	next[index+1], next[index] = next[index], next[index+1]
	e.emit(next)
}

// Toggle flips a section's visibility with the tri-state rule.
func (e *SectionOrder) Toggle(index int) {
	if index < 0 || index >= len(e.sections) {
		return
	}
	next := append([]model.Section(nil), e.sections...)
	next[index].Visible = model.Visible(!next[index].IsVisible())
	e.emit(next)
}

// Rename sets a section's display title. The id stays untouched.
func (e *SectionOrder) Rename(index int, title string) {
	if index < 0 || index >= len(e.sections) {
		return
	}
	next := append([]model.Section(nil), e.sections...)
	next[index].Title = title
	e.emit(next)
}

func (e *SectionOrder) emit(next []model.Section) {
	e.sections = next
	if e.onChange != nil {
		e.onChange(append([]model.Section(nil), next...))
	}
}
