package editor

import (
	"portfolio-cms/internal/model"
)

// Projects edits the projects section: the item list plus the category list
// and the heading strings above the grid. Projects is the one keyed editor
// besides the section order that supports reordering.
type Projects struct {
	*List[model.Project]

	categories   []string
	onCategories func([]string)
	onField      func(field, value string)
}

// NewProjects wires a projects editor. onField receives sectionTitle and
// sectionSubtitle edits.
func NewProjects(data model.ProjectsData, onItems func([]model.Project), onCategories func([]string), onField func(field, value string), gen IDGen) *Projects {
	return &Projects{
		List:         NewList(data.Items, onItems, gen),
		categories:   append([]string(nil), data.Categories...),
		onCategories: onCategories,
		onField:      onField,
	}
}

// Add appends a template project and selects it.
func (p *Projects) Add() model.Project {
	return p.add(func(id string) model.Project {
		return model.Project{
			ID:           id,
			Title:        "New Project",
			Description:  "Short description...",
			Technologies: []string{},
			Category:     "personal",
		}
	}, false)
}

// SetTechnologies parses a comma separated list. Entries are trimmed but kept
// even when empty, matching how the field is free-typed.
func (p *Projects) SetTechnologies(id, csv string) {
	p.Update(id, func(pr model.Project) model.Project {
		pr.Technologies = splitTrim(csv)
		return pr
	})
}

// Toggle flips the project's visibility.
func (p *Projects) Toggle(id string) { ToggleVisible(p.List, id) }

// Categories returns a copy of the category list.
func (p *Projects) Categories() []string {
	return append([]string(nil), p.categories...)
}

// AddCategory appends a category unless it is already present.
func (p *Projects) AddCategory(name string) {
	for _, c := range p.categories {
		if c == name {
			return
		}
	}
	p.emitCategories(append(append([]string(nil), p.categories...), name))
}

// RemoveCategory deletes a category after confirmation. Projects already in
// that category keep their value; nothing re-validates item fields.
func (p *Projects) RemoveCategory(name string, confirm Confirm) {
	if confirm != nil && !confirm() {
		return
	}
	next := make([]string, 0, len(p.categories))
	for _, c := range p.categories {
		if c != name {
			next = append(next, c)
		}
	}
	p.emitCategories(next)
}

func (p *Projects) emitCategories(next []string) {
	p.categories = next
	if p.onCategories != nil {
		p.onCategories(append([]string(nil), next...))
	}
}

// SetSectionTitle updates the heading above the project grid.
func (p *Projects) SetSectionTitle(title string) {
	if p.onField != nil {
		p.onField("sectionTitle", title)
	}
}

// SetSectionSubtitle updates the subheading above the project grid.
func (p *Projects) SetSectionSubtitle(subtitle string) {
	if p.onField != nil {
		p.onField("sectionSubtitle", subtitle)
	}
}
