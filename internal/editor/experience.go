package editor

import (
	"portfolio-cms/internal/model"
)

// ExperienceEditor edits the experience timeline. Besides the usual item CRUD
// it manages each role's bullet list, the one place per-field visibility
// exists below the item level: a bullet is either a bare string or a
// {text, visible} object, and edits must preserve whichever form it has.
type ExperienceEditor struct {
	*List[model.Experience]
}

func NewExperience(data model.ExperienceData, onItems func([]model.Experience), gen IDGen) *ExperienceEditor {
	return &ExperienceEditor{List: NewList(data.Items, onItems, gen)}
}

// Add prepends a template role so the newest entry lands on top of the
// timeline.
func (e *ExperienceEditor) Add() model.Experience {
	return e.add(func(id string) model.Experience {
		return model.Experience{
			ID:           id,
			Title:        "New Role",
			Company:      "Company",
			Location:     "Remote",
			StartDate:    "2025-01",
			Description:  []model.Bullet{model.StringBullet("Did cool stuff.")},
			Technologies: []string{},
		}
	}, true)
}

// Toggle flips the role's visibility.
func (e *ExperienceEditor) Toggle(id string) { ToggleVisible(e.List, id) }

// SetTechnologies parses a comma separated list, trimming entries.
func (e *ExperienceEditor) SetTechnologies(id, csv string) {
	e.Update(id, func(x model.Experience) model.Experience {
		x.Technologies = splitTrim(csv)
		return x
	})
}

// AddBullet appends a bare-string bullet to the role.
func (e *ExperienceEditor) AddBullet(id string) {
	e.Update(id, func(x model.Experience) model.Experience {
		x.Description = append(append([]model.Bullet(nil), x.Description...), model.StringBullet("New bullet"))
		return x
	})
}

// RemoveBullet deletes the bullet at index. Out-of-range indexes are ignored.
func (e *ExperienceEditor) RemoveBullet(id string, index int) {
	e.Update(id, func(x model.Experience) model.Experience {
		if index < 0 || index >= len(x.Description) {
			return x
		}
		next := make([]model.Bullet, 0, len(x.Description)-1)
		next = append(next, x.Description[:index]...)
		next = append(next, x.Description[index+1:]...)
		x.Description = next
		return x
	})
}

// SetBulletText replaces the bullet's text, preserving its wire form: a bare
// string stays a string, an object keeps its visible flag.
func (e *ExperienceEditor) SetBulletText(id string, index int, text string) {
	e.Update(id, func(x model.Experience) model.Experience {
		if index < 0 || index >= len(x.Description) {
			return x
		}
		next := append([]model.Bullet(nil), x.Description...)
		next[index] = next[index].WithText(text)
		x.Description = next
		return x
	})
}

// ToggleBullet flips the bullet's visibility, promoting a bare string to the
// object form.
func (e *ExperienceEditor) ToggleBullet(id string, index int) {
	e.Update(id, func(x model.Experience) model.Experience {
		if index < 0 || index >= len(x.Description) {
			return x
		}
		next := append([]model.Bullet(nil), x.Description...)
		next[index] = next[index].Toggled()
		x.Description = next
		return x
	})
}
