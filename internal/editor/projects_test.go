package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/internal/model"
)

func newProjectsUnderTest(data model.ProjectsData) (*Projects, *struct {
	items      []model.Project
	categories []string
	fields     map[string]string
}) {
	state := &struct {
		items      []model.Project
		categories []string
		fields     map[string]string
	}{fields: map[string]string{}}

	p := NewProjects(data,
		func(items []model.Project) { state.items = items },
		func(categories []string) { state.categories = categories },
		func(field, value string) { state.fields[field] = value },
		seqGen("p"))
	return p, state
}

func TestProjects_AddUsesTemplate(t *testing.T) {
	p, state := newProjectsUnderTest(model.ProjectsData{})

	added := p.Add()

	assert.Equal(t, "New Project", added.Title)
	assert.Equal(t, "personal", added.Category)
	assert.Equal(t, added.ID, p.SelectedID())
	require.Len(t, state.items, 1)
}

func TestProjects_SetTechnologiesKeepsEmptyEntries(t *testing.T) {
	p, state := newProjectsUnderTest(model.ProjectsData{Items: projects("a")})

	p.SetTechnologies("a", "Go, , React")

	require.Len(t, state.items, 1)
	assert.Equal(t, []string{"Go", "", "React"}, state.items[0].Technologies)
}

func TestProjects_CategoryAddDedupes(t *testing.T) {
	p, state := newProjectsUnderTest(model.ProjectsData{Categories: []string{"work"}})

	p.AddCategory("personal")
	p.AddCategory("work")

	assert.Equal(t, []string{"work", "personal"}, p.Categories())
	assert.Equal(t, []string{"work", "personal"}, state.categories)
}

func TestProjects_RemoveCategoryNeedsConfirm(t *testing.T) {
	p, state := newProjectsUnderTest(model.ProjectsData{Categories: []string{"work", "personal"}})

	p.RemoveCategory("work", func() bool { return false })
	assert.Equal(t, []string{"work", "personal"}, p.Categories())

	p.RemoveCategory("work", func() bool { return true })
	assert.Equal(t, []string{"personal"}, p.Categories())
	assert.Equal(t, []string{"personal"}, state.categories)
}

func TestProjects_HeadingEditsGoThroughOnField(t *testing.T) {
	p, state := newProjectsUnderTest(model.ProjectsData{})

	p.SetSectionTitle("Selected Work")
	p.SetSectionSubtitle("Things I shipped")

	assert.Equal(t, "Selected Work", state.fields["sectionTitle"])
	assert.Equal(t, "Things I shipped", state.fields["sectionSubtitle"])
}

func TestExperience_AddPrepends(t *testing.T) {
	var emitted []model.Experience
	e := NewExperience(model.ExperienceData{Items: []model.Experience{{ID: "old", Title: "Old Role"}}},
		func(items []model.Experience) { emitted = items }, seqGen("x"))

	added := e.Add()

	require.Len(t, emitted, 2)
	assert.Equal(t, added.ID, emitted[0].ID, "new roles land on top of the timeline")
	assert.Equal(t, "old", emitted[1].ID)
}

func TestExperience_BulletEditing(t *testing.T) {
	var emitted []model.Experience
	e := NewExperience(model.ExperienceData{Items: []model.Experience{{
		ID: "x1",
		Description: []model.Bullet{
			model.StringBullet("first"),
			model.ObjectBullet("second", model.Visible(true)),
		},
	}}}, func(items []model.Experience) { emitted = items }, nil)

	e.SetBulletText("x1", 0, "edited")
	require.Len(t, emitted[0].Description, 2)
	assert.Equal(t, "edited", emitted[0].Description[0].Text)
	assert.False(t, emitted[0].Description[0].IsObject(), "editing text keeps the string form")

	e.ToggleBullet("x1", 0)
	assert.True(t, emitted[0].Description[0].IsObject(), "toggling promotes to the object form")
	assert.False(t, emitted[0].Description[0].IsVisible())

	e.AddBullet("x1")
	assert.Len(t, emitted[0].Description, 3)
	assert.Equal(t, "New bullet", emitted[0].Description[2].Text)

	e.RemoveBullet("x1", 1)
	require.Len(t, emitted[0].Description, 2)
	assert.Equal(t, "New bullet", emitted[0].Description[1].Text)

	// out-of-range indexes are ignored
	e.RemoveBullet("x1", 99)
	assert.Len(t, emitted[0].Description, 2)
}

func TestSkills_AssignsSyntheticKeysOnLoad(t *testing.T) {
	e := NewSkills(model.SkillsData{Items: []model.SkillGroup{
		{Category: "Languages", Skills: []string{"Go"}},
		{Category: "Tools", Skills: []string{"Docker"}},
	}}, nil, nil, seqGen("k"))

	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "k-1", items[0].Key)
	assert.Equal(t, "k-2", items[1].Key)
	assert.Equal(t, "k-1", e.SelectedID())
}

func TestSkills_SelectionSurvivesReorder(t *testing.T) {
	e := NewSkills(model.SkillsData{Items: []model.SkillGroup{
		{Category: "Languages"},
		{Category: "Tools"},
	}}, nil, nil, seqGen("k"))

	e.Select("k-2")
	e.MoveUp(1)

	assert.Equal(t, "k-2", e.SelectedID())
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "Tools", sel.Category)
}

func TestSkills_SetSkillsSplitsAndTrims(t *testing.T) {
	var emitted []model.SkillGroup
	e := NewSkills(model.SkillsData{Items: []model.SkillGroup{{Category: "Languages"}}},
		func(items []model.SkillGroup) { emitted = items }, nil, seqGen("k"))

	e.SetSkills("k-1", "Python, Go")

	require.Len(t, emitted, 1)
	assert.Equal(t, []string{"Python", "Go"}, emitted[0].Skills)
}

func TestLearning_ProgressClamps(t *testing.T) {
	var emitted []model.Learning
	e := NewLearning(model.LearningData{Items: []model.Learning{{ID: "l1", Progress: 50}}},
		func(items []model.Learning) { emitted = items }, nil)

	e.SetProgress("l1", 150)
	assert.Equal(t, 100, emitted[0].Progress)

	e.SetProgress("l1", -10)
	assert.Equal(t, 0, emitted[0].Progress)
}

func TestSectionOrder_MoveToggleRename(t *testing.T) {
	var emitted []model.Section
	e := NewSectionOrder([]model.Section{
		{ID: "about", Type: model.TypeText, Title: "About"},
		{ID: "skills", Type: model.TypeList, Title: "Skills"},
	}, func(sections []model.Section) { emitted = sections })

	e.MoveDown(0)
	require.Len(t, emitted, 2)
	assert.Equal(t, "skills", emitted[0].ID)

	e.Toggle(0)
	require.NotNil(t, emitted[0].Visible)
	assert.False(t, *emitted[0].Visible)

	e.Rename(1, "Bio")
	assert.Equal(t, "Bio", emitted[1].Title)
	assert.Equal(t, "about", emitted[1].ID, "rename keeps the id")

	// boundary moves do nothing
	before := e.Sections()
	e.MoveUp(0)
	e.MoveDown(1)
	assert.Equal(t, before, e.Sections())
}

func TestProfileEditor_PatchesFields(t *testing.T) {
	var emitted model.Document
	doc := model.Document{
		Profile: model.Profile{Name: "Alex", Socials: map[string]string{"github": "gh"}},
		Sections: []model.Section{
			{ID: model.SectionAbout, Type: model.TypeText, Title: "About", Data: model.TextData{Content: "old"}},
		},
	}
	e := NewProfile(doc, func(d model.Document) { emitted = d })

	e.SetName("Alexandra")
	assert.Equal(t, "Alexandra", emitted.Profile.Name)

	e.SetSocial("linkedin", "li")
	assert.Equal(t, "li", emitted.Profile.Socials["linkedin"])
	assert.Equal(t, "gh", emitted.Profile.Socials["github"])

	e.SetLabel("outroTitle", "Let's talk")
	assert.Equal(t, "Let's talk", emitted.Profile.OutroTitle)

	e.SetAbout("<p>new</p>")
	assert.Equal(t, model.TextData{Content: "<p>new</p>"}, emitted.Sections[0].Data)

	e.ApplyAboutTemplate(func() bool { return false })
	assert.Equal(t, model.TextData{Content: "<p>new</p>"}, emitted.Sections[0].Data)

	e.ApplyAboutTemplate(nil)
	assert.Equal(t, model.TextData{Content: DefaultAboutTemplate}, emitted.Sections[0].Data)
}
