package usecase

import (
	"portfolio-cms/internal/editor"
	"portfolio-cms/internal/model"
)

// Editor constructors. Each hands the relevant slice of the document to a
// section editor together with callbacks that fold the edited slice back
// through the reducer. The editors hold working copies, never the document
// itself.

func (s *Shell) SectionOrderEditor() *editor.SectionOrder {
	return editor.NewSectionOrder(s.Document().Sections, func(sections []model.Section) {
		s.Apply(ReplaceSections(sections))
	})
}

func (s *Shell) ProjectsEditor() *editor.Projects {
	data, _ := sectionData[model.ProjectsData](s.doc, model.SectionProjects)
	return editor.NewProjects(data,
		func(items []model.Project) { s.Apply(ReplaceProjectItems(items)) },
		func(categories []string) { s.Apply(ReplaceCategories(categories)) },
		func(field, value string) { s.Apply(ReplaceSectionField(model.SectionProjects, field, value)) },
		s.gen)
}

func (s *Shell) ExperienceEditor() *editor.ExperienceEditor {
	data, _ := sectionData[model.ExperienceData](s.doc, model.SectionExperience)
	return editor.NewExperience(data, func(items []model.Experience) {
		s.Apply(ReplaceExperienceItems(items))
	}, s.gen)
}

func (s *Shell) EducationEditor() *editor.EducationEditor {
	data, _ := sectionData[model.EducationData](s.doc, model.SectionEducation)
	return editor.NewEducation(data, func(items []model.Education) {
		s.Apply(ReplaceEducationItems(items))
	}, s.gen)
}

func (s *Shell) SkillsEditor() *editor.SkillsEditor {
	data, _ := sectionData[model.SkillsData](s.doc, model.SectionSkills)
	return editor.NewSkills(data,
		func(items []model.SkillGroup) { s.Apply(ReplaceSkillGroups(items)) },
		func(field, value string) { s.Apply(ReplaceSectionField(model.SectionSkills, field, value)) },
		s.gen)
}

func (s *Shell) LearningEditor() *editor.LearningEditor {
	data, _ := sectionData[model.LearningData](s.doc, model.SectionLearning)
	return editor.NewLearning(data, func(items []model.Learning) {
		s.Apply(ReplaceLearningItems(items))
	}, s.gen)
}

func (s *Shell) CertificationsEditor() *editor.CertificationsEditor {
	data, _ := sectionData[model.CertificationsData](s.doc, model.SectionCertifications)
	return editor.NewCertifications(data, func(items []model.Certification) {
		s.Apply(ReplaceCertificationItems(items))
	}, s.gen)
}

func (s *Shell) RecommendationsEditor() *editor.RecommendationsEditor {
	data, _ := sectionData[model.RecommendationsData](s.doc, model.SectionRecommendations)
	return editor.NewRecommendations(data, func(items []model.Recommendation) {
		s.Apply(ReplaceRecommendationItems(items))
	}, s.gen)
}

func (s *Shell) ProfileEditor() *editor.ProfileEditor {
	return editor.NewProfile(s.Document(), func(doc model.Document) {
		s.Apply(ReplaceDocument(doc))
	})
}

// sectionData pulls one section's typed payload; a missing section or a
// mismatched payload yields the zero variant so editors start empty instead
// of failing.
func sectionData[T model.SectionData](d *model.Document, id string) (T, bool) {
	var zero T
	if d == nil {
		return zero, false
	}
	s := d.FindSection(id)
	if s == nil {
		return zero, false
	}
	data, ok := s.Data.(T)
	if !ok {
		return zero, false
	}
	return data, true
}
