package usecase

import (
	"portfolio-cms/internal/model"
)

// DefaultProjectCategories seeds the category filter when a document predates
// configurable categories.
var DefaultProjectCategories = []string{"work", "personal", "freelance", "open source"}

// Normalize upgrades a freshly loaded document in place: the later-added
// sections (learning, certifications, recommendations) are inserted with
// empty item lists when missing, and the projects section gains the default
// category list. This is migration-on-read and runs on every load, so it must
// be idempotent.
func Normalize(d *model.Document) {
	ensureSection(d, model.SectionLearning, "Now Learning")
	ensureSection(d, model.SectionCertifications, "Certifications")
	ensureSection(d, model.SectionRecommendations, "Recommendations")

	if s := d.FindSection(model.SectionProjects); s != nil {
		data, ok := s.Data.(model.ProjectsData)
		if !ok {
			data = model.ProjectsData{Items: []model.Project{}}
		}
		if len(data.Categories) == 0 {
			data.Categories = append([]string(nil), DefaultProjectCategories...)
		}
		if data.Items == nil {
			data.Items = []model.Project{}
		}
		s.Data = data
	}
}

func ensureSection(d *model.Document, id, title string) {
	if d.FindSection(id) != nil {
		return
	}
	d.Sections = append(d.Sections, model.Section{
		ID:      id,
		Type:    model.TypeList,
		Title:   title,
		Visible: model.Visible(true),
		Data:    emptyListData(id),
	})
}

func emptyListData(id string) model.SectionData {
	switch id {
	case model.SectionLearning:
		return model.LearningData{Items: []model.Learning{}}
	case model.SectionCertifications:
		return model.CertificationsData{Items: []model.Certification{}}
	case model.SectionRecommendations:
		return model.RecommendationsData{Items: []model.Recommendation{}}
	default:
		return model.UnknownData{"items": []any{}}
	}
}
