package usecase

import (
	"portfolio-cms/internal/model"
)

// Action is one step of the shell's reducer: it takes the current document
// and yields the next one. Every structured edit flows through an action so
// the fold-slice-back operation stays auditable and testable in isolation.
type Action func(model.Document) model.Document

// ReplaceDocument swaps the whole document.
func ReplaceDocument(next model.Document) Action {
	return func(model.Document) model.Document { return next }
}

// ReplaceProfile swaps the profile record.
func ReplaceProfile(p model.Profile) Action {
	return func(d model.Document) model.Document {
		d.Profile = p
		return d
	}
}

// ReplaceSections swaps the sections slice (order, visibility, titles).
func ReplaceSections(sections []model.Section) Action {
	return func(d model.Document) model.Document {
		d.Sections = append([]model.Section(nil), sections...)
		return d
	}
}

// replaceData rewrites one section's payload, leaving the rest of the
// document untouched.
func replaceData(sectionID string, f func(model.SectionData) model.SectionData) Action {
	return func(d model.Document) model.Document {
		next := append([]model.Section(nil), d.Sections...)
		for i, s := range next {
			if s.ID == sectionID {
				s.Data = f(s.Data)
				next[i] = s
			}
		}
		d.Sections = next
		return d
	}
}

// ReplaceProjectItems replaces the projects item list, keeping categories and
// heading strings.
func ReplaceProjectItems(items []model.Project) Action {
	return replaceData(model.SectionProjects, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.ProjectsData)
		cur.Items = append([]model.Project(nil), items...)
		return cur
	})
}

// ReplaceCategories replaces the projects category list.
func ReplaceCategories(categories []string) Action {
	return replaceData(model.SectionProjects, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.ProjectsData)
		cur.Categories = append([]string(nil), categories...)
		return cur
	})
}

func ReplaceExperienceItems(items []model.Experience) Action {
	return replaceData(model.SectionExperience, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.ExperienceData)
		cur.Items = append([]model.Experience(nil), items...)
		return cur
	})
}

func ReplaceEducationItems(items []model.Education) Action {
	return replaceData(model.SectionEducation, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.EducationData)
		cur.Items = append([]model.Education(nil), items...)
		return cur
	})
}

func ReplaceSkillGroups(items []model.SkillGroup) Action {
	return replaceData(model.SectionSkills, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.SkillsData)
		cur.Items = append([]model.SkillGroup(nil), items...)
		return cur
	})
}

func ReplaceLearningItems(items []model.Learning) Action {
	return replaceData(model.SectionLearning, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.LearningData)
		cur.Items = append([]model.Learning(nil), items...)
		return cur
	})
}

func ReplaceCertificationItems(items []model.Certification) Action {
	return replaceData(model.SectionCertifications, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.CertificationsData)
		cur.Items = append([]model.Certification(nil), items...)
		return cur
	})
}

func ReplaceRecommendationItems(items []model.Recommendation) Action {
	return replaceData(model.SectionRecommendations, func(data model.SectionData) model.SectionData {
		cur, _ := data.(model.RecommendationsData)
		cur.Items = append([]model.Recommendation(nil), items...)
		return cur
	})
}

// ReplaceSectionField sets one scalar payload field by name: the heading
// strings of the projects grid, the skills and certifications sidebar titles,
// and the about content blob.
func ReplaceSectionField(sectionID, field, value string) Action {
	return replaceData(sectionID, func(data model.SectionData) model.SectionData {
		switch cur := data.(type) {
		case model.ProjectsData:
			switch field {
			case "sectionTitle":
				cur.SectionTitle = value
			case "sectionSubtitle":
				cur.SectionSubtitle = value
			}
			return cur
		case model.SkillsData:
			if field == "snapshotTitle" {
				cur.SnapshotTitle = value
			}
			return cur
		case model.CertificationsData:
			if field == "snapshotTitle" {
				cur.SnapshotTitle = value
			}
			return cur
		case model.TextData:
			if field == "content" {
				cur.Content = value
			}
			return cur
		default:
			return data
		}
	})
}
