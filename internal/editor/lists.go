package editor

import (
	"portfolio-cms/internal/model"
)

// The remaining keyed list editors share the List core and differ only in
// their template item.

type EducationEditor struct {
	*List[model.Education]
}

func NewEducation(data model.EducationData, onItems func([]model.Education), gen IDGen) *EducationEditor {
	return &EducationEditor{List: NewList(data.Items, onItems, gen)}
}

func (e *EducationEditor) Add() model.Education {
	return e.add(func(id string) model.Education {
		return model.Education{
			ID:          id,
			Institution: "University Name",
			Degree:      "Degree Name",
			StartDate:   "2020",
			EndDate:     "2024",
			Description: "Major, GPA, etc.",
			Visible:     model.Visible(true),
		}
	}, false)
}

func (e *EducationEditor) Toggle(id string) { ToggleVisible(e.List, id) }

type LearningEditor struct {
	*List[model.Learning]
}

func NewLearning(data model.LearningData, onItems func([]model.Learning), gen IDGen) *LearningEditor {
	return &LearningEditor{List: NewList(data.Items, onItems, gen)}
}

func (e *LearningEditor) Add() model.Learning {
	return e.add(func(id string) model.Learning {
		return model.Learning{
			ID:          id,
			Title:       "New Course",
			Platform:    "Udemy / Coursera",
			Description: "What I am learning...",
			Skills:      []string{"Skill 1"},
			Progress:    0,
			Visible:     model.Visible(true),
		}
	}, false)
}

func (e *LearningEditor) Toggle(id string) { ToggleVisible(e.List, id) }

// SetProgress clamps to the 0-100 range the progress bar renders.
func (e *LearningEditor) SetProgress(id string, progress int) {
	e.Update(id, func(l model.Learning) model.Learning {
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		l.Progress = progress
		return l
	})
}

// SetSkills parses a comma separated list, trimming and dropping empties.
func (e *LearningEditor) SetSkills(id, csv string) {
	e.Update(id, func(l model.Learning) model.Learning {
		l.Skills = SplitCSV(csv)
		return l
	})
}

type CertificationsEditor struct {
	*List[model.Certification]
}

func NewCertifications(data model.CertificationsData, onItems func([]model.Certification), gen IDGen) *CertificationsEditor {
	return &CertificationsEditor{List: NewList(data.Items, onItems, gen)}
}

func (e *CertificationsEditor) Add() model.Certification {
	return e.add(func(id string) model.Certification {
		return model.Certification{
			ID:      id,
			Title:   "New Certification",
			Issuer:  "AWS / Google / etc",
			Date:    "2024",
			Visible: model.Visible(true),
		}
	}, false)
}

func (e *CertificationsEditor) Toggle(id string) { ToggleVisible(e.List, id) }

type RecommendationsEditor struct {
	*List[model.Recommendation]
}

func NewRecommendations(data model.RecommendationsData, onItems func([]model.Recommendation), gen IDGen) *RecommendationsEditor {
	return &RecommendationsEditor{List: NewList(data.Items, onItems, gen)}
}

func (e *RecommendationsEditor) Add() model.Recommendation {
	return e.add(func(id string) model.Recommendation {
		return model.Recommendation{
			ID:      id,
			Name:    "John Doe",
			Role:    "Senior Engineer",
			Company: "Tech Corp",
			Date:    "2025-01",
			Quote:   "Working together was...",
			Visible: model.Visible(true),
		}
	}, false)
}

func (e *RecommendationsEditor) Toggle(id string) { ToggleVisible(e.List, id) }
