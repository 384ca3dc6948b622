package repository

import (
	"portfolio-cms/internal/model"
)

// DefaultDocument is the content seeded on first read of an empty store. The
// later sections (learning, certifications, recommendations) are left out on
// purpose: the shell's migration-on-read inserts them, which keeps that path
// exercised in every deployment.
func DefaultDocument() *model.Document {
	return &model.Document{
		Profile: model.Profile{
			Name:       "Alex Carter",
			Tagline:    "Full Stack Engineer",
			ResumeLink: "https://example.com/resume",
			Socials: map[string]string{
				"github":   "https://github.com/alexcarter",
				"linkedin": "https://linkedin.com/in/alexcarter",
			},
		},
		Sections: []model.Section{
			{
				ID:    model.SectionStats,
				Type:  model.TypeText,
				Title: "Statistics",
				Data: model.StatsData{Items: []model.Stat{
					{Label: "Experience", Value: "4+ Years"},
					{Label: "Projects", Value: "20+"},
					{Label: "Commits", Value: "2k+"},
				}},
			},
			{
				ID:    model.SectionProjects,
				Type:  model.TypeProjects,
				Title: "Featured Work",
				Data: model.ProjectsData{Items: []model.Project{
					{
						ID:           "1",
						Title:        "Project Alpha",
						Description:  "A revolutionary app",
						Technologies: []string{"React", "Node"},
						Category:     "personal",
						Link:         "#",
					},
				}},
			},
		},
	}
}
