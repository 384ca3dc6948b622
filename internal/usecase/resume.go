package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"portfolio-cms/internal/model"
)

// Renderer prints HTML to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ResumeBuilder folds the content document into a printable resume: one of
// the read-only projections over the same document the editors mutate. Hidden
// sections, items and bullets are dropped here, at render time, never from
// the stored document.
type ResumeBuilder struct {
	tpl      *template.Template
	renderer Renderer
}

func NewResumeBuilder(renderer Renderer, tplDir string) (*ResumeBuilder, error) {
	tpl, err := template.ParseFiles(filepath.Join(tplDir, "resume.html.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	return &ResumeBuilder{tpl: tpl, renderer: renderer}, nil
}

type resumeView struct {
	Profile        model.Profile
	About          template.HTML
	Experience     []resumeRole
	Education      []model.Education
	Skills         []model.SkillGroup
	Certifications []model.Certification
}

type resumeRole struct {
	Title     string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	Bullets   []string
}

// BuildHTML renders the resume HTML for a document.
func (b *ResumeBuilder) BuildHTML(doc *model.Document) (string, error) {
	view := projectResume(doc)
	var buf bytes.Buffer
	if err := b.tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render resume: %w", err)
	}
	return buf.String(), nil
}

// BuildPDF renders the resume and prints it to PDF.
func (b *ResumeBuilder) BuildPDF(ctx context.Context, doc *model.Document) ([]byte, error) {
	html, err := b.BuildHTML(doc)
	if err != nil {
		return nil, err
	}
	return b.renderer.RenderHTMLToPDF(ctx, html)
}

func projectResume(doc *model.Document) resumeView {
	view := resumeView{Profile: doc.Profile}
	for _, s := range doc.Sections {
		if !s.IsVisible() {
			continue
		}
		switch data := s.Data.(type) {
		case model.TextData:
			if s.ID == model.SectionAbout {
				view.About = template.HTML(data.Content)
			}
		case model.ExperienceData:
			for _, x := range data.Items {
				if !x.IsVisible() {
					continue
				}
				role := resumeRole{
					Title:     x.Title,
					Company:   x.Company,
					Location:  x.Location,
					StartDate: x.StartDate,
					EndDate:   x.EndDate,
				}
				for _, b := range x.Description {
					if b.IsVisible() {
						role.Bullets = append(role.Bullets, b.Text)
					}
				}
				view.Experience = append(view.Experience, role)
			}
		case model.EducationData:
			for _, e := range data.Items {
				if e.IsVisible() {
					view.Education = append(view.Education, e)
				}
			}
		case model.SkillsData:
			view.Skills = append(view.Skills, data.Items...)
		case model.CertificationsData:
			for _, c := range data.Items {
				if c.IsVisible() {
					view.Certifications = append(view.Certifications, c)
				}
			}
		}
	}
	return view
}
