package model

import (
	"encoding/json"
	"fmt"
)

// SectionData is the per-kind payload of a section. The concrete variant is
// chosen by Section.ID when decoding; ids outside the known set decode as
// UnknownData and round-trip untouched, so forward-compatible extensions
// survive the editor.
type SectionData interface {
	sectionData()
}

// TextData backs the about section: a raw HTML/text blob.
type TextData struct {
	Content string `json:"content"`
}

// StatsData backs the stats section.
type StatsData struct {
	Items []Stat `json:"items"`
}

// ProjectsData additionally carries the category list and the section
// heading strings shown above the project grid.
type ProjectsData struct {
	Items           []Project `json:"items"`
	Categories      []string  `json:"categories,omitempty"`
	SectionTitle    string    `json:"sectionTitle,omitempty"`
	SectionSubtitle string    `json:"sectionSubtitle,omitempty"`
}

type ExperienceData struct {
	Items []Experience `json:"items"`
}

type EducationData struct {
	Items []Education `json:"items"`
}

// SkillsData items are unkeyed on the wire; see SkillGroup.Key.
type SkillsData struct {
	Items         []SkillGroup `json:"items"`
	SnapshotTitle string       `json:"snapshotTitle,omitempty"`
}

type LearningData struct {
	Items []Learning `json:"items"`
}

type CertificationsData struct {
	Items         []Certification `json:"items"`
	SnapshotTitle string          `json:"snapshotTitle,omitempty"`
}

type RecommendationsData struct {
	Items []Recommendation `json:"items"`
}

// UnknownData preserves the payload of sections this build does not know.
type UnknownData map[string]any

func (TextData) sectionData()            {}
func (StatsData) sectionData()           {}
func (ProjectsData) sectionData()        {}
func (ExperienceData) sectionData()      {}
func (EducationData) sectionData()       {}
func (SkillsData) sectionData()          {}
func (LearningData) sectionData()        {}
func (CertificationsData) sectionData()  {}
func (RecommendationsData) sectionData() {}
func (UnknownData) sectionData()         {}

type sectionWire struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title"`
	Visible *bool           `json:"visible,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	data := s.Data
	if data == nil {
		data = emptyDataFor(s.ID)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", s.ID, err)
	}
	return json.Marshal(sectionWire{
		ID:      s.ID,
		Type:    s.Type,
		Title:   s.Title,
		Visible: s.Visible,
		Data:    raw,
	})
}

func (s *Section) UnmarshalJSON(raw []byte) error {
	var w sectionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	data, err := decodeSectionData(w.ID, w.Data)
	if err != nil {
		return fmt.Errorf("section %q: %w", w.ID, err)
	}
	*s = Section{ID: w.ID, Type: w.Type, Title: w.Title, Visible: w.Visible, Data: data}
	return nil
}

// DecodeData resolves a raw payload into the typed variant for the given
// section id. Unknown ids yield UnknownData.
func DecodeData(id string, raw json.RawMessage) (SectionData, error) {
	return decodeSectionData(id, raw)
}

func decodeSectionData(id string, raw json.RawMessage) (SectionData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return emptyDataFor(id), nil
	}
	switch id {
	case SectionAbout:
		var d TextData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionStats:
		var d StatsData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionProjects:
		var d ProjectsData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionExperience:
		var d ExperienceData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionEducation:
		var d EducationData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionSkills:
		var d SkillsData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionLearning:
		var d LearningData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionCertifications:
		var d CertificationsData
		err := json.Unmarshal(raw, &d)
		return d, err
	case SectionRecommendations:
		var d RecommendationsData
		err := json.Unmarshal(raw, &d)
		return d, err
	default:
		var d UnknownData
		err := json.Unmarshal(raw, &d)
		return d, err
	}
}

func emptyDataFor(id string) SectionData {
	switch id {
	case SectionAbout:
		return TextData{}
	case SectionStats:
		return StatsData{Items: []Stat{}}
	case SectionProjects:
		return ProjectsData{Items: []Project{}}
	case SectionExperience:
		return ExperienceData{Items: []Experience{}}
	case SectionEducation:
		return EducationData{Items: []Education{}}
	case SectionSkills:
		return SkillsData{Items: []SkillGroup{}}
	case SectionLearning:
		return LearningData{Items: []Learning{}}
	case SectionCertifications:
		return CertificationsData{Items: []Certification{}}
	case SectionRecommendations:
		return RecommendationsData{Items: []Recommendation{}}
	default:
		return UnknownData{}
	}
}

// EncodeDocument marshals the document into its persisted JSON shape.
func EncodeDocument(d *Document) ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDocument parses a document from JSON, resolving every section payload
// into its typed variant.
func DecodeDocument(raw []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
