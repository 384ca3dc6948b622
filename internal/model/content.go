package model

// Go models for the site content document: a single persisted record holding
// the profile plus an ordered list of typed sections. Section order is the
// render order and is directly editable.

// SectionType is a rendering hint. Editor behavior keys off Section.ID; the
// public render projections use both, so the two stay independent.
type SectionType string

const (
	TypeText     SectionType = "text"
	TypeProjects SectionType = "projects"
	TypeTimeline SectionType = "timeline"
	TypeList     SectionType = "list"
)

// Well-known section IDs. Anything else decodes as an unknown extension
// section and round-trips untouched.
const (
	SectionAbout           = "about"
	SectionStats           = "stats"
	SectionProjects        = "projects"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionSkills          = "skills"
	SectionLearning        = "learning"
	SectionCertifications  = "certifications"
	SectionRecommendations = "recommendations"
)

// Profile holds identity, social links and the UI label strings the mobile
// and desktop layouts read.
type Profile struct {
	Name       string            `json:"name"`
	Tagline    string            `json:"tagline,omitempty"`
	ResumeLink string            `json:"resumeLink,omitempty"`
	Socials    map[string]string `json:"socials,omitempty"`

	SwipeText        string `json:"swipeText,omitempty"`
	OutroTitle       string `json:"outroTitle,omitempty"`
	OutroDesc        string `json:"outroDesc,omitempty"`
	ResumeButtonText string `json:"resumeButtonText,omitempty"`
	TapFlipText      string `json:"tapFlipText,omitempty"`
	OverviewTitle    string `json:"overviewTitle,omitempty"`
	TechStackTitle   string `json:"techStackTitle,omitempty"`
	ChallengeTitle   string `json:"challengeTitle,omitempty"`
	SolutionTitle    string `json:"solutionTitle,omitempty"`
	ImpactTitle      string `json:"impactTitle,omitempty"`
	VisitWebsiteBtn  string `json:"visitWebsiteBtn,omitempty"`
	ViewSourceBtn    string `json:"viewSourceBtn,omitempty"`
}

// Section is one named, orderable, independently visible block of the
// document. Visible is tri-state: nil and true both render, only an explicit
// false hides.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible *bool       `json:"visible,omitempty"`
	Data    SectionData `json:"data"`
}

// IsVisible reports whether the section renders.
func (s Section) IsVisible() bool { return s.Visible == nil || *s.Visible }

// Document is the whole content document. Exactly one exists per deployment;
// it is replaced wholesale on every save.
type Document struct {
	Profile  Profile   `json:"profile"`
	Sections []Section `json:"sections"`
}

// FindSection returns a pointer into Sections for the given id, or nil.
func (d *Document) FindSection(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// Clone returns a deep copy via a JSON round-trip. The editors follow an
// immutable-update discipline, so callers clone before mutating shared state.
func (d *Document) Clone() (*Document, error) {
	raw, err := EncodeDocument(d)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(raw)
}

// Visible is a convenience for building *bool literals.
func Visible(v bool) *bool { return &v }
