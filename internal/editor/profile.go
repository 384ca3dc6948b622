package editor

import (
	"portfolio-cms/internal/model"
)

// DefaultAboutTemplate is the starter bio offered by the profile editor's
// "use template" action. It replaces the about section's content wholesale
// after confirmation.
const DefaultAboutTemplate = `<p>
  I craft high-performance digital experiences that sit at the intersection of design and engineering.
</p>

<h4>Current Focus</h4>
<p>Architecting scalable backend systems and exploring the limits of the modern web.</p>

<h4>Core Philosophy</h4>
<p>Simplicity is the ultimate sophistication. Code should be as clean as the UI it powers.</p>

<blockquote>
  "Building software is not just about writing code; it's about solving the right problems."
</blockquote>`

// ProfileEditor is the one editor that is not list-based: it patches named
// fields on the profile and the about section's content blob. Each mutation
// proposes a whole replacement document through onChange.
type ProfileEditor struct {
	doc      model.Document
	onChange func(model.Document)
}

func NewProfile(doc model.Document, onChange func(model.Document)) *ProfileEditor {
	return &ProfileEditor{doc: doc, onChange: onChange}
}

// Document returns the working copy.
func (e *ProfileEditor) Document() model.Document { return e.doc }

func (e *ProfileEditor) SetName(v string)       { e.patch(func(p *model.Profile) { p.Name = v }) }
func (e *ProfileEditor) SetTagline(v string)    { e.patch(func(p *model.Profile) { p.Tagline = v }) }
func (e *ProfileEditor) SetResumeLink(v string) { e.patch(func(p *model.Profile) { p.ResumeLink = v }) }

// SetSocial sets one platform link. The platform key set is open; the UI
// suggests github/linkedin/email/blog/twitter.
func (e *ProfileEditor) SetSocial(platform, url string) {
	e.patch(func(p *model.Profile) {
		socials := make(map[string]string, len(p.Socials)+1)
		for k, v := range p.Socials {
			socials[k] = v
		}
		socials[platform] = url
		p.Socials = socials
	})
}

// SetLabel updates one of the named UI label strings. Unknown fields are
// ignored rather than invented.
func (e *ProfileEditor) SetLabel(field, value string) {
	e.patch(func(p *model.Profile) {
		switch field {
		case "swipeText":
			p.SwipeText = value
		case "outroTitle":
			p.OutroTitle = value
		case "outroDesc":
			p.OutroDesc = value
		case "resumeButtonText":
			p.ResumeButtonText = value
		case "tapFlipText":
			p.TapFlipText = value
		case "overviewTitle":
			p.OverviewTitle = value
		case "techStackTitle":
			p.TechStackTitle = value
		case "challengeTitle":
			p.ChallengeTitle = value
		case "solutionTitle":
			p.SolutionTitle = value
		case "impactTitle":
			p.ImpactTitle = value
		case "visitWebsiteBtn":
			p.VisitWebsiteBtn = value
		case "viewSourceBtn":
			p.ViewSourceBtn = value
		}
	})
}

// SetAbout replaces the about section's content blob.
func (e *ProfileEditor) SetAbout(content string) {
	next := e.doc
	next.Sections = append([]model.Section(nil), e.doc.Sections...)
	for i, s := range next.Sections {
		if s.ID == model.SectionAbout {
			s.Data = model.TextData{Content: content}
			next.Sections[i] = s
		}
	}
	e.emit(next)
}

// ApplyAboutTemplate replaces the about content with the starter template
// after confirmation.
func (e *ProfileEditor) ApplyAboutTemplate(confirm Confirm) {
	if confirm != nil && !confirm() {
		return
	}
	e.SetAbout(DefaultAboutTemplate)
}

func (e *ProfileEditor) patch(mutate func(*model.Profile)) {
	next := e.doc
	profile := e.doc.Profile
	mutate(&profile)
	next.Profile = profile
	e.emit(next)
}

func (e *ProfileEditor) emit(next model.Document) {
	e.doc = next
	if e.onChange != nil {
		e.onChange(next)
	}
}
