package model

// Item shapes per section kind. All keyed items share an id (unique within
// their list) and the same tri-state visible flag as sections.

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	LongDescription string   `json:"longDescription,omitempty"`
	Challenge       string   `json:"challenge,omitempty"`
	Solution        string   `json:"solution,omitempty"`
	Impact          string   `json:"impact,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Category        string   `json:"category,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Link            string   `json:"link,omitempty"`
	Github          string   `json:"github,omitempty"`
	Visible         *bool    `json:"visible,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Description  []Bullet `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Visible      *bool    `json:"visible,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
}

// SkillGroup has no id on the wire. Key is a synthetic identity assigned by
// the editor at load time so selection survives reordering and removal; it
// never serializes.
type SkillGroup struct {
	Key      string   `json:"-"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type Learning struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Platform    string   `json:"platform,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Progress    int      `json:"progress"`
	Link        string   `json:"link,omitempty"`
	Visible     *bool    `json:"visible,omitempty"`
}

type Certification struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Issuer   string `json:"issuer,omitempty"`
	Date     string `json:"date,omitempty"`
	BadgeURL string `json:"badgeUrl,omitempty"`
	Link     string `json:"link,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
}

type Recommendation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
	Date     string `json:"date,omitempty"`
	Quote    string `json:"quote,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Image    string `json:"image,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
}

func (p Project) ItemID() string        { return p.ID }
func (e Experience) ItemID() string     { return e.ID }
func (e Education) ItemID() string      { return e.ID }
func (g SkillGroup) ItemID() string     { return g.Key }
func (l Learning) ItemID() string       { return l.ID }
func (c Certification) ItemID() string  { return c.ID }
func (r Recommendation) ItemID() string { return r.ID }

func (p Project) IsVisible() bool        { return p.Visible == nil || *p.Visible }
func (e Experience) IsVisible() bool     { return e.Visible == nil || *e.Visible }
func (e Education) IsVisible() bool      { return e.Visible == nil || *e.Visible }
func (l Learning) IsVisible() bool       { return l.Visible == nil || *l.Visible }
func (c Certification) IsVisible() bool  { return c.Visible == nil || *c.Visible }
func (r Recommendation) IsVisible() bool { return r.Visible == nil || *r.Visible }

func (p Project) WithVisible(v *bool) Project               { p.Visible = v; return p }
func (e Experience) WithVisible(v *bool) Experience         { e.Visible = v; return e }
func (e Education) WithVisible(v *bool) Education           { e.Visible = v; return e }
func (l Learning) WithVisible(v *bool) Learning             { l.Visible = v; return l }
func (c Certification) WithVisible(v *bool) Certification   { c.Visible = v; return c }
func (r Recommendation) WithVisible(v *bool) Recommendation { r.Visible = v; return r }
