package model

import (
	"encoding/json"
	"fmt"
)

// Bullet is one line of an experience description. On the wire it is either a
// bare string or an object {text, visible}; both forms exist in saved
// documents and editing must not silently rewrite one into the other.
type Bullet struct {
	Text    string
	Visible *bool

	// object records which wire form this bullet arrived in (or was promoted
	// to). Editing text keeps the form; toggling visibility on a bare string
	// promotes it to the object form.
	object bool
}

// StringBullet returns a bullet in the bare-string form.
func StringBullet(text string) Bullet {
	return Bullet{Text: text}
}

// ObjectBullet returns a bullet in the {text, visible} form.
func ObjectBullet(text string, visible *bool) Bullet {
	return Bullet{Text: text, Visible: visible, object: true}
}

// IsObject reports whether the bullet serializes as an object.
func (b Bullet) IsObject() bool { return b.object }

// IsVisible applies the tri-state rule: only an explicit false hides.
func (b Bullet) IsVisible() bool { return b.Visible == nil || *b.Visible }

// WithText replaces the text, preserving the wire form.
func (b Bullet) WithText(text string) Bullet {
	b.Text = text
	return b
}

// Toggled flips visibility. A bare string is promoted to the object form with
// visible=false, matching how hiding is the only reason the richer form
// exists.
func (b Bullet) Toggled() Bullet {
	if !b.object {
		return ObjectBullet(b.Text, Visible(false))
	}
	b.Visible = Visible(!b.IsVisible())
	return b
}

type bulletWire struct {
	Text    string `json:"text"`
	Visible *bool  `json:"visible,omitempty"`
}

func (b Bullet) MarshalJSON() ([]byte, error) {
	if !b.object {
		return json.Marshal(b.Text)
	}
	return json.Marshal(bulletWire{Text: b.Text, Visible: b.Visible})
}

func (b *Bullet) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*b = Bullet{Text: s}
		return nil
	}
	var w bulletWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return fmt.Errorf("bullet must be a string or {text, visible}: %w", err)
	}
	*b = Bullet{Text: w.Text, Visible: w.Visible, object: true}
	return nil
}
