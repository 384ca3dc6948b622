package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/internal/editor"
	"portfolio-cms/internal/model"
)

var (
	// ErrSaveInFlight rejects a save while one is already running. The save
	// control stays disabled until the cycle finishes.
	ErrSaveInFlight = errors.New("save already in progress")

	// ErrInvalidJSON reports a malformed hand-edited JSON mirror. It is
	// non-fatal: the structured document is left untouched.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotLoaded guards operations before the first successful Load.
	ErrNotLoaded = errors.New("no document loaded")
)

// systemMeta mirrors the store-managed fields the wire payload carries.
type systemMeta struct {
	ID        uuid.UUID
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shell is the editor shell: it owns the whole document in memory, hands
// typed slices to the section editors, folds their replacements back, keeps a
// JSON-text mirror of the document for the raw editor, and drives save/load
// against the content store.
//
// A Shell serves one editing session and is not safe for concurrent use.
type Shell struct {
	store ContentStore
	gen   editor.IDGen

	doc    *model.Document
	sys    systemMeta
	mirror string
	saving bool
}

// NewShell builds a shell over the store. gen may be nil to use uuid ids.
func NewShell(store ContentStore, gen editor.IDGen) *Shell {
	if gen == nil {
		gen = editor.NewID
	}
	return &Shell{store: store, gen: gen}
}

// Load fetches the latest document, normalizes it and re-derives the mirror.
func (s *Shell) Load(ctx context.Context) error {
	rec, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	doc, err := rec.Document.Clone()
	if err != nil {
		return err
	}
	Normalize(doc)
	s.doc = doc
	s.sys = systemMeta{ID: rec.ID, Version: rec.Version, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
	s.refreshMirror()
	return nil
}

// Loaded reports whether a document is in memory.
func (s *Shell) Loaded() bool { return s.doc != nil }

// Document returns a copy of the working document.
func (s *Shell) Document() model.Document {
	if s.doc == nil {
		return model.Document{}
	}
	return *s.doc
}

// Saving reports whether a save cycle is in flight.
func (s *Shell) Saving() bool { return s.saving }

// Mirror returns the JSON-text projection of the document, system fields
// included, as served by the API.
func (s *Shell) Mirror() string { return s.mirror }

// SetMirror replaces the mirror text with a hand edit. The structured
// document is untouched until the edit is imported on save.
func (s *Shell) SetMirror(text string) { s.mirror = text }

// Apply runs one reducer action against the document and re-derives the
// mirror. Every structured edit goes through here.
func (s *Shell) Apply(a Action) {
	if s.doc == nil {
		return
	}
	next := a(*s.doc)
	s.doc = &next
	s.refreshMirror()
}

// Save persists the document: strip system fields, validate, upsert, then
// reload from the store to confirm the persisted state rather than trusting
// the local copy. With fromMirror set, the mirror text is parsed and becomes
// the payload (one-way import); malformed JSON aborts with ErrInvalidJSON and
// no state change.
func (s *Shell) Save(ctx context.Context, fromMirror bool) error {
	if s.saving {
		return ErrSaveInFlight
	}
	if s.doc == nil {
		return ErrNotLoaded
	}
	s.saving = true
	defer func() { s.saving = false }()

	var tree any
	if fromMirror {
		var m any
		if err := json.Unmarshal([]byte(s.mirror), &m); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		tree = m
	} else {
		raw, err := s.wireJSON()
		if err != nil {
			return err
		}
		var m any
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		tree = m
	}

	cleaned, err := json.Marshal(StripSystemFields(tree))
	if err != nil {
		return err
	}
	if err := model.ValidateJSON(cleaned); err != nil {
		return err
	}
	doc, err := model.DecodeDocument(cleaned)
	if err != nil {
		return err
	}
	if _, err := s.store.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return s.Load(ctx)
}

// wireJSON renders the working document plus system fields, matching the
// shape the API serves.
func (s *Shell) wireJSON() ([]byte, error) {
	raw, err := model.EncodeDocument(s.doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if s.sys.ID != uuid.Nil {
		m["_id"] = s.sys.ID.String()
		m["createdAt"] = s.sys.CreatedAt.UTC().Format(time.RFC3339)
		m["updatedAt"] = s.sys.UpdatedAt.UTC().Format(time.RFC3339)
		m["__v"] = s.sys.Version
	}
	return json.Marshal(m)
}

func (s *Shell) refreshMirror() {
	raw, err := s.wireJSON()
	if err != nil {
		return
	}
	var buf map[string]any
	if json.Unmarshal(raw, &buf) == nil {
		if pretty, err := json.MarshalIndent(buf, "", "  "); err == nil {
			s.mirror = string(pretty)
			return
		}
	}
	s.mirror = string(raw)
}
