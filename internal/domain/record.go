package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/internal/model"
)

// SiteRecord is the stored form of the content document: the document itself
// plus the store-managed system fields. Exactly one record exists per
// deployment; saves replace the document wholesale and bump the version
// counter (last-writer-wins, no conflict detection).
type SiteRecord struct {
	ID        uuid.UUID
	Document  *model.Document
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WireJSON renders the record the way the API serves it: the document JSON
// with the system fields injected at the top level. Editors strip these
// before treating the payload as a save body.
func (r *SiteRecord) WireJSON() ([]byte, error) {
	raw, err := model.EncodeDocument(r.Document)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["_id"] = r.ID.String()
	m["createdAt"] = r.CreatedAt.UTC().Format(time.RFC3339)
	m["updatedAt"] = r.UpdatedAt.UTC().Format(time.RFC3339)
	m["__v"] = r.Version
	return json.Marshal(m)
}
