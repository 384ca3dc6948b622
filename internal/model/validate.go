package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed content.schema.json
var contentSchema []byte

// Validate checks a document against content.schema.json. It guards the store
// boundary: sections must carry unique ids and a known type; payload shape
// below that is convention, not schema.
func Validate(d *Document) error {
	raw, err := EncodeDocument(d)
	if err != nil {
		return err
	}
	return ValidateJSON(raw)
}

// ValidateJSON validates a raw document payload without decoding it first.
func ValidateJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(contentSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return uniqueSectionIDs(raw)
}

func uniqueSectionIDs(raw []byte) error {
	d, err := DecodeDocument(raw)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
