package usecase

// System fields are store-managed metadata. They ride along on every read and
// must never appear in a save payload, at any depth of the tree.
var systemFields = map[string]bool{
	"_id":       true,
	"createdAt": true,
	"updatedAt": true,
	"__v":       true,
}

// StripSystemFields removes the system fields recursively from a decoded JSON
// tree, returning a new tree. Scalars pass through unchanged.
func StripSystemFields(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if systemFields[k] {
				continue
			}
			out[k] = StripSystemFields(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = StripSystemFields(val)
		}
		return out
	default:
		return v
	}
}
