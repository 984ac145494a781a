package locale

import "sort"

// Schema records the expected kind for every key of the base document. It
// carries kinds only; expected list lengths come from the base document
// itself at validation time.
type Schema map[string]Kind

// InferSchema derives the schema from the base document: the same key set,
// each key mapped to its value's kind.
//
// Classification already happened when the document was loaded, so
// inference over a loaded Document cannot fail; a base file with an
// unsupported value never produces a Document in the first place.
func InferSchema(base *Document) Schema {
	schema := make(Schema, len(base.Entries))
	for key, val := range base.Entries {
		schema[key] = val.Kind
	}
	return schema
}

// Keys returns the schema's keys in sorted order, the canonical enumeration
// order for reports.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
