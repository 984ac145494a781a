// Package locale defines the domain models for localization documents.
package locale

import (
	"fmt"
	"sort"
)

// Kind classifies a translation value. It is a closed set: every value in a
// loaded Document is exactly one of these.
type Kind int

const (
	// KindText is a single translatable string.
	KindText Kind = iota
	// KindTextList is an ordered sequence of translatable strings.
	KindTextList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextList:
		return "text list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the tagged union produced at the parse boundary. Exactly one of
// Text or List is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Text string
	List []string
}

// Len returns the list length for KindTextList values and 0 otherwise.
func (v Value) Len() int {
	if v.Kind != KindTextList {
		return 0
	}
	return len(v.List)
}

// ClassifyValue converts a raw decoded value (as produced by the JSON or
// YAML decoder) into a Value.
//
// Accepted shapes:
//   - a string
//   - a sequence whose elements are all strings (empty is allowed)
//
// Everything else (null, numbers, booleans, nested mappings, sequences with
// non-string elements) is rejected. This is the single classification rule
// shared by schema inference and validation; it must not be duplicated.
func ClassifyValue(raw any) (Value, error) {
	switch val := raw.(type) {
	case string:
		return Value{Kind: KindText, Text: val}, nil
	case []any:
		list := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list element %d is %s, not text", i, describeRaw(item))
			}
			list = append(list, s)
		}
		return Value{Kind: KindTextList, List: list}, nil
	case []string:
		// Some decoders hand back typed string slices directly.
		return Value{Kind: KindTextList, List: append([]string(nil), val...)}, nil
	default:
		return Value{}, fmt.Errorf("value is %s, not text or a list of text", describeRaw(raw))
	}
}

func describeRaw(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64, int, int64, uint64:
		return "a number"
	case map[string]any, map[any]any:
		return "a nested mapping"
	case []any, []string:
		return "a list"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

// Document is one locale's translation table: a flat mapping from key to
// classified Value. Entries are never mutated after loading.
type Document struct {
	// Name is the locale name, i.e. the file name with its extension
	// stripped ("en", "pt-BR", ...).
	Name string

	// Path is the file the document was loaded from. Informational; used in
	// diagnostics only.
	Path string

	Entries map[string]Value
}

// Keys returns the document's keys in sorted order. Insertion order is not
// meaningful for translation documents, so sorted order is the canonical
// enumeration everywhere.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
