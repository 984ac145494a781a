// Package validate compares candidate locale documents against the schema
// and base document, producing per-candidate divergence reports.
package validate

import (
	"localecheck/internal/locale"
)

// KindMismatch records a key whose candidate value has the wrong kind.
type KindMismatch struct {
	Key      string
	Observed locale.Kind
	Expected locale.Kind
}

// LengthMismatch records a text-list key whose candidate list length differs
// from the base document's.
type LengthMismatch struct {
	Key      string
	Observed int
	Expected int
}

// Report is the full structural comparison result for one candidate. All
// listings are sorted by key, so identical inputs always render identically.
type Report struct {
	Locale      string
	Missing     []string
	Extra       []string
	WrongKind   []KindMismatch
	WrongLength []LengthMismatch
}

// Valid reports whether the candidate matched the base structure exactly.
func (r *Report) Valid() bool {
	return len(r.Missing) == 0 &&
		len(r.Extra) == 0 &&
		len(r.WrongKind) == 0 &&
		len(r.WrongLength) == 0
}

// Against validates candidate against the schema inferred from base and
// against base itself (expected list lengths live in the base document, not
// the schema).
//
// The four categories are independent, with one precedence rule: a key
// absent from the candidate is reported only as missing, and a wrong-kind
// key is never additionally reported as wrong-length. The computation is
// pure; rendering and aggregation are the caller's concern.
func Against(schema locale.Schema, base, candidate *locale.Document) *Report {
	rep := &Report{Locale: candidate.Name}

	for _, key := range schema.Keys() {
		got, ok := candidate.Entries[key]
		if !ok {
			rep.Missing = append(rep.Missing, key)
			continue
		}
		want := schema[key]
		if got.Kind != want {
			rep.WrongKind = append(rep.WrongKind, KindMismatch{Key: key, Observed: got.Kind, Expected: want})
			continue
		}
		if want != locale.KindTextList {
			continue
		}
		expected := base.Entries[key].Len()
		if got.Len() != expected {
			rep.WrongLength = append(rep.WrongLength, LengthMismatch{Key: key, Observed: got.Len(), Expected: expected})
		}
	}

	for _, key := range candidate.Keys() {
		if _, ok := schema[key]; !ok {
			rep.Extra = append(rep.Extra, key)
		}
	}

	return rep
}
