package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localecheck/internal/locale"
)

func text(s string) locale.Value {
	return locale.Value{Kind: locale.KindText, Text: s}
}

func list(items ...string) locale.Value {
	return locale.Value{Kind: locale.KindTextList, List: items}
}

func doc(name string, entries map[string]locale.Value) *locale.Document {
	return &locale.Document{Name: name, Entries: entries}
}

func baseFixture() *locale.Document {
	return doc("en", map[string]locale.Value{
		"greeting": text("hi"),
		"farewell": text("bye"),
		"items":    list("a", "b", "c"),
	})
}

func TestAgainst_SelfValidationIsEmpty(t *testing.T) {
	base := baseFixture()
	schema := locale.InferSchema(base)

	rep := Against(schema, base, base)

	assert.True(t, rep.Valid())
	assert.Empty(t, rep.Missing)
	assert.Empty(t, rep.Extra)
	assert.Empty(t, rep.WrongKind)
	assert.Empty(t, rep.WrongLength)
}

func TestAgainst_MissingKeyReportedOnlyAsMissing(t *testing.T) {
	base := baseFixture()
	schema := locale.InferSchema(base)
	cand := doc("sv", map[string]locale.Value{
		"greeting": text("hej"),
		"items":    list("x", "y", "z"),
	})

	rep := Against(schema, base, cand)

	assert.False(t, rep.Valid())
	assert.Equal(t, []string{"farewell"}, rep.Missing)
	assert.Empty(t, rep.Extra)
	assert.Empty(t, rep.WrongKind)
	assert.Empty(t, rep.WrongLength)
}

func TestAgainst_ExtraKey(t *testing.T) {
	base := baseFixture()
	schema := locale.InferSchema(base)
	cand := doc("sv", map[string]locale.Value{
		"greeting": text("hej"),
		"farewell": text("hejdå"),
		"items":    list("x", "y", "z"),
		"surplus":  text("??"),
	})

	rep := Against(schema, base, cand)

	assert.Equal(t, []string{"surplus"}, rep.Extra)
	assert.Empty(t, rep.Missing)
	assert.Empty(t, rep.WrongKind)
	assert.Empty(t, rep.WrongLength)
}

func TestAgainst_WrongKindBothDirections(t *testing.T) {
	base := baseFixture()
	schema := locale.InferSchema(base)
	// greeting became a list, items became text.
	cand := doc("sv", map[string]locale.Value{
		"greeting": list("hej"),
		"farewell": text("hejdå"),
		"items":    text("x, y, z"),
	})

	rep := Against(schema, base, cand)

	require.Len(t, rep.WrongKind, 2)
	assert.Equal(t, KindMismatch{Key: "greeting", Observed: locale.KindTextList, Expected: locale.KindText}, rep.WrongKind[0])
	assert.Equal(t, KindMismatch{Key: "items", Observed: locale.KindText, Expected: locale.KindTextList}, rep.WrongKind[1])
	// Wrong-kind keys are never additionally reported as wrong-length.
	assert.Empty(t, rep.WrongLength)
}

func TestAgainst_WrongLength(t *testing.T) {
	base := baseFixture()
	schema := locale.InferSchema(base)

	for _, tc := range []struct {
		name     string
		items    locale.Value
		observed int
	}{
		{"shortened", list("x", "y"), 2},
		{"lengthened", list("x", "y", "z", "w"), 4},
		{"emptied", list(), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cand := doc("sv", map[string]locale.Value{
				"greeting": text("hej"),
				"farewell": text("hejdå"),
				"items":    tc.items,
			})

			rep := Against(schema, base, cand)

			require.Len(t, rep.WrongLength, 1)
			assert.Equal(t, LengthMismatch{Key: "items", Observed: tc.observed, Expected: 3}, rep.WrongLength[0])
			assert.Empty(t, rep.WrongKind)
		})
	}
}

func TestAgainst_LengthComesFromBaseDocumentNotSchema(t *testing.T) {
	// The schema records kinds only; the expected length is whatever the
	// base document holds for that key at validation time.
	base := doc("en", map[string]locale.Value{"items": list("a", "b", "c", "d", "e")})
	schema := locale.InferSchema(base)
	cand := doc("sv", map[string]locale.Value{"items": list("x", "y", "z")})

	rep := Against(schema, base, cand)

	require.Len(t, rep.WrongLength, 1)
	assert.Equal(t, 5, rep.WrongLength[0].Expected)
	assert.Equal(t, 3, rep.WrongLength[0].Observed)
}

// TestAgainst_CombinedScenario pins the worked example: several categories
// firing at once for a single candidate, with the precedence rule applied.
func TestAgainst_CombinedScenario(t *testing.T) {
	base := doc("en", map[string]locale.Value{
		"greeting": text("hi"),
		"items":    list("a", "b", "c"),
	})
	schema := locale.InferSchema(base)
	cand := doc("sv", map[string]locale.Value{
		"greeting": list("hi"),
		"items":    list("a", "b"),
		"extra":    text("x"),
	})

	rep := Against(schema, base, cand)

	assert.False(t, rep.Valid())
	assert.Empty(t, rep.Missing)
	assert.Equal(t, []string{"extra"}, rep.Extra)
	require.Len(t, rep.WrongKind, 1)
	assert.Equal(t, KindMismatch{Key: "greeting", Observed: locale.KindTextList, Expected: locale.KindText}, rep.WrongKind[0])
	require.Len(t, rep.WrongLength, 1)
	assert.Equal(t, LengthMismatch{Key: "items", Observed: 2, Expected: 3}, rep.WrongLength[0])
}

func TestAgainst_ListingsSortedByKey(t *testing.T) {
	base := doc("en", map[string]locale.Value{
		"b": text("1"), "a": text("2"), "c": text("3"),
	})
	schema := locale.InferSchema(base)
	cand := doc("sv", map[string]locale.Value{
		"z": text("x"), "m": text("y"),
	})

	rep := Against(schema, base, cand)

	assert.Equal(t, []string{"a", "b", "c"}, rep.Missing)
	assert.Equal(t, []string{"m", "z"}, rep.Extra)
}

func TestRender_FailingReportListsEveryCategory(t *testing.T) {
	rep := &Report{
		Locale:      "sv",
		Missing:     []string{"farewell"},
		Extra:       []string{"surplus"},
		WrongKind:   []KindMismatch{{Key: "greeting", Observed: locale.KindTextList, Expected: locale.KindText}},
		WrongLength: []LengthMismatch{{Key: "items", Observed: 2, Expected: 3}},
	}

	var b strings.Builder
	require.NoError(t, Render(&b, rep, "en"))
	out := b.String()

	assert.Contains(t, out, `locale "sv": structure diverges from base "en"`)
	assert.Contains(t, out, "missing keys: farewell")
	assert.Contains(t, out, "extra keys: surplus")
	assert.Contains(t, out, "wrong kind: greeting: got text list, want text")
	assert.Contains(t, out, "wrong length: items: got 2 entries, want 3")
}

func TestRender_PassingReportIsOneLine(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, &Report{Locale: "pt"}, "en"))
	assert.Equal(t, "locale \"pt\": ok\n", b.String())
}
