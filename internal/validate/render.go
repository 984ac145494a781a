package validate

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a human-readable rendering of the report to w. Passing
// reports render as a single line; failing reports list every non-empty
// divergence category.
func Render(w io.Writer, r *Report, baseLocale string) error {
	if r.Valid() {
		_, err := fmt.Fprintf(w, "locale %q: ok\n", r.Locale)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "locale %q: structure diverges from base %q\n", r.Locale, baseLocale)
	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "  missing keys: %s\n", strings.Join(r.Missing, ", "))
	}
	if len(r.Extra) > 0 {
		fmt.Fprintf(&b, "  extra keys: %s\n", strings.Join(r.Extra, ", "))
	}
	for _, m := range r.WrongKind {
		fmt.Fprintf(&b, "  wrong kind: %s: got %s, want %s\n", m.Key, m.Observed, m.Expected)
	}
	for _, m := range r.WrongLength {
		fmt.Fprintf(&b, "  wrong length: %s: got %d entries, want %d\n", m.Key, m.Observed, m.Expected)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
