package locale

import (
	"errors"
	"fmt"
)

var (
	// ErrRead marks a document (or the locales directory) that could not be
	// read from disk.
	ErrRead = errors.New("document unreadable")
	// ErrParse marks a document whose bytes are not a flat mapping in a
	// supported format.
	ErrParse = errors.New("document malformed")
	// ErrBadValue marks a document containing a value outside the closed
	// {text, text list} set.
	ErrBadValue = errors.New("unsupported value")
	// ErrDuplicateLocale marks a locale name backed by more than one file.
	ErrDuplicateLocale = errors.New("duplicate locale")
)

var (
	errTrailingData = errors.New("trailing data after document")
	errNotMapping   = errors.New("document is not a mapping")
)

// DocumentError wraps a fatal document failure with enough context to name
// the offending locale, file, and (where applicable) key.
type DocumentError struct {
	Kind   error
	Locale string
	Path   string
	Key    string
	Msg    string
}

func (e *DocumentError) Error() string {
	if e == nil {
		return ""
	}
	out := e.Kind.Error()
	if e.Locale != "" {
		out += ": locale " + fmt.Sprintf("%q", e.Locale)
	}
	if e.Path != "" {
		out += " (" + e.Path + ")"
	}
	if e.Key != "" {
		out += ": key " + fmt.Sprintf("%q", e.Key)
	}
	if e.Msg != "" {
		out += ": " + e.Msg
	}
	return out
}

func (e *DocumentError) Unwrap() error { return e.Kind }

func readErrorf(locale, path, format string, args ...any) error {
	return &DocumentError{Kind: ErrRead, Locale: locale, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func parseErrorf(locale, path, format string, args ...any) error {
	return &DocumentError{Kind: ErrParse, Locale: locale, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func badValueError(locale, path, key string, cause error) error {
	return &DocumentError{Kind: ErrBadValue, Locale: locale, Path: path, Key: key, Msg: cause.Error()}
}
