package locale

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// extensions lists the recognized document formats, in probe order.
var extensions = []string{".json", ".yaml", ".yml"}

// Store reads locale documents out of a single flat directory. Each file
// named <locale>.<ext> with a recognized extension is one document.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: filepath.Clean(dir)}
}

// Discover returns the sorted locale names present in the store directory.
//
// Subdirectories and files with unrecognized extensions are ignored. A
// locale backed by more than one file (say fr.json next to fr.yaml) is an
// ErrDuplicateLocale: the store cannot know which one is authoritative.
func (s *Store) Discover() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, readErrorf("", s.Dir, "read locales directory: %v", err)
	}

	seen := make(map[string]string, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !recognizedExtension(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if name == "" {
			continue
		}
		if prev, dup := seen[name]; dup {
			return nil, &DocumentError{
				Kind:   ErrDuplicateLocale,
				Locale: name,
				Path:   filepath.Join(s.Dir, entry.Name()),
				Msg:    "already provided by " + prev,
			}
		}
		seen[name] = filepath.Join(s.Dir, entry.Name())
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and parses the document for one locale name.
//
// Failures are fatal to the whole run and carry the offending path:
// ErrRead for a missing or unreadable file, ErrParse for bytes that are not
// a flat mapping in a supported format, ErrBadValue for a mapping entry
// outside the closed {text, text list} set.
func (s *Store) Load(name string) (*Document, error) {
	path, ext, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, readErrorf(name, path, "%v", err)
	}

	var mapping map[string]any
	switch ext {
	case ".json":
		mapping, err = decodeJSONMapping(raw)
	default:
		mapping, err = decodeYAMLMapping(raw)
	}
	if err != nil {
		return nil, parseErrorf(name, path, "%v", err)
	}

	doc := &Document{Name: name, Path: path, Entries: make(map[string]Value, len(mapping))}
	for _, key := range sortedKeys(mapping) {
		val, err := ClassifyValue(mapping[key])
		if err != nil {
			return nil, badValueError(name, path, key, err)
		}
		doc.Entries[key] = val
	}
	return doc, nil
}

func (s *Store) resolve(name string) (path, ext string, err error) {
	for _, candidate := range extensions {
		p := filepath.Join(s.Dir, name+candidate)
		if _, statErr := os.Stat(p); statErr == nil {
			return p, candidate, nil
		}
	}
	return "", "", readErrorf(name, s.Dir, "no document found for locale")
}

func recognizedExtension(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// decodeJSONMapping decodes a strict, flat JSON object.
//
// Strictness mirrors the rest of the loader: the document must be a single
// JSON value with no trailing data, and that value must be an object.
func decodeJSONMapping(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var mapping map[string]any
	if err := dec.Decode(&mapping); err != nil {
		return nil, err
	}
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, errTrailingData
		}
		return nil, err
	}
	if mapping == nil {
		return nil, errNotMapping
	}
	return mapping, nil
}

func decodeYAMLMapping(raw []byte) (map[string]any, error) {
	var mapping map[string]any
	if err := yaml.Unmarshal(raw, &mapping); err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, errNotMapping
	}
	return mapping, nil
}
