package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSSource loads content sets from a directory of JSON documents, one file
// per serialized key (e.g. "female_mom_birthday.json"). Documents are parsed
// with a strict decoder and never evaluated as code.
type FSSource struct {
	dir string
}

// NewFSSource creates an FSSource rooted at dir.
// Parameters:
//   - dir: directory holding content set JSON files.
// Returns:
//   - *FSSource: initialized source.
func NewFSSource(dir string) *FSSource {
	return &FSSource{dir: dir}
}

// setDocument is the on-disk shape of a content set. Screens are authored as
// arrays of line strings.
type setDocument struct {
	Variations []struct {
		Screens [][]string `json:"screens"`
	} `json:"variations"`
}

// Load reads and parses the content set for a serialized key.
// Parameters:
//   - ctx: context for cancellation and deadlines (unused by the file reader
//     but part of the Source contract).
//   - key: serialized canonical key.
// Returns:
//   - *Set: parsed content set.
//   - error: ErrNotFound if no file exists for the key, or a parse error.
func (s *FSSource) Load(_ context.Context, key string) (*Set, error) {
	// Keys are built from closed enumerations, but never trust them as path
	// components anyway.
	if strings.ContainsAny(key, `/\.`) {
		return nil, fmt.Errorf("content key %q: %w", key, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("content key %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read content set %q: %w", key, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc setDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse content set %q: %w", key, err)
	}

	set := &Set{Key: key, Variations: make([]Variation, 0, len(doc.Variations))}
	for _, v := range doc.Variations {
		variation := Variation{Screens: make([]Screen, 0, len(v.Screens))}
		for _, lines := range v.Screens {
			variation.Screens = append(variation.Screens, Screen{Lines: lines})
		}
		set.Variations = append(set.Variations, variation)
	}
	if len(set.Variations) == 0 {
		return nil, fmt.Errorf("content set %q has no variations", key)
	}
	return set, nil
}

// Keys lists the serialized keys present in the source directory. Used by the
// content linter to enumerate authored sets.
// Parameters: none.
// Returns:
//   - []string: serialized keys, one per .json file.
//   - error: non-nil if the directory cannot be read.
func (s *FSSource) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content dir %q: %w", s.dir, err)
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}
