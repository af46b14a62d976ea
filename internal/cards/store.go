package cards

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/youruser/surgechecklist/internal/util"
)

// DefaultPath is the data file used when nothing else is configured.
const DefaultPath = "surge_checklist.json"

// Store reads and writes a Collection at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load parses the data file. A missing file yields DefaultCollection;
// any other failure is returned.
func (s *Store) Load() (*Collection, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultCollection(), nil
	}
	if err != nil {
		return nil, &OpError{Op: "store.load", Kind: KindIO, Path: s.path, Err: err}
	}
	c, err := Decode(b)
	if err != nil {
		return nil, &OpError{Op: "store.load", Kind: KindParse, Path: s.path, Err: err}
	}
	return c, nil
}

// Save overwrites the data file with c.
func (s *Store) Save(c *Collection) error {
	b, err := Encode(c)
	if err != nil {
		return &OpError{Op: "store.save", Kind: KindEncode, Path: s.path, Err: err}
	}
	if err := util.WriteFileAtomic(s.path, b, 0o644); err != nil {
		return &OpError{Op: "store.save", Kind: KindIO, Path: s.path, Err: err}
	}
	return nil
}

// Decode parses a collection document. The top level must be an object
// carrying a "sets" or "cards" key.
func Decode(b []byte) (*Collection, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, ErrNotCollection
	}
	_, hasSets := keys["sets"]
	_, hasCards := keys["cards"]
	if !hasSets && !hasCards {
		return nil, ErrNotCollection
	}

	var c Collection
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if c.Sets == nil {
		c.Sets = []string{}
	}
	if c.Cards == nil {
		c.Cards = []Card{}
	}
	return &c, nil
}

// Encode renders c as indented JSON. Equal collections encode to
// identical bytes.
func Encode(c *Collection) ([]byte, error) {
	doc := Collection{Sets: c.Sets, Cards: c.Cards}
	if doc.Sets == nil {
		doc.Sets = []string{}
	}
	if doc.Cards == nil {
		doc.Cards = []Card{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
