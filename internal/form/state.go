package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Separator splits a field name into group and key, e.g. "structure.genre"
const Separator = "."

var (
	ErrEmptyName     = errors.New("empty field name")
	ErrNestedTooDeep = errors.New("field name nests deeper than one group")
	ErrKindMismatch  = errors.New("field name does not match the existing entry kind")
)

// Group is a named sub-record of a State.
// Groups are shared between states, never modify one in place.
type Group map[string]string

// State is an immutable nested record backing one editable form.
// Top-level keys hold strings, groups hold one level of string keys.
//
// The zero value is an empty state ready to use.
type State struct {
	values map[string]string
	groups map[string]Group
}

// Name is a parsed field name. Group is empty for top-level names.
type Name struct {
	Group string
	Key   string
}

func (n Name) String() string {
	if n.Group == "" {
		return n.Key
	}

	return n.Group + Separator + n.Key
}

func ParseName(name string) (Name, error) {
	parts := strings.Split(name, Separator)

	for _, p := range parts {
		if p == "" {
			return Name{}, ErrEmptyName
		}
	}

	switch len(parts) {
	case 1:
		return Name{Key: parts[0]}, nil
	case 2:
		return Name{Group: parts[0], Key: parts[1]}, nil
	default:
		return Name{}, ErrNestedTooDeep
	}
}

// Set returns a copy of the state with one field replaced.
// Untouched groups are shared with the receiver.
func (s State) Set(name, value string) (State, error) {
	n, err := ParseName(name)
	if err != nil {
		return s, fmt.Errorf("setting field %q: %w", name, err)
	}

	if n.Group == "" {
		if _, ok := s.groups[n.Key]; ok {
			return s, fmt.Errorf("setting field %q: %w", name, ErrKindMismatch)
		}

		values := make(map[string]string, len(s.values)+1)
		for k, v := range s.values {
			values[k] = v
		}
		values[n.Key] = value

		return State{values: values, groups: s.groups}, nil
	}

	if _, ok := s.values[n.Group]; ok {
		return s, fmt.Errorf("setting field %q: %w", name, ErrKindMismatch)
	}

	prev := s.groups[n.Group]
	group := make(Group, len(prev)+1)
	for k, v := range prev {
		group[k] = v
	}
	group[n.Key] = value

	groups := make(map[string]Group, len(s.groups)+1)
	for k, g := range s.groups {
		groups[k] = g
	}
	groups[n.Group] = group

	return State{values: s.values, groups: groups}, nil
}

// MustSet is Set for names known to be valid, like the ones of a Schema
func (s State) MustSet(name, value string) State {
	ret, err := s.Set(name, value)
	if err != nil {
		panic(err)
	}

	return ret
}

func (s State) Lookup(name string) (string, bool) {
	n, err := ParseName(name)
	if err != nil {
		return "", false
	}

	if n.Group == "" {
		v, ok := s.values[n.Key]
		return v, ok
	}

	v, ok := s.groups[n.Group][n.Key]
	return v, ok
}

// Get returns empty string for missing fields
func (s State) Get(name string) string {
	v, _ := s.Lookup(name)
	return v
}

// Group returns the named sub-record, or nil. The result must not be modified.
func (s State) Group(name string) Group {
	return s.groups[name]
}

// Keys returns sorted top-level keys, not including groups
func (s State) Keys() []string {
	return sortedKeys(s.values)
}

func (s State) GroupNames() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Apply sets every listed name present in the posted values. Names absent from
// the post are left as they are, so a partial form does not wipe other fields.
func (s State) Apply(posted url.Values, names ...string) (State, error) {
	var err error
	for _, name := range names {
		vs, ok := posted[name]
		if !ok || len(vs) == 0 {
			continue
		}

		s, err = s.Set(name, vs[0])
		if err != nil {
			return s, err
		}
	}

	return s, nil
}

func (s State) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(s.values)+len(s.groups))
	for k, v := range s.values {
		obj[k] = v
	}
	for k, g := range s.groups {
		if g == nil {
			g = Group{}
		}
		obj[k] = g
	}

	return json.Marshal(obj)
}

func (s *State) UnmarshalJSON(bs []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}

	values := make(map[string]string)
	groups := make(map[string]Group)

	for k, v := range raw {
		v = bytes.TrimSpace(v)
		if len(v) == 0 || bytes.Equal(v, []byte("null")) {
			continue
		}

		switch v[0] {
		case '"':
			var str string
			if err := json.Unmarshal(v, &str); err != nil {
				return fmt.Errorf("decoding field %q: %w", k, err)
			}
			values[k] = str
		case '{':
			var g Group
			if err := json.Unmarshal(v, &g); err != nil {
				return fmt.Errorf("decoding group %q: %w", k, err)
			}
			groups[k] = g
		default:
			return fmt.Errorf("decoding field %q: only strings and objects of strings expected", k)
		}
	}

	*s = State{values: values, groups: groups}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
