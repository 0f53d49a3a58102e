package newsdoc

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html/atom"
)

// AnyClass is the class value that matches an element regardless of its
// class attribute.
const AnyClass = "any"

// Tag selects elements by name and an optional class constraint.
//
// The zero value is not a valid Tag; use NewTag or MustTag. A Tag is
// immutable once built, so it can be shared between concurrent extractions.
type Tag struct {
	name  string
	atom  atom.Atom
	class string
}

// NewTag builds a Tag from raw configuration fields.
// Returns EINVALID if the name or class is empty, or if the class holds more
// than one whitespace-separated token.
func NewTag(name, class string) (Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	class = strings.TrimSpace(class)
	if name == "" {
		return Tag{}, Errorf(EINVALID, "tag name required")
	}
	if class == "" {
		return Tag{}, Errorf(EINVALID, "tag %q: class required (use %q to match any class)", name, AnyClass)
	}
	if len(strings.Fields(class)) != 1 {
		return Tag{}, Errorf(EINVALID, "tag %q: class %q must be a single token", name, class)
	}
	return Tag{name: name, atom: atom.Lookup([]byte(name)), class: class}, nil
}

// MustTag is like NewTag but panics on invalid input.
// It is intended for built-in defaults and tests.
func MustTag(name, class string) Tag {
	t, err := NewTag(name, class)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the lower-cased element name.
func (t Tag) Name() string { return t.name }

// Class returns the class constraint, AnyClass for a wildcard.
func (t Tag) Class() string { return t.class }

// Atom returns the known tag kind for the name, or 0 for non-standard
// names such as "noindex".
func (t Tag) Atom() atom.Atom { return t.atom }

// IsWildcard reports whether the tag matches any class.
func (t Tag) IsWildcard() bool { return t.class == AnyClass }

// IsZero reports whether t was never built.
func (t Tag) IsZero() bool { return t.name == "" }

// Matches reports whether an element with the given kind, name and class
// tokens is selected by t. Known kinds compare by atom; unknown kinds fall
// back to the raw name. A non-wildcard class matches when it is one of the
// element's class tokens.
func (t Tag) Matches(kind atom.Atom, name string, classes []string) bool {
	if t.name == "" {
		return false
	}
	if t.atom != 0 || kind != 0 {
		if t.atom != kind {
			return false
		}
	} else if t.name != name {
		return false
	}
	if t.IsWildcard() {
		return true
	}
	return slices.Contains(classes, t.class)
}

// String renders the tag the way it would be written in markup.
func (t Tag) String() string {
	return fmt.Sprintf("<%s class=%s>", t.name, t.class)
}
