package view

import "fmt"

// Selector describes how to locate a view within a tree. The two
// supported criteria are a stable name (attached with the Named wrapper)
// and an opaque tag compared with ==. Views that carry an identity check
// the selector against it in their CallOnAny and FocusView
// implementations; everything else forwards the selector untouched.
type Selector struct {
	name   string
	byName bool
	tag    any
}

// ByName creates a selector matching views named with the Named wrapper.
func ByName(name string) Selector {
	return Selector{name: name, byName: true}
}

// ByTag creates a selector matching views that carry an equal tag.
// The tag must be a comparable value.
func ByTag(tag any) Selector {
	return Selector{tag: tag}
}

// MatchesName returns true if this is a name selector for the given name.
func (s Selector) MatchesName(name string) bool {
	return s.byName && s.name == name
}

// MatchesTag returns true if this is a tag selector equal to the given tag.
func (s Selector) MatchesTag(tag any) bool {
	return !s.byName && s.tag != nil && s.tag == tag
}

// String returns a human-readable representation for debug logging.
func (s Selector) String() string {
	if s.byName {
		return fmt.Sprintf("name(%q)", s.name)
	}
	return fmt.Sprintf("tag(%v)", s.tag)
}
