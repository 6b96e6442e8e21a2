package model

import "strings"

// TagPrefix namespaces scratchpad marks so they never collide with marks
// set by the user or other tools.
const TagPrefix = "SCRATCHPAD_"

// Tag is the window manager mark identifying one scratchpad instance.
type Tag string

// NewTag returns the tag for the scratchpad called name.
func NewTag(name string) Tag {
	return Tag(TagPrefix + name)
}

// ParseTag returns the tag for mark if it belongs to the scratchpad namespace.
func ParseTag(mark string) (Tag, bool) {
	if !strings.HasPrefix(mark, TagPrefix) || len(mark) == len(TagPrefix) {
		return "", false
	}
	return Tag(mark), true
}

// Name returns the user-supplied scratchpad name.
func (t Tag) Name() string {
	return strings.TrimPrefix(string(t), TagPrefix)
}

func (t Tag) String() string {
	return string(t)
}

// FindByTag returns the first container carrying tag. Only one container
// is expected to carry a given tag; when several do, the first one in
// Flatten order wins.
func FindByTag(containers []Container, tag Tag) (Container, bool) {
	for _, c := range containers {
		if c.HasMark(string(tag)) {
			return c, true
		}
	}
	return Container{}, false
}
