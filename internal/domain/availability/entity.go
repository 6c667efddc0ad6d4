package availability

import (
	"sort"
)

type Tag string

const (
	TagUnavailable Tag = "Unavailable"
	TagMorning     Tag = "Morning"
	TagAfternoon   Tag = "Afternoon"
	TagEvening     Tag = "Evening"
)

var TagValues = []string{
	string(TagUnavailable),
	string(TagMorning),
	string(TagAfternoon),
	string(TagEvening),
}

var tagRank = map[Tag]int{
	TagUnavailable: 0,
	TagMorning:     1,
	TagAfternoon:   2,
	TagEvening:     3,
}

func (t Tag) IsValid() bool {
	_, ok := tagRank[t]
	return ok
}

// TagSet is a day's availability. Unavailable never appears alongside any
// other tag.
type TagSet map[Tag]struct{}

// NewTagSet builds a normalised set from tags: duplicates collapse and
// Unavailable wins over every other tag.
func NewTagSet(tags ...Tag) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		if t == TagUnavailable {
			return TagSet{TagUnavailable: {}}
		}
		set[t] = struct{}{}
	}
	return set
}

func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// IsAvailable reports whether the set offers at least one working slot.
func (s TagSet) IsAvailable() bool {
	return len(s) > 0 && !s.Has(TagUnavailable)
}

// Sorted returns the tags in display order.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return tagRank[out[i]] < tagRank[out[j]] })
	return out
}

type Entry struct {
	StaffID string
	DayKey  string
	Tags    TagSet
}
