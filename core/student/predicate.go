package student

import "strings"

// KeywordPredicate matches a student when any keyword of any field is a
// case-insensitive substring of that field. A field without keywords contributes no matches.
type KeywordPredicate struct {
	Names          []string
	Emails         []string
	Handles        []string
	TutorialGroups []string
}

// IsEmpty reports whether the predicate holds no keyword at all.
func (p KeywordPredicate) IsEmpty() bool {
	return len(p.Names) == 0 && len(p.Emails) == 0 && len(p.Handles) == 0 && len(p.TutorialGroups) == 0
}

func (p KeywordPredicate) Test(s Student) bool {
	return containsAny(string(s.Name), p.Names) ||
		containsAny(string(s.Email), p.Emails) ||
		containsAny(string(s.Handle), p.Handles) ||
		containsAny(string(s.TutorialGroup), p.TutorialGroups)
}

// Equal compares keyword lists in order.
func (p KeywordPredicate) Equal(other KeywordPredicate) bool {
	return equalStrings(p.Names, other.Names) && equalStrings(p.Emails, other.Emails) &&
		equalStrings(p.Handles, other.Handles) && equalStrings(p.TutorialGroups, other.TutorialGroups)
}

func containsAny(field string, keywords []string) bool {
	if field == "" {
		return false
	}
	field = strings.ToLower(field)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(field, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
