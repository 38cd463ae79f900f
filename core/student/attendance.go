package student

import (
	"strconv"
	"strings"
)

// AttendMap records presence for every TutorialClass; the zero value is all absent.
type AttendMap [tutorialClassCount]bool

func (am AttendMap) IsPresent(c TutorialClass) bool { return am[c] }

// WithPresent returns a copy of am where c is marked present.
func (am AttendMap) WithPresent(c TutorialClass) AttendMap {
	am[c] = true
	return am
}

// WithAbsent returns a copy of am where c is marked absent.
func (am AttendMap) WithAbsent(c TutorialClass) AttendMap {
	am[c] = false
	return am
}

// Attended counts the classes marked present.
func (am AttendMap) Attended() int {
	var n int
	for _, present := range am {
		if present {
			n++
		}
	}
	return n
}

// Rate is the attended fraction of all tutorial classes.
func (am AttendMap) Rate() float64 {
	return float64(am.Attended()) / float64(tutorialClassCount)
}

// Overall renders attendance as "x/11".
func (am AttendMap) Overall() string {
	return strconv.Itoa(am.Attended()) + "/" + strconv.Itoa(tutorialClassCount)
}

// Format lists the attended classes, eg. "Attended: Tutorial 1, Tutorial 3".
func (am AttendMap) Format() string {
	attended := make([]string, 0, tutorialClassCount)
	for _, c := range AllTutorialClasses {
		if am[c] {
			attended = append(attended, c.Description())
		}
	}
	if len(attended) == 0 {
		return "Attended: None"
	}
	return "Attended: " + strings.Join(attended, ", ")
}
