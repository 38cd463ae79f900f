package student

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TutorialClass is one of the eleven weekly tutorial sessions.
type TutorialClass int

const (
	T1 TutorialClass = iota
	T2
	T3
	T4
	T5
	T6
	T7
	T8
	T9
	T10
	T11

	tutorialClassCount = int(T11) + 1
)

// AllTutorialClasses lists every TutorialClass in declaration order.
var AllTutorialClasses = []TutorialClass{T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11}

func (c TutorialClass) valid() bool { return c >= T1 && c <= T11 }

func (c TutorialClass) String() string {
	if !c.valid() {
		return fmt.Sprintf("TutorialClass(%d)", int(c))
	}
	return "t" + strconv.Itoa(int(c)+1)
}

// Description returns a user friendly name, eg. "Tutorial 1".
func (c TutorialClass) Description() string {
	if !c.valid() {
		return ""
	}
	return "Tutorial " + strconv.Itoa(int(c)+1)
}

// lookupTutorialClass matches s case-insensitively against t1..t11.
func lookupTutorialClass(s string) (TutorialClass, bool) {
	for _, c := range AllTutorialClasses {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

func tutorialClassList() string {
	names := make([]string, 0, tutorialClassCount)
	for _, c := range AllTutorialClasses {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// TutorialGroup is the group a student is assigned to, eg. "TG3". Empty means unassigned.
type TutorialGroup string

// Unassigned is the TutorialGroup of a student without a group.
const Unassigned TutorialGroup = ""

func (tg TutorialGroup) String() string { return string(tg) }

// IsAssigned reports whether tg names a group.
func (tg TutorialGroup) IsAssigned() bool { return tg != Unassigned }

// Number returns the digits following "TG". Unassigned groups sort after every assigned one.
func (tg TutorialGroup) Number() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(tg), "TG"))
	if !tg.IsAssigned() || err != nil {
		return math.MaxInt32
	}
	return n
}
