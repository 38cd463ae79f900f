// Package parser turns a raw command line into an executable command.
package parser

// Prefix marks the start of a named argument, eg. "n/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// argument prefixes
const (
	PrefixName          Prefix = "n/"
	PrefixPhone         Prefix = "p/"
	PrefixEmail         Prefix = "e/"
	PrefixHandle        Prefix = "u/"
	PrefixTutorialGroup Prefix = "tg/"
	PrefixTag           Prefix = "t/"
	PrefixGrade         Prefix = "g/"
	PrefixAssignment    Prefix = "a/"
	PrefixTutorialClass Prefix = "c/"

	// VerboseSuffix at the end of list, find and sort asks for a detailed view.
	VerboseSuffix = "/v"
)
