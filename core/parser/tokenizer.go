package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
)

// ArgMultimap holds the preamble and every value given for each prefix, in order.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

func (am ArgMultimap) Preamble() string { return am.preamble }

// Value returns the last value of p and whether p was given at all.
func (am ArgMultimap) Value(p Prefix) (string, bool) {
	vals := am.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value of p in order, or nil if p is absent.
func (am ArgMultimap) AllValues(p Prefix) []string {
	vals := am.values[p]
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

func (am ArgMultimap) Has(p Prefix) bool {
	return len(am.values[p]) > 0
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes was given more than once.
func (am ArgMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(am.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return core.NewCommandError(core.KindDuplicatePrefix, command.MsgDuplicateFields+strings.Join(dups, " "))
}

func (am ArgMultimap) String() string {
	keys := make([]string, 0, len(am.values))
	for p := range am.values {
		keys = append(keys, p.String())
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s%q", k, am.values[Prefix(k)]))
	}
	return fmt.Sprintf("preamble=%q %s", am.preamble, strings.Join(parts, " "))
}

type occurrence struct {
	prefix Prefix
	start  int // position of the prefix
}

// Tokenize splits args into a preamble and the values following each of prefixes.
// A prefix only counts at the start of args or right after whitespace; when
// several prefixes match at a position the longest wins. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	occs := findOccurrences(args, prefixes)
	am := ArgMultimap{values: make(map[Prefix][]string, len(prefixes))}

	end := len(args)
	if len(occs) > 0 {
		end = occs[0].start
	}
	am.preamble = strings.TrimSpace(args[:end])

	for i, occ := range occs {
		valEnd := len(args)
		if i+1 < len(occs) {
			valEnd = occs[i+1].start
		}
		val := strings.TrimSpace(args[occ.start+len(occ.prefix) : valEnd])
		am.values[occ.prefix] = append(am.values[occ.prefix], val)
	}
	return am
}

func findOccurrences(args string, prefixes []Prefix) []occurrence {
	byLen := make([]Prefix, len(prefixes))
	copy(byLen, prefixes)
	sort.SliceStable(byLen, func(i, j int) bool { return len(byLen[i]) > len(byLen[j]) })

	var occs []occurrence
	for pos := 0; pos < len(args); {
		if !atFieldStart(args, pos) {
			pos++
			continue
		}
		matched := false
		for _, p := range byLen {
			if p != "" && strings.HasPrefix(args[pos:], string(p)) {
				occs = append(occs, occurrence{prefix: p, start: pos})
				pos += len(p)
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return occs
}

// atFieldStart reports whether pos is the start of args or follows a whitespace rune.
func atFieldStart(args string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(args[:pos])
	return unicode.IsSpace(r)
}
