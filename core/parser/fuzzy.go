package parser

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
)

const (
	// maxTypos is the edit distance a command word may be away from its keyword.
	maxTypos = 1
	// minHintRatio is the similarity a keyword needs to be suggested for an unknown word.
	minHintRatio = 0.6
)

// MatchKeyword resolves word to a command keyword. An exact match wins; otherwise the
// first keyword, in command.Keywords order, within one edit of word is returned.
func MatchKeyword(word string) (string, error) {
	for _, kw := range command.Keywords {
		if kw == word {
			return kw, nil
		}
	}
	for _, kw := range command.Keywords {
		if withinDistance(word, kw, maxTypos) {
			return kw, nil
		}
	}
	return "", unknownCommand(word)
}

func unknownCommand(word string) error {
	err := &core.CommandError{Kind: core.KindUnknownCommand, Msg: command.MsgUnknownCommand}
	if kw := closestKeyword(word); kw != "" {
		err.Hint = fmt.Sprintf("Did you mean %q?", kw)
	}
	return err
}

// closestKeyword returns the keyword most similar to word, if similar enough.
func closestKeyword(word string) string {
	if word == "" {
		return ""
	}
	var best string
	var bestRatio float64
	sm := difflib.NewMatcher(nil, nil)
	sm.SetSeq2(splitChars(word))
	for _, kw := range command.Keywords {
		sm.SetSeq1(splitChars(kw))
		if r := sm.Ratio(); r >= minHintRatio && r > bestRatio {
			best, bestRatio = kw, r
		}
	}
	return best
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

// withinDistance reports whether the Levenshtein distance between a and b is at most limit.
// Rows of the dynamic programming table are abandoned as soon as every cell exceeds limit.
func withinDistance(a, b string, limit int) bool {
	ra, rb := []rune(a), []rune(b)
	if abs(len(ra)-len(rb)) > limit {
		return false
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > limit {
			return false
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)] <= limit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
