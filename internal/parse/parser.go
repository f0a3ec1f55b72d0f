// internal/parse/parser.go
//
// Parsing of pasted reference games.
//
// Input format, one game per line:
//
//	03 08 11 14 16 29 (Janine)
//	06 30 32 33 40 60 (Giselle)
//
// The parenthesised label is optional. Blank lines are skipped. Any other
// non-blank line must carry exactly six valid numbers or the whole
// submission is rejected; there is no partial acceptance of a malformed
// line.

package parse

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/chrystiano/mega-sena-generator/internal/game"
)

// maxLabelLen caps bettor names taken from the input.
const maxLabelLen = 50

// lineRe matches six 1-2 digit numbers followed by an optional
// parenthesised label. Single-digit numbers are accepted even though the
// canonical format zero-pads; range checks happen after extraction.
var lineRe = regexp.MustCompile(`^(\d{1,2}(?:\s+\d{1,2}){5})\s*(?:\((.*?)\))?\s*$`)

// ParseError reports the first malformed reference line.
type ParseError struct {
	Line   int    // 1-based line number in the submitted text
	Text   string // offending line, trimmed
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Reference parses the pasted text into Type-A reference games. Numbers on
// each line are sorted ascending; labels are trimmed and capped at
// maxLabelLen characters.
func Reference(text string) ([]game.Game, error) {
	var games []game.Game
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{
				Line:   i + 1,
				Text:   line,
				Reason: "expected six two-digit numbers with an optional (label)",
			}
		}
		nums := make([]int, 0, game.GameSize)
		for _, f := range strings.Fields(m[1]) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
			}
			nums = append(nums, n)
		}
		slices.Sort(nums)
		if err := game.CheckNumbers(nums); err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		label := m[2]
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}
		games = append(games, game.Game{
			Type:    game.TypeA,
			Label:   strings.TrimSpace(label),
			Numbers: nums,
		})
	}
	return games, nil
}
